// Package codebreaker implements a Mastermind-style code guessing game.
package codebreaker

import "strings"

// Color is one peg of the palette. NoColor marks an empty slot.
type Color int

const (
	NoColor Color = iota
	Red
	Blue
	Green
	Yellow
	Purple
	Orange
)

// Palette lists every color in display order.
var Palette = []Color{Red, Blue, Green, Yellow, Purple, Orange}

var colorNames = map[Color]string{
	Red:    "red",
	Blue:   "blue",
	Green:  "green",
	Yellow: "yellow",
	Purple: "purple",
	Orange: "orange",
}

var colorHex = map[Color]string{
	Red:    "#ff3366",
	Blue:   "#0066ff",
	Green:  "#00ff88",
	Yellow: "#ffd700",
	Purple: "#9933ff",
	Orange: "#ff6b35",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return ""
}

// Hex returns the display color, or "" for NoColor.
func (c Color) Hex() string {
	return colorHex[c]
}

// MarshalText lets colors serialize by name; empty slots become "".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses a color name. Unknown names decode to NoColor.
func (c *Color) UnmarshalText(text []byte) error {
	*c = ParseColor(string(text))
	return nil
}

// ParseColor returns the color with the given name, or NoColor.
func ParseColor(name string) Color {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c
		}
	}
	return NoColor
}

// Feedback is the score of one guess.
type Feedback struct {
	Exact int `json:"exact"` // Right color in the right position
	Color int `json:"color"` // Right color in the wrong position
}

// Score compares guess against secret in two passes. The first pass consumes
// exact matches; the second matches each remaining guess peg against the first
// unconsumed secret peg of the same color. Both codes must have equal length.
func Score(secret, guess []Color) Feedback {
	var fb Feedback
	usedSecret := make([]bool, len(secret))
	usedGuess := make([]bool, len(guess))

	for i := range guess {
		if i < len(secret) && guess[i] == secret[i] {
			fb.Exact++
			usedSecret[i] = true
			usedGuess[i] = true
		}
	}

	for i, g := range guess {
		if usedGuess[i] {
			continue
		}
		for j, s := range secret {
			if !usedSecret[j] && s == g {
				fb.Color++
				usedSecret[j] = true
				break
			}
		}
	}
	return fb
}
