package codebreaker

import (
	"encoding/json"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		secret []Color
		guess  []Color
		want   Feedback
	}{
		{"all exact", []Color{Red, Green, Blue, Yellow}, []Color{Red, Green, Blue, Yellow}, Feedback{Exact: 4}},
		{"swapped pair", []Color{Red, Green, Blue, Yellow}, []Color{Green, Red, Blue, Yellow}, Feedback{Exact: 2, Color: 2}},
		{"repeated colors", []Color{Red, Red, Green, Blue}, []Color{Red, Green, Red, Yellow}, Feedback{Exact: 1, Color: 2}},
		{"no overlap", []Color{Red, Red, Red, Red}, []Color{Blue, Blue, Blue, Blue}, Feedback{}},
		{"guess repeats a single secret peg", []Color{Red, Blue, Green, Yellow}, []Color{Blue, Blue, Blue, Blue}, Feedback{Exact: 1}},
		{"secret repeats once", []Color{Red, Red, Blue, Blue}, []Color{Blue, Green, Red, Orange}, Feedback{Color: 2}},
		{"all misplaced", []Color{Red, Blue, Green, Yellow}, []Color{Yellow, Green, Blue, Red}, Feedback{Color: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.secret, tt.guess)
			if got != tt.want {
				t.Errorf("Score(%v, %v) = %+v, want %+v", tt.secret, tt.guess, got, tt.want)
			}
			if got.Exact+got.Color > len(tt.secret) {
				t.Errorf("exact+color = %d exceeds code length", got.Exact+got.Color)
			}
		})
	}
}

func TestColorNamesAndHex(t *testing.T) {
	want := map[Color]string{
		Red:    "#ff3366",
		Blue:   "#0066ff",
		Green:  "#00ff88",
		Yellow: "#ffd700",
		Purple: "#9933ff",
		Orange: "#ff6b35",
	}
	for c, hex := range want {
		if c.Hex() != hex {
			t.Errorf("%v.Hex() = %q, want %q", c, c.Hex(), hex)
		}
		if ParseColor(c.String()) != c {
			t.Errorf("ParseColor(%q) did not round trip", c.String())
		}
	}
	if NoColor.String() != "" || NoColor.Hex() != "" {
		t.Error("NoColor should have no name or hex")
	}
	if ParseColor("magenta") != NoColor {
		t.Error("unknown names should parse to NoColor")
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal([]Color{Red, NoColor, Orange})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `["red","","orange"]` {
		t.Errorf("marshal = %s", data)
	}

	var got []Color
	if err := json.Unmarshal([]byte(`["Blue"," green ","nope"]`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 3 || got[0] != Blue || got[1] != Green || got[2] != NoColor {
		t.Errorf("unmarshal = %v", got)
	}
}
