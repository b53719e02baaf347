package core

// Color is the foreground color of a screen cell.
// The terminal renderer maps UI colors to ANSI codes and peg colors to
// true color, which degrades on terminals with smaller palettes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorBrightWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan

	// Code peg colors
	ColorPegRed
	ColorPegBlue
	ColorPegGreen
	ColorPegYellow
	ColorPegPurple
	ColorPegOrange
)
