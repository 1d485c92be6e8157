package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color style.
type Color uint8

// Palette shared by all games.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
