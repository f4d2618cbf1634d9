package core

// Color is the foreground colour of a screen cell.
type Color uint8

// Colours used by the roll screen. The zero value is the terminal default.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorBrightWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
)
