package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal styles.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault Color = iota
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
)
