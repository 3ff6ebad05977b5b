package core

// Color is the foreground colour of a screen cell. The platform layer maps
// it to an ANSI 256-colour code.
type Color uint8

// Palette used by game renderers. Each entity kind has a fixed colour.
const (
	ColorDefault      Color = iota
	ColorRed                // hazards, warnings
	ColorGreen              // level platforms
	ColorMagenta            // enemies
	ColorCyan               // player
	ColorWhite              // goal, HUD labels
	ColorBrightYellow       // coins, HUD counters
	ColorBrightCyan         // star
	ColorOrange             // built blocks
)
