package core

// Color represents a palette entry. Front-ends map it to ANSI codes
// (terminal) or RGBA (window).
type Color uint8

// Palette entries.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold
)

// Game roles.
const (
	ColorPlayer    = ColorRed
	ColorEnemy     = ColorMagenta
	ColorBullet    = ColorBrightBlue
	ColorPlatform  = ColorGray
	ColorShield    = ColorBlue
	ColorHUD       = ColorWhite
	ColorRapidFire = ColorGold
	ColorBonus     = ColorGreen
)
