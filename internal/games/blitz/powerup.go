package blitz

import (
	"github.com/vovakirdan/bulletstorm/internal/core"
)

// PowerUpKind is the effect a pickup grants.
type PowerUpKind int

const (
	PowerUpRapidFire  PowerUpKind = iota // faster, three-way fire
	PowerUpShield                        // immune to enemy contact
	PowerUpMultiplier                    // doubles the combo multiplier
	powerUpKindCount
)

// String returns the power-up name.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpShield:
		return "shield"
	case PowerUpMultiplier:
		return "multiplier"
	default:
		return "unknown"
	}
}

// Color returns the color a pickup of this kind is drawn in.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpRapidFire:
		return core.ColorRapidFire
	case PowerUpShield:
		return core.ColorShield
	default:
		return core.ColorBonus
	}
}

// PowerUp is a pickup lying on the playfield.
type PowerUp struct {
	ID   EntityID
	Rect core.Rect
	Kind PowerUpKind

	taken bool
}
