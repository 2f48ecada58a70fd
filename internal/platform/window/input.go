package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bulletstorm/internal/core"
)

// keyBindings lists the keys for each action.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionJump:  {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionFire:  {ebiten.KeySpace},
	core.ActionPause: {ebiten.KeyP},
	core.ActionQuit:  {ebiten.KeyEscape, ebiten.KeyQ},
}

// readInput samples the keyboard into a frame of held actions.
func readInput() core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}
