package display

import (
	"github.com/Garsondee/Enkidu/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyBindings maps each logical key to the physical keys that press it.
var keyBindings = map[game.Key][]ebiten.Key{
	game.KeyUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	game.KeyDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
	game.KeyLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	game.KeyRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// pressedFunc reports whether a physical key is held.
type pressedFunc func(ebiten.Key) bool

// sampleKeys builds this frame's snapshot from the physical key state.
func sampleKeys(pressed pressedFunc) game.KeySet {
	var ks game.KeySet
	for k, phys := range keyBindings {
		for _, pk := range phys {
			if pressed(pk) {
				ks = ks.With(k)
				break
			}
		}
	}
	return ks
}
