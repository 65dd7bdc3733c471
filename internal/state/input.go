// internal/state/input.go
package state

import (
	"go-circle-shooter/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ interfaces.Input = (*EbitenInput)(nil)

// keyBindings — клавиши для каждого действия
var keyBindings = map[interfaces.Action][]ebiten.Key{
	interfaces.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	interfaces.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	interfaces.ActionUp:      {ebiten.KeyW, ebiten.KeyArrowUp},
	interfaces.ActionDown:    {ebiten.KeyS, ebiten.KeyArrowDown},
	interfaces.ActionPause:   {ebiten.KeyEscape},
	interfaces.ActionRestart: {ebiten.KeyTab},
}

// EbitenInput читает клавиатуру и мышь через inpututil
type EbitenInput struct{}

func (EbitenInput) JustPressed(a interfaces.Action) bool {
	if a == interfaces.ActionFire {
		return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	}
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (EbitenInput) JustReleased(a interfaces.Action) bool {
	if a == interfaces.ActionFire {
		return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	}
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

func (EbitenInput) Cursor() (x, y int) {
	return ebiten.CursorPosition()
}
