package interfaces

import "go-circle-shooter/internal/component"

// Game — операции симуляции, которые нужны экранам и обработке ввода.
type Game interface {
	Update() error
	Status() component.GameStatus
	Stats() component.Stats
	Shoot(x, y float64) bool
	SetMoveIntent(dx, dy int)
	MoveIntent() (dx, dy int)
	SetAim(x, y float64)
	TogglePause() error
	Restart() error
	Resize(width, height float64)
	Draw(canvas Canvas)
}
