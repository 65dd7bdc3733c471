package interfaces

// Action — игровое намерение, в которое превращается ввод
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionPause
	ActionRestart
	ActionFire
)

// Input — снимок ввода за кадр
type Input interface {
	JustPressed(a Action) bool
	JustReleased(a Action) bool
	Cursor() (x, y int)
}
