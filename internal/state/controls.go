// internal/state/controls.go
package state

import (
	"errors"
	"time"

	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/interfaces"
	"go-circle-shooter/internal/system"
)

// Controls превращает ввод кадра в операции игры. Общий для всех экранов.
type Controls struct {
	game        interfaces.Game
	input       interfaces.Input
	now         func() time.Time
	lastRestart time.Time
}

func NewControls(game interfaces.Game, input interfaces.Input, now func() time.Time) *Controls {
	if now == nil {
		now = time.Now
	}
	return &Controls{game: game, input: input, now: now}
}

func (c *Controls) cursor() (float64, float64) {
	x, y := c.input.Cursor()
	return float64(x), float64(y)
}

// move обновляет намерение движения: нажатие задаёт направление оси,
// отпускание той же клавиши обнуляет ось.
func (c *Controls) move() {
	dx, dy := c.game.MoveIntent()
	dx = axis(c.input, dx, interfaces.ActionLeft, interfaces.ActionRight)
	dy = axis(c.input, dy, interfaces.ActionUp, interfaces.ActionDown)
	c.game.SetMoveIntent(dx, dy)
}

func axis(in interfaces.Input, cur int, neg, pos interfaces.Action) int {
	if in.JustReleased(neg) && cur < 0 {
		cur = 0
	}
	if in.JustReleased(pos) && cur > 0 {
		cur = 0
	}
	if in.JustPressed(neg) {
		cur = -1
	}
	if in.JustPressed(pos) {
		cur = 1
	}
	return cur
}

func (c *Controls) aim() {
	c.game.SetAim(c.cursor())
}

func (c *Controls) togglePause() error {
	return ignoreIllegal(c.game.TogglePause())
}

func (c *Controls) restart() error {
	c.lastRestart = c.now()
	return ignoreIllegal(c.game.Restart())
}

// fire стреляет по курсору, кроме клика, только что нажавшего «Restart»
func (c *Controls) fire() {
	if c.now().Sub(c.lastRestart) < config.ClickCooldown {
		return
	}
	c.game.Shoot(c.cursor())
}

func ignoreIllegal(err error) error {
	if errors.Is(err, system.ErrIllegalTransition) {
		return nil
	}
	return err
}
