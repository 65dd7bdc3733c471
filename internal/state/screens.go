// internal/state/screens.go
package state

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/interfaces"
	"go-circle-shooter/internal/ui"

	"golang.org/x/text/language"
)

// Screens связывает экраны игры, паузы и конца игры со статусом сессии.
type Screens struct {
	sm       *StateMachine
	game     interfaces.Game
	controls *Controls
	hud      *ui.HUD

	Play     *GameState
	Pause    *PauseState
	GameOver *GameOverState
}

func NewScreens(sm *StateMachine, game interfaces.Game, controls *Controls, hud *ui.HUD, tag language.Tag) *Screens {
	s := &Screens{sm: sm, game: game, controls: controls, hud: hud}
	s.Play = &GameState{screens: s}
	s.Pause = &PauseState{screens: s, overlay: ui.NewPauseOverlay()}
	s.GameOver = &GameOverState{screens: s, overlay: ui.NewGameOverOverlay(tag)}
	s.follow()
	return s
}

// follow переключает экран под текущий статус игры
func (s *Screens) follow() {
	switch s.game.Status() {
	case component.StatusPaused:
		s.sm.SetState(s.Pause)
	case component.StatusDown:
		s.sm.SetState(s.GameOver)
	default:
		s.sm.SetState(s.Play)
	}
}

func (s *Screens) drawWorld(canvas interfaces.Canvas) {
	s.game.Draw(canvas)
	s.hud.Draw(canvas)
}

// GameState — экран игры
type GameState struct {
	screens *Screens
}

func (g *GameState) Enter() {}
func (g *GameState) Exit()  {}

func (g *GameState) Update() error {
	c := g.screens.controls
	c.move()
	c.aim()

	in := c.input
	switch {
	case in.JustPressed(interfaces.ActionPause):
		if err := c.togglePause(); err != nil {
			return err
		}
	case in.JustPressed(interfaces.ActionRestart):
		if err := c.restart(); err != nil {
			return err
		}
	case in.JustPressed(interfaces.ActionFire):
		c.fire()
	}

	if err := g.screens.game.Update(); err != nil {
		return err
	}
	g.screens.follow()
	return nil
}

func (g *GameState) Draw(canvas interfaces.Canvas) {
	g.screens.drawWorld(canvas)
}

// PauseState — экран паузы. Таймеры игры продолжают идти.
type PauseState struct {
	screens *Screens
	overlay *ui.Overlay
}

func (s *PauseState) Enter() {}
func (s *PauseState) Exit()  {}

func (s *PauseState) Update() error {
	c := s.screens.controls
	c.move()
	c.aim()

	in := c.input
	switch {
	case in.JustPressed(interfaces.ActionPause):
		if err := c.togglePause(); err != nil {
			return err
		}
	case in.JustPressed(interfaces.ActionRestart):
		if err := c.restart(); err != nil {
			return err
		}
	}

	if err := s.screens.game.Update(); err != nil {
		return err
	}
	s.screens.follow()
	return nil
}

func (s *PauseState) Draw(canvas interfaces.Canvas) {
	s.screens.drawWorld(canvas)
	x, y := s.screens.controls.cursor()
	s.overlay.Draw(canvas, x, y)
}

// GameOverState — экран конца игры с кнопкой рестарта
type GameOverState struct {
	screens *Screens
	overlay *ui.Overlay
}

func (s *GameOverState) Enter() {
	s.overlay.SetScore(s.screens.game.Stats().Score)
}

func (s *GameOverState) Exit() {}

func (s *GameOverState) Update() error {
	c := s.screens.controls
	c.move()
	c.aim()

	in := c.input
	restart := in.JustPressed(interfaces.ActionRestart)
	if in.JustPressed(interfaces.ActionFire) {
		x, y := c.cursor()
		restart = restart || s.overlay.Button.Contains(x, y)
	}
	if restart {
		if err := c.restart(); err != nil {
			return err
		}
	}

	if err := s.screens.game.Update(); err != nil {
		return err
	}
	s.screens.follow()
	return nil
}

func (s *GameOverState) Draw(canvas interfaces.Canvas) {
	s.screens.drawWorld(canvas)
	x, y := s.screens.controls.cursor()
	s.overlay.Draw(canvas, x, y)
}
