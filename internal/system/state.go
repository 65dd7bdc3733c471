// internal/system/state.go
package system

import (
	"errors"
	"fmt"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"

	"github.com/rs/zerolog"
)

var ErrIllegalTransition = errors.New("illegal status transition")

// StatusStore сохраняет статус между запусками
type StatusStore interface {
	Save(status component.GameStatus) error
}

// StatusMachine — переходы up ⇄ paused, up → down, * → up (рестарт).
// Недопустимый переход возвращает ErrIllegalTransition и ничего не меняет.
type StatusMachine struct {
	ecs             *entity.ECS
	store           StatusStore
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewStatusMachine(ecs *entity.ECS, store StatusStore, eventDispatcher *event.Dispatcher, log zerolog.Logger) *StatusMachine {
	return &StatusMachine{
		ecs:             ecs,
		store:           store,
		eventDispatcher: eventDispatcher,
		log:             log,
	}
}

func (m *StatusMachine) Current() component.GameStatus {
	return m.ecs.Status
}

func (m *StatusMachine) Pause() error {
	return m.transition(component.StatusPaused, component.StatusUp)
}

func (m *StatusMachine) Resume() error {
	return m.transition(component.StatusUp, component.StatusPaused)
}

// Toggle переключает паузу; после конца игры это недопустимо
func (m *StatusMachine) Toggle() error {
	if m.ecs.Status == component.StatusPaused {
		return m.Resume()
	}
	return m.Pause()
}

func (m *StatusMachine) GameOver() error {
	return m.transition(component.StatusDown, component.StatusUp)
}

// Restart допустим из любого статуса
func (m *StatusMachine) Restart() error {
	return m.transition(component.StatusUp, component.StatusUp, component.StatusPaused, component.StatusDown)
}

// Restore выставляет сохранённый статус при загрузке без сохранения и событий
func (m *StatusMachine) Restore(status component.GameStatus) {
	m.ecs.Status = status
}

func (m *StatusMachine) transition(to component.GameStatus, allowedFrom ...component.GameStatus) error {
	from := m.ecs.Status
	legal := false
	for _, s := range allowedFrom {
		if s == from {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	m.ecs.Status = to
	if m.store != nil {
		if err := m.store.Save(to); err != nil {
			m.log.Warn().Err(err).Stringer("status", to).Msg("failed to persist status")
		}
	}
	m.log.Info().Stringer("from", from).Stringer("to", to).Msg("status changed")
	m.eventDispatcher.Publish(event.Event{Type: event.StatusChanged, Data: event.StatusData{From: from, To: to}})
	return nil
}
