// internal/system/powerup.go
package system

import (
	"time"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/timer"
)

// PowerUpSystem двигает бонусы, выдаёт их игроку и снимает по таймеру.
// Окончание бонуса отсчитывается по реальному времени и не зависит от паузы.
type PowerUpSystem struct {
	ecs             *entity.ECS
	scheduler       *timer.Scheduler
	eventDispatcher *event.Dispatcher
	duration        time.Duration
	expiry          *timer.Handle
}

func NewPowerUpSystem(ecs *entity.ECS, scheduler *timer.Scheduler, eventDispatcher *event.Dispatcher, duration time.Duration) *PowerUpSystem {
	return &PowerUpSystem{
		ecs:             ecs,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		duration:        duration,
	}
}

func (s *PowerUpSystem) Update() {
	player := s.ecs.Player
	for _, pu := range s.ecs.PowerUps {
		if pu.PastRightEdge(s.ecs.Width) {
			s.ecs.MarkRemoved(pu.ID)
			continue
		}
		pu.Advance()

		if Collides(player, pu) && !s.ecs.IsRemoved(pu.ID) {
			s.ecs.MarkRemoved(pu.ID)
			kind := component.PowerUpRapidFire
			if pu.Pickup != nil {
				kind = pu.Pickup.Kind
			}
			s.Activate(kind)
		}
	}
}

// Activate выдаёт бонус игроку и перезапускает таймер его окончания.
func (s *PowerUpSystem) Activate(kind component.PowerUpKind) {
	s.ActivateFor(kind, s.duration)
}

// ActivateFor выдаёт бонус на время d, например на остаток из снимка.
func (s *PowerUpSystem) ActivateFor(kind component.PowerUpKind, d time.Duration) {
	player := s.ecs.Player
	if player == nil || player.Player == nil {
		return
	}
	player.Player.ActivePowerUp = kind
	player.Color = config.PlayerPowerColor

	s.expiry.Cancel()
	s.expiry = s.scheduler.After(d, s.expire)
	s.eventDispatcher.Publish(event.Event{Type: event.PowerUpCollected, Data: kind})
}

func (s *PowerUpSystem) expire() {
	s.expiry = nil
	player := s.ecs.Player
	if player == nil || player.Player == nil {
		return
	}
	player.Player.ActivePowerUp = component.PowerUpNone
	player.Color = player.Player.BaseColor
	s.eventDispatcher.Publish(event.Event{Type: event.PowerUpExpired})
}

// ExpiryPending сообщает, что бонус активен и ждёт окончания.
func (s *PowerUpSystem) ExpiryPending() bool {
	return s.expiry.Active()
}

// Remaining — сколько ещё продлится активный бонус
func (s *PowerUpSystem) Remaining() time.Duration {
	return s.expiry.Remaining()
}

// Reset отменяет таймер окончания бонуса прошлой сессии.
func (s *PowerUpSystem) Reset() {
	s.expiry.Cancel()
	s.expiry = nil
}
