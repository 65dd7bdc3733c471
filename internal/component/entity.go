// internal/component/entity.go
package component

import (
	"image/color"

	"go-circle-shooter/internal/types"
)

// Kind — тип сущности
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindParticle
	KindPowerUp
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	case KindPowerUp:
		return "power-up"
	}
	return "unknown"
}

// Entity — плоское представление любой симулируемой сущности.
// Общие поля есть у всех, специфичное поведение подключается
// опциональными компонентами (nil, если возможности нет).
type Entity struct {
	ID       types.EntityID
	Kind     Kind
	Position Position
	Velocity Velocity
	Radius   float64
	Color    color.RGBA

	Combat     *Combat
	Enemy      *Enemy
	Projectile *Projectile
	Fade       *Fade
	Shrink     *Shrink
	Pickup     *Pickup
	Player     *PlayerState
}

// Advance интегрирует скорость в позицию и применяет модификаторы компонентов:
// трение частиц до интеграции, анимацию уменьшения радиуса после.
func (e *Entity) Advance() {
	if e.Fade != nil {
		e.Velocity.DX *= e.Fade.Friction
		e.Velocity.DY *= e.Fade.Friction
	}
	e.Position.X += e.Velocity.DX
	e.Position.Y += e.Velocity.DY

	if e.Shrink != nil {
		e.Radius = e.Shrink.Step()
		if e.Shrink.Done() {
			e.Shrink = nil
		}
	}
}

// IsOutOfBounds — true, если окружность полностью покинула холст.
func (e *Entity) IsOutOfBounds(width, height float64) bool {
	return e.Position.X+e.Radius < 0 ||
		e.Position.X-e.Radius > width ||
		e.Position.Y+e.Radius < 0 ||
		e.Position.Y-e.Radius > height
}

// PastRightEdge — true, если окружность целиком ушла за правый край.
// Бонусы появляются слева за холстом, поэтому для них проверяется только правый край.
func (e *Entity) PastRightEdge(width float64) bool {
	return e.Position.X-e.Radius > width
}
