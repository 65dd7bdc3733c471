// internal/system/movement.go
package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/utils"
)

// MovementSystem двигает игрока по удерживаемому направлению в пределах холста
type MovementSystem struct {
	ecs                 *entity.ECS
	zeroVerticalOnClamp bool
}

func NewMovementSystem(ecs *entity.ECS, zeroVerticalOnClamp bool) *MovementSystem {
	return &MovementSystem{ecs: ecs, zeroVerticalOnClamp: zeroVerticalOnClamp}
}

func (s *MovementSystem) Update() {
	MovePlayer(s.ecs.Player, s.ecs.Width, s.ecs.Height, s.zeroVerticalOnClamp)
}

// MovePlayer применяет скорость игрока, не выпуская окружность за [0, size-1].
// По горизонтали при упоре скорость обнуляется, по вертикали шаг просто
// не делается (скорость обнуляется только при zeroVertical).
func MovePlayer(p *component.Entity, width, height float64, zeroVertical bool) {
	if p == nil {
		return
	}
	r := p.Radius

	nx := p.Position.X + p.Velocity.DX
	if nx-r >= 0 && nx+r <= width-1 {
		p.Position.X = nx
	} else {
		p.Velocity.DX = 0
	}

	ny := p.Position.Y + p.Velocity.DY
	if ny-r >= 0 && ny+r <= height-1 {
		p.Position.Y = ny
	} else if zeroVertical {
		p.Velocity.DY = 0
	}
}

// ClampInside возвращает игрока на холст, например после уменьшения окна.
func ClampInside(p *component.Entity, width, height float64) {
	if p == nil {
		return
	}
	r := p.Radius
	p.Position.X = utils.Clamp(p.Position.X, r, max(r, width-1-r))
	p.Position.Y = utils.Clamp(p.Position.Y, r, max(r, height-1-r))
}
