// internal/system/projectile.go
package system

import (
	"image/color"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/utils"
)

// ProjectileSystem двигает снаряды и стреляет автоматически при активном бонусе
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	for _, p := range s.ecs.Projectiles {
		p.Advance()
		if p.IsOutOfBounds(s.ecs.Width, s.ecs.Height) {
			s.ecs.MarkRemoved(p.ID)
		}
	}
}

// RapidFire выпускает автоматический снаряд в сторону прицела на каждом чётном тике.
func (s *ProjectileSystem) RapidFire(aimX, aimY float64) bool {
	player := s.ecs.Player
	if player == nil || player.Player == nil || player.Player.ActivePowerUp != component.PowerUpRapidFire {
		return false
	}
	if s.ecs.Frames%config.RapidFireFrameGate != 0 {
		return false
	}
	// Вызывается до прохода снарядов, поэтому выстрел вставляется сразу
	s.ecs.AddNow(NewProjectile(player.Position.X, player.Position.Y, aimX, aimY,
		config.RapidFireProjectileSpeed, config.RapidFireProjectileRadius, config.RapidFireColor, true))
	return true
}

// NewProjectile создаёт снаряд, летящий из (x, y) в сторону (tx, ty).
func NewProjectile(x, y, tx, ty, speed, radius float64, c color.RGBA, rapid bool) *component.Entity {
	dx, dy := utils.Velocity(x, y, tx, ty, speed)
	return &component.Entity{
		Kind:       component.KindProjectile,
		Position:   component.Position{X: x, Y: y},
		Velocity:   component.Velocity{DX: dx, DY: dy},
		Radius:     radius,
		Color:      c,
		Projectile: &component.Projectile{RapidFire: rapid},
	}
}
