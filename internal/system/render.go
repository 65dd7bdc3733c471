// internal/system/render.go
package system

import (
	"strconv"

	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/interfaces"
	"go-circle-shooter/pkg/render"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(canvas interfaces.Canvas) {
	// Полупрозрачная заливка вместо очистки оставляет шлейф
	canvas.Clear(config.TrailColor)

	// Сначала частицы, они всегда бледные
	for _, p := range s.ecs.Particles {
		canvas.DrawCircle(p.Position.X, p.Position.Y, p.Radius, render.WithAlpha(p.Color, config.ParticleDrawAlpha))
	}

	for _, pu := range s.ecs.PowerUps {
		canvas.DrawCircle(pu.Position.X, pu.Position.Y, pu.Radius+2, config.PowerUpRingColor)
		canvas.DrawCircle(pu.Position.X, pu.Position.Y, pu.Radius, pu.Color)
	}

	for _, p := range s.ecs.Projectiles {
		canvas.DrawCircle(p.Position.X, p.Position.Y, p.Radius, p.Color)
	}

	// Враги с текущим здоровьем внутри
	for _, e := range s.ecs.Enemies {
		canvas.DrawCircle(e.Position.X, e.Position.Y, e.Radius, e.Color)
		if e.Combat != nil {
			canvas.DrawTextCentered(strconv.Itoa(e.Combat.Health), e.Position.X, e.Position.Y, e.Radius, config.EnemyTextColor)
		}
	}

	if p := s.ecs.Player; p != nil {
		canvas.DrawCircle(p.Position.X, p.Position.Y, p.Radius, p.Color)
	}
}
