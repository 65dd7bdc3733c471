// internal/system/particle.go
package system

import (
	"image/color"
	"math"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/utils"
)

// ParticleSystem управляет частицами взрывов: трение, затухание, удаление.
type ParticleSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService
}

func NewParticleSystem(ecs *entity.ECS, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{ecs: ecs, rng: rng}
}

func (s *ParticleSystem) Update() {
	for _, p := range s.ecs.Particles {
		if p.Fade == nil || p.Fade.Alpha <= 0 {
			s.ecs.MarkRemoved(p.ID)
			continue
		}
		p.Advance()
		p.Fade.Alpha -= config.ParticleAlphaDecay * s.rng.Float64()
		if p.IsOutOfBounds(s.ecs.Width, s.ecs.Height) {
			s.ecs.MarkRemoved(p.ID)
		}
	}
}

// SpawnBurst создаёт floor(radius*ParticlesPerRadius) частиц в точке попадания.
func (s *ParticleSystem) SpawnBurst(x, y, radius float64, c color.RGBA) int {
	count := int(math.Floor(radius * config.ParticlesPerRadius))
	for i := 0; i < count; i++ {
		s.ecs.Add(&component.Entity{
			Kind:     component.KindParticle,
			Position: component.Position{X: x, Y: y},
			Velocity: component.Velocity{
				DX: (s.rng.Float64() - 0.5) * (s.rng.Float64() * config.ParticleMaxSpeed),
				DY: (s.rng.Float64() - 0.5) * (s.rng.Float64() * config.ParticleMaxSpeed),
			},
			Radius: s.rng.Range(0.5, config.ParticleMaxRadius),
			Color:  c,
			Fade:   &component.Fade{Alpha: 1, Friction: config.ParticleFriction},
		})
	}
	return count
}
