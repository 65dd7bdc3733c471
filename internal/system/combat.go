// internal/system/combat.go
package system

import (
	"math"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/defs"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/types"
)

// CombatSystem двигает врагов и разрешает столкновения враг–игрок и враг–снаряд.
//
// Пары проверяются в порядке коллекций. Снаряд, поглощённый врагом раньше
// в этом тике, пропускается всеми следующими врагами, так что один снаряд
// наносит урон не более одного раза. Удаление отложено до ApplyPending.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	particles       *ParticleSystem
	upgrades        defs.UpgradeTable
	threshold       int
	onPlayerHit     func()
	consumed        map[types.EntityID]struct{}
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, particles *ParticleSystem, upgrades defs.UpgradeTable, threshold int, onPlayerHit func()) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		particles:       particles,
		upgrades:        upgrades,
		threshold:       threshold,
		onPlayerHit:     onPlayerHit,
		consumed:        make(map[types.EntityID]struct{}),
	}
}

func (s *CombatSystem) Update() {
	clear(s.consumed)
	player := s.ecs.Player
	if player == nil {
		return
	}

	cx, cy := s.ecs.Width/2, s.ecs.Height/2
	for _, enemy := range s.ecs.Enemies {
		enemy.Advance()
		if enemy.IsOutOfBounds(s.ecs.Width, s.ecs.Height) && movingAway(enemy, cx, cy) {
			s.ecs.MarkRemoved(enemy.ID)
			continue
		}

		if Collides(player, enemy) {
			if s.onPlayerHit != nil {
				s.onPlayerHit()
			}
			return
		}

		s.resolveHits(enemy, player)
	}
}

func (s *CombatSystem) resolveHits(enemy, player *component.Entity) {
	for _, projectile := range s.ecs.Projectiles {
		if _, used := s.consumed[projectile.ID]; used {
			continue
		}
		if !Collides(projectile, enemy) {
			continue
		}
		s.consumed[projectile.ID] = struct{}{}
		s.ecs.MarkRemoved(projectile.ID)

		if s.hit(enemy, projectile, player) {
			return
		}
	}
}

// hit применяет одно попадание. Возвращает true, если враг уничтожен.
func (s *CombatSystem) hit(enemy, projectile, player *component.Entity) bool {
	damage := 1
	if player.Combat != nil {
		damage = player.Combat.Damage
	}

	radius := scoreRadius(enemy)
	if !ApplyDamage(enemy, damage, s.threshold) {
		s.eventDispatcher.Publish(event.Event{Type: event.EnemyHit, Data: enemy.ID})
		return false
	}

	points := int(math.Floor(radius)) * config.ScorePerRadius
	stats := &s.ecs.Stats
	stats.Eliminations++
	stats.Score += points

	s.particles.SpawnBurst(projectile.Position.X, projectile.Position.Y, radius, enemy.Color)

	newDamage := s.upgrades.DamageFor(stats.Score)
	if player.Combat != nil {
		player.Combat.Damage = newDamage
	}
	s.ecs.MarkRemoved(enemy.ID)

	s.eventDispatcher.Publish(event.Event{Type: event.EnemyEliminated, Data: event.EliminationData{
		Radius: radius,
		Points: points,
		Damage: newDamage,
	}})
	s.eventDispatcher.Publish(event.Event{Type: event.ScoreChanged, Data: event.StatsData{Stats: *stats}})
	return true
}

// scoreRadius — радиус, по которому начисляются очки и размер взрыва.
// У врага со здоровьем это радиус при появлении: уменьшение при попаданиях
// только визуальное. Без Combat радиус и есть здоровье, берётся текущий.
func scoreRadius(enemy *component.Entity) float64 {
	if enemy.Combat != nil && enemy.Enemy != nil && enemy.Enemy.BaseRadius > 0 {
		return enemy.Enemy.BaseRadius
	}
	return enemy.Radius
}

// movingAway — враг за холстом и удаляется от центра, вернуться он уже не может.
func movingAway(e *component.Entity, cx, cy float64) bool {
	toCenterX := cx - e.Position.X
	toCenterY := cy - e.Position.Y
	return e.Velocity.DX*toCenterX+e.Velocity.DY*toCenterY < 0
}
