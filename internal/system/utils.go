// internal/system/utils.go
package system

import (
	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
)

// ApplyDamage наносит урон врагу и сообщает, достигнут ли порог уничтожения.
// Враг с компонентом Combat теряет здоровье, а радиус плавно уменьшается
// пропорционально оставшемуся здоровью. Враг без Combat использует радиус
// как грубую меру здоровья.
func ApplyDamage(enemy *component.Entity, damage, threshold int) (eliminated bool) {
	if damage < 1 {
		damage = 1 // Минимальный урон 1
	}

	if enemy.Combat == nil {
		remaining := enemy.Radius - float64(damage)
		if remaining <= float64(threshold) {
			return true
		}
		enemy.Shrink = component.NewShrink(enemy.Radius, remaining, config.EnemyShrinkTicks)
		return false
	}

	health := enemy.Combat.Health - damage
	if health <= threshold {
		enemy.Combat.Health = threshold
		return true
	}
	enemy.Combat.Health = health

	base := enemy.Radius
	if enemy.Enemy != nil && enemy.Enemy.BaseRadius > 0 {
		base = enemy.Enemy.BaseRadius
	}
	maxHealth := enemy.Combat.MaxHealth
	if maxHealth <= 0 {
		maxHealth = health
	}
	target := base * (config.ShrinkFloor + (1-config.ShrinkFloor)*float64(health)/float64(maxHealth))
	enemy.Shrink = component.NewShrink(enemy.Radius, target, config.EnemyShrinkTicks)
	return false
}
