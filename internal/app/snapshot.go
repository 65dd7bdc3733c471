// internal/app/snapshot.go
package app

import (
	"fmt"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/storage"
	"go-circle-shooter/internal/system"
)

// Snapshot снимает сохраняемую часть состояния
func (g *Game) Snapshot() *storage.Snapshot {
	snap := &storage.Snapshot{
		SessionID: g.sessionID,
		Timestamp: g.Scheduler.Now().UnixMilli(),
		Status:    g.ECS.Status.String(),
		Stats:     g.ECS.Stats,
		Frames:    g.ECS.Frames,
	}
	if p := g.ECS.Player; p != nil {
		snap.Player.Position = p.Position
		if p.Combat != nil {
			snap.Player.Damage = p.Combat.Damage
		}
		if p.Player != nil {
			snap.Player.PowerUp = p.Player.ActivePowerUp
			if p.Player.ActivePowerUp != component.PowerUpNone {
				snap.Player.PowerUpLeft = g.PowerUpSystem.Remaining()
			}
		}
	}
	for _, e := range g.ECS.Enemies {
		rec := storage.EnemyRecord{
			Position: e.Position,
			Velocity: e.Velocity,
			Radius:   e.Radius,
			Color:    e.Color,
		}
		if e.Shrink != nil {
			rec.Radius = e.Shrink.To
		}
		if e.Enemy != nil {
			rec.BaseRadius = e.Enemy.BaseRadius
		}
		if e.Combat != nil {
			rec.Health, rec.MaxHealth = e.Combat.Health, e.Combat.MaxHealth
		}
		snap.Enemies = append(snap.Enemies, rec)
	}
	for _, pu := range g.ECS.PowerUps {
		rec := storage.PowerUpRecord{Position: pu.Position, Velocity: pu.Velocity, Kind: component.PowerUpRapidFire}
		if pu.Pickup != nil {
			rec.Kind = pu.Pickup.Kind
		}
		snap.PowerUps = append(snap.PowerUps, rec)
	}
	return snap
}

// Restore заменяет состояние снимком. Статус в снимке разбирается строго;
// при ошибке состояние не меняется.
func (g *Game) Restore(snap *storage.Snapshot) error {
	if snap == nil {
		return storage.ErrNotFound
	}
	status, err := component.ParseGameStatus(snap.Status)
	if err != nil {
		return fmt.Errorf("failed to restore snapshot: %w", err)
	}

	g.Scheduler.CancelAll()
	g.PowerUpSystem.Reset()
	g.ECS.ClearTransient()
	g.ECS.Stats = snap.Stats
	g.ECS.Frames = snap.Frames
	g.createPlayer()

	player := g.ECS.Player
	player.Position = snap.Player.Position
	system.ClampInside(player, g.ECS.Width, g.ECS.Height)
	if snap.Player.Damage > 0 {
		player.Combat.Damage = snap.Player.Damage
	}

	for _, rec := range snap.Enemies {
		health := rec.Health
		if health <= 0 {
			health = int(rec.Radius)
		}
		maxHealth := max(rec.MaxHealth, health)
		base := rec.BaseRadius
		if base <= 0 {
			base = rec.Radius
		}
		g.ECS.Add(&component.Entity{
			Kind:     component.KindEnemy,
			Position: rec.Position,
			Velocity: rec.Velocity,
			Radius:   rec.Radius,
			Color:    rec.Color,
			Combat:   &component.Combat{Health: health, MaxHealth: maxHealth},
			Enemy:    &component.Enemy{BaseRadius: base},
		})
	}
	for _, rec := range snap.PowerUps {
		g.ECS.Add(&component.Entity{
			Kind:     component.KindPowerUp,
			Position: rec.Position,
			Velocity: rec.Velocity,
			Radius:   config.PowerUpRadius,
			Color:    config.PowerUpColor,
			Pickup:   &component.Pickup{Kind: rec.Kind},
		})
	}

	g.StatusMachine.Restore(status)
	g.armSession()
	if snap.Player.PowerUp != component.PowerUpNone {
		if snap.Player.PowerUpLeft > 0 {
			g.PowerUpSystem.ActivateFor(snap.Player.PowerUp, snap.Player.PowerUpLeft)
		} else {
			g.PowerUpSystem.Activate(snap.Player.PowerUp)
		}
	}
	g.log.Info().Str("restored_session", snap.SessionID).Stringer("status", status).Int("enemies", len(snap.Enemies)).Msg("snapshot restored")
	return nil
}
