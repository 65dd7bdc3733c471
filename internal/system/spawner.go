// internal/system/spawner.go
package system

import (
	"math"
	"time"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/timer"
	"go-circle-shooter/internal/utils"
	"go-circle-shooter/pkg/render"

	"github.com/rs/zerolog"
)

// Spawner держит два периодических таймера: врагов и бонусов.
// Интервал врагов выбирается один раз на сессию: rand*jitter + min.
type Spawner struct {
	ecs             *entity.ECS
	scheduler       *timer.Scheduler
	rng             *utils.PRNGService
	log             zerolog.Logger
	enemySpeed      float64
	powerUpInterval time.Duration

	enemies  *timer.Handle
	powerUps *timer.Handle
}

func NewSpawner(ecs *entity.ECS, scheduler *timer.Scheduler, rng *utils.PRNGService, log zerolog.Logger, enemySpeed float64, powerUpInterval time.Duration) *Spawner {
	if powerUpInterval <= 0 {
		powerUpInterval = config.PowerUpSpawnInterval
	}
	return &Spawner{
		ecs:             ecs,
		scheduler:       scheduler,
		rng:             rng,
		log:             log,
		enemySpeed:      enemySpeed,
		powerUpInterval: powerUpInterval,
	}
}

// Start запускает таймеры. Живые таймеры не дублируются, а только продолжаются.
func (s *Spawner) Start() {
	if s.enemies.Active() {
		s.enemies.Resume()
	} else {
		interval := config.EnemySpawnMinInterval + time.Duration(s.rng.Float64()*float64(config.EnemySpawnJitter))
		s.enemies = s.scheduler.Every(interval, s.SpawnEnemy)
		s.log.Debug().Dur("interval", interval).Msg("enemy spawner started")
	}

	if s.powerUps.Active() {
		s.powerUps.Resume()
	} else {
		s.powerUps = s.scheduler.Every(s.powerUpInterval, s.SpawnPowerUp)
	}
}

// Suspend приостанавливает оба таймера, сохраняя остаток до следующего срабатывания
func (s *Spawner) Suspend() {
	s.enemies.Suspend()
	s.powerUps.Suspend()
}

// Resume продолжает те же таймеры
func (s *Spawner) Resume() {
	s.enemies.Resume()
	s.powerUps.Resume()
}

// StopEnemies отменяет таймер врагов (конец игры)
func (s *Spawner) StopEnemies() {
	s.enemies.Cancel()
}

// Stop отменяет оба таймера
func (s *Spawner) Stop() {
	s.enemies.Cancel()
	s.powerUps.Cancel()
}

// EnemyInterval — интервал врагов текущей сессии, 0 если таймер не запущен
func (s *Spawner) EnemyInterval() time.Duration {
	if !s.enemies.Active() {
		return 0
	}
	return s.enemies.Interval()
}

// Running сообщает, какие таймеры живы и не приостановлены
func (s *Spawner) Running() (enemies, powerUps bool) {
	return s.enemies.Active() && !s.enemies.Suspended(), s.powerUps.Active() && !s.powerUps.Suspended()
}

// SpawnEnemy ставит врага сразу за краем холста, нацеленного в центр.
func (s *Spawner) SpawnEnemy() {
	w, h := s.ecs.Width, s.ecs.Height
	health := int(math.Round(s.rng.Float64()*config.EnemyHealthSpread + config.EnemyMinHealth))
	radius := float64(health)

	var x, y float64
	if s.rng.Chance(0.5) {
		x = -radius
		if s.rng.Chance(0.5) {
			x = w + radius
		}
		y = s.rng.Float64() * h
	} else {
		x = s.rng.Float64() * w
		y = -radius
		if s.rng.Chance(0.5) {
			y = h + radius
		}
	}

	dx, dy := utils.Velocity(x, y, w/2, h/2, s.enemySpeed)
	s.ecs.Add(&component.Entity{
		Kind:     component.KindEnemy,
		Position: component.Position{X: x, Y: y},
		Velocity: component.Velocity{DX: dx, DY: dy},
		Radius:   radius,
		Color:    render.HSL(s.rng.Float64()*360, config.EnemySaturation, config.EnemyLightness),
		Combat:   &component.Combat{Health: health, MaxHealth: health},
		Enemy:    &component.Enemy{BaseRadius: radius},
	})
}

// SpawnPowerUp запускает бонус слева направо на случайной высоте.
func (s *Spawner) SpawnPowerUp() {
	s.ecs.Add(&component.Entity{
		Kind:     component.KindPowerUp,
		Position: component.Position{X: config.PowerUpStartX, Y: s.rng.Float64() * s.ecs.Height},
		Velocity: component.Velocity{DX: s.rng.Float64()*config.PowerUpDXRange + config.PowerUpMinDX},
		Radius:   config.PowerUpRadius,
		Color:    config.PowerUpColor,
		Pickup:   &component.Pickup{Kind: component.PowerUpRapidFire},
	})
}
