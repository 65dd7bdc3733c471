// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"time"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/defs"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/interfaces"
	"go-circle-shooter/internal/storage"
	"go-circle-shooter/internal/system"
	"go-circle-shooter/internal/timer"
	"go-circle-shooter/internal/utils"
	putils "go-circle-shooter/pkg/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrInvalidCanvas — холст нулевого или отрицательного размера
var ErrInvalidCanvas = errors.New("invalid canvas size")

var _ interfaces.Game = (*Game)(nil)

// SnapshotSaver — хранилище периодических снимков
type SnapshotSaver interface {
	Save(snap *storage.Snapshot) (string, error)
	Prune(keep int) (int, error)
}

// Game holds the simulation context, its systems and session timers.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Scheduler        *timer.Scheduler
	Rng              *utils.PRNGService
	MovementSystem   *system.MovementSystem
	PowerUpSystem    *system.PowerUpSystem
	ProjectileSystem *system.ProjectileSystem
	ParticleSystem   *system.ParticleSystem
	CombatSystem     *system.CombatSystem
	RenderSystem     *system.RenderSystem
	Spawner          *system.Spawner
	StatusMachine    *system.StatusMachine

	settings  config.Settings
	baseLog   zerolog.Logger
	log       zerolog.Logger
	sessionID string

	aimX, aimY     float64
	moveDX, moveDY int

	snapshots    SnapshotSaver
	autosave     *timer.Handle
	autosaveKeep int
}

// NewGame создаёт игру на холсте width×height. Статус сохраняется через
// statusStore (может быть nil), время берётся из clock.
func NewGame(width, height float64, settings config.Settings, clock timer.Clock, statusStore system.StatusStore, log zerolog.Logger) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %vx%v", ErrInvalidCanvas, width, height)
	}
	if len(settings.Upgrades) == 0 {
		settings.Upgrades = defs.DefaultUpgrades
	}
	if err := settings.Upgrades.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS(width, height)
	eventDispatcher := event.NewDispatcher()
	scheduler := timer.New(clock)
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Scheduler:       scheduler,
		Rng:             rng,
		settings:        settings,
		baseLog:         log,
	}
	g.newSession()

	gp := settings.Gameplay
	g.MovementSystem = system.NewMovementSystem(ecs, gp.ZeroVerticalOnClamp)
	g.PowerUpSystem = system.NewPowerUpSystem(ecs, scheduler, eventDispatcher, gp.PowerUpDuration)
	g.ProjectileSystem = system.NewProjectileSystem(ecs)
	g.ParticleSystem = system.NewParticleSystem(ecs, rng)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.ParticleSystem, settings.Upgrades, gp.EliminationThreshold, g.gameOver)
	g.RenderSystem = system.NewRenderSystem(ecs)
	g.Spawner = system.NewSpawner(ecs, scheduler, rng, g.log, gp.EnemySpeed, gp.PowerUpInterval)
	g.StatusMachine = system.NewStatusMachine(ecs, statusStore, eventDispatcher, g.log)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.GameOver, event.Restarted, event.PowerUpCollected, event.PowerUpExpired)

	g.createPlayer()
	g.armSession()
	return g, nil
}

func (g *Game) newSession() {
	g.sessionID = uuid.NewString()
	g.log = g.baseLog.With().Str("session", g.sessionID).Logger()
}

// Update — один кадр симуляции: таймеры, затем системы в фиксированном порядке,
// затем отложенные изменения коллекций и доставка событий.
func (g *Game) Update() error {
	if g.ECS.Player == nil {
		return nil
	}

	// Таймеры идут в любом статусе: окончание бонуса считается по реальному времени
	g.Scheduler.Advance()

	if g.ECS.Status != component.StatusUp {
		g.EventDispatcher.Flush()
		return nil
	}

	g.ECS.BeginTick()
	g.ECS.Frames++
	g.MovementSystem.Update()
	g.PowerUpSystem.Update()
	g.ProjectileSystem.RapidFire(g.aimX, g.aimY)
	g.ParticleSystem.Update()
	g.ProjectileSystem.Update()
	g.CombatSystem.Update()
	g.ECS.ApplyPending()

	g.EventDispatcher.Flush()
	return nil
}

func (g *Game) Draw(canvas interfaces.Canvas) {
	g.RenderSystem.Draw(canvas)
}

func (g *Game) Status() component.GameStatus {
	return g.ECS.Status
}

func (g *Game) Stats() component.Stats {
	return g.ECS.Stats
}

// SessionID — идентификатор текущей сессии, меняется при рестарте
func (g *Game) SessionID() string {
	return g.sessionID
}

// Shoot выпускает снаряд из центра игрока в сторону (x, y). Только в статусе up.
func (g *Game) Shoot(x, y float64) bool {
	player := g.ECS.Player
	if player == nil || g.ECS.Status != component.StatusUp {
		return false
	}
	g.ECS.Add(system.NewProjectile(player.Position.X, player.Position.Y, x, y,
		config.ProjectileSpeed, config.ProjectileRadius, config.ProjectileColor, false))
	g.ECS.Stats.Projectiles++
	g.EventDispatcher.Publish(event.Event{Type: event.ProjectileFired, Data: event.StatsData{Stats: g.ECS.Stats}})
	return true
}

// SetMoveIntent запоминает направление по осям (-1, 0, 1).
// Скорость игрока меняется только в статусе up, после паузы намерение применяется заново.
func (g *Game) SetMoveIntent(dx, dy int) {
	g.moveDX, g.moveDY = putils.Sign(dx), putils.Sign(dy)
	if g.ECS.Status == component.StatusUp {
		g.applyMoveIntent()
	}
}

func (g *Game) MoveIntent() (dx, dy int) {
	return g.moveDX, g.moveDY
}

func (g *Game) applyMoveIntent() {
	if player := g.ECS.Player; player != nil {
		speed := g.settings.Gameplay.PlayerSpeed
		player.Velocity = component.Velocity{DX: float64(g.moveDX) * speed, DY: float64(g.moveDY) * speed}
	}
}

func (g *Game) SetAim(x, y float64) {
	g.aimX, g.aimY = x, y
}

func (g *Game) Aim() (x, y float64) {
	return g.aimX, g.aimY
}

// Resize меняет размеры холста и возвращает игрока в его пределы
func (g *Game) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == g.ECS.Width && height == g.ECS.Height {
		return
	}
	g.ECS.Width, g.ECS.Height = width, height
	system.ClampInside(g.ECS.Player, width, height)
}

// TogglePause ставит игру на паузу или снимает с неё вместе с таймерами спавна.
func (g *Game) TogglePause() error {
	if err := g.StatusMachine.Toggle(); err != nil {
		return err
	}
	if g.ECS.Status == component.StatusPaused {
		g.Spawner.Suspend()
		return nil
	}
	g.Spawner.Resume()
	g.applyMoveIntent()
	return nil
}

// Restart начинает новую сессию: все таймеры отменяются, счётчики
// (кроме смертей) обнуляются, временные сущности удаляются, игрок создаётся заново.
func (g *Game) Restart() error {
	if err := g.StatusMachine.Restart(); err != nil {
		return err
	}

	g.Scheduler.CancelAll()
	g.PowerUpSystem.Reset()

	g.ECS.Stats = component.Stats{Deaths: g.ECS.Stats.Deaths}
	g.ECS.Frames = 0
	g.ECS.ClearTransient()
	g.createPlayer()
	g.moveDX, g.moveDY = 0, 0

	g.newSession()
	g.armSession()
	g.EventDispatcher.Publish(event.Event{Type: event.Restarted, Data: event.StatsData{Stats: g.ECS.Stats}})
	return nil
}

// gameOver вызывается системой боя при столкновении игрока с врагом.
func (g *Game) gameOver() {
	if err := g.StatusMachine.GameOver(); err != nil {
		g.log.Warn().Err(err).Msg("game over ignored")
		return
	}
	g.ECS.Stats.Deaths++
	g.Spawner.StopEnemies()
	g.Spawner.Suspend()
	g.EventDispatcher.Publish(event.Event{Type: event.GameOver, Data: event.StatsData{Stats: g.ECS.Stats}})
}

// RestoreStatus выставляет сохранённый статус при запуске и приводит таймеры спавна в соответствие.
func (g *Game) RestoreStatus(status component.GameStatus) {
	g.StatusMachine.Restore(status)
	g.armSession()
}

// armSession запускает таймеры сессии в соответствии с текущим статусом
func (g *Game) armSession() {
	g.Spawner.Start()
	switch g.ECS.Status {
	case component.StatusPaused:
		g.Spawner.Suspend()
	case component.StatusDown:
		g.Spawner.StopEnemies()
		g.Spawner.Suspend()
	}
	if g.snapshots != nil && !g.autosave.Active() {
		g.autosave = g.Scheduler.Every(g.settings.Gameplay.SnapshotInterval, g.saveSnapshot)
	}
}

func (g *Game) createPlayer() {
	g.ECS.Add(&component.Entity{
		Kind:     component.KindPlayer,
		Position: component.Position{X: g.ECS.Width / 2, Y: g.ECS.Height / 2},
		Radius:   config.PlayerRadius,
		Color:    config.PlayerColor,
		Combat:   &component.Combat{Damage: g.settings.Upgrades.DamageFor(0)},
		Player:   &component.PlayerState{BaseColor: config.PlayerColor},
	})
}

// EnableAutosave включает периодические снимки состояния.
func (g *Game) EnableAutosave(store SnapshotSaver, interval time.Duration, keep int) {
	if interval <= 0 {
		interval = config.SnapshotInterval
	}
	g.snapshots = store
	g.settings.Gameplay.SnapshotInterval = interval
	g.autosaveKeep = keep
	g.autosave.Cancel()
	g.autosave = g.Scheduler.Every(interval, g.saveSnapshot)
}

func (g *Game) saveSnapshot() {
	if g.snapshots == nil {
		return
	}
	path, err := g.snapshots.Save(g.Snapshot())
	if err != nil {
		g.log.Warn().Err(err).Msg("failed to save snapshot")
		return
	}
	g.log.Debug().Str("file", path).Msg("snapshot saved")
	if g.autosaveKeep > 0 {
		if _, err := g.snapshots.Prune(g.autosaveKeep); err != nil {
			g.log.Warn().Err(err).Msg("failed to prune snapshots")
		}
	}
}
