package system

import (
	"io"
	"math"
	"testing"
	"time"

	"go-circle-shooter/internal/component"
	"go-circle-shooter/internal/config"
	"go-circle-shooter/internal/defs"
	"go-circle-shooter/internal/entity"
	"go-circle-shooter/internal/event"
	"go-circle-shooter/internal/timer"
	"go-circle-shooter/internal/utils"

	"github.com/rs/zerolog"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newWorld() *entity.ECS {
	ecs := entity.NewECS(800, 600)
	ecs.Add(&component.Entity{
		Kind:     component.KindPlayer,
		Position: component.Position{X: 400, Y: 300},
		Radius:   config.PlayerRadius,
		Color:    config.PlayerColor,
		Combat:   &component.Combat{Damage: 1},
		Player:   &component.PlayerState{BaseColor: config.PlayerColor},
	})
	return ecs
}

func addEnemy(ecs *entity.ECS, x, y float64, health int) *component.Entity {
	e := &component.Entity{
		Kind:     component.KindEnemy,
		Position: component.Position{X: x, Y: y},
		Radius:   float64(health),
		Combat:   &component.Combat{Health: health, MaxHealth: health},
		Enemy:    &component.Enemy{BaseRadius: float64(health)},
	}
	ecs.Add(e)
	return e
}

func addProjectile(ecs *entity.ECS, x, y float64) *component.Entity {
	p := &component.Entity{
		Kind:       component.KindProjectile,
		Position:   component.Position{X: x, Y: y},
		Radius:     config.ProjectileRadius,
		Projectile: &component.Projectile{},
	}
	ecs.Add(p)
	return p
}

type combatRig struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	combat     *CombatSystem
	playerHits int
}

func newCombatRig() *combatRig {
	r := &combatRig{ecs: newWorld(), dispatcher: event.NewDispatcher()}
	particles := NewParticleSystem(r.ecs, utils.NewPRNGService(1))
	r.combat = NewCombatSystem(r.ecs, r.dispatcher, particles, defs.DefaultUpgrades, config.EliminationThreshold, func() { r.playerHits++ })
	return r
}

func (r *combatRig) tick() {
	r.ecs.BeginTick()
	r.combat.Update()
	r.ecs.ApplyPending()
	r.dispatcher.Flush()
}

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		bx   float64
		want bool
	}{
		{"overlap", 10, true},
		{"touching", 15, false},
		{"apart", 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &component.Entity{Radius: 10}
			b := &component.Entity{Position: component.Position{X: tt.bx}, Radius: 5}
			if got := Collides(a, b); got != tt.want {
				t.Fatalf("Collides = %v, want %v", got, tt.want)
			}
		})
	}
	if Collides(nil, &component.Entity{}) {
		t.Fatalf("nil entity must not collide")
	}
}

func TestMovePlayerNeverLeavesCanvasHorizontally(t *testing.T) {
	p := &component.Entity{Position: component.Position{X: 400, Y: 300}, Radius: 20, Velocity: component.Velocity{DX: 2}}
	const w, h = 800.0, 600.0
	for i := 0; i < 1000; i++ {
		MovePlayer(p, w, h, false)
		if p.Position.X+p.Radius > w-1 {
			t.Fatalf("player x = %v exceeds %v", p.Position.X, w-p.Radius-1)
		}
		if p.Velocity.DX == 0 {
			break
		}
	}
	if p.Velocity.DX != 0 {
		t.Fatalf("DX should be zeroed at the edge")
	}
}

func TestMovePlayerVerticalClampKeepsVelocity(t *testing.T) {
	p := &component.Entity{Position: component.Position{X: 400, Y: 579}, Radius: 20, Velocity: component.Velocity{DY: 2}}
	MovePlayer(p, 800, 600, false)
	if p.Position.Y != 579 {
		t.Fatalf("y = %v, want unchanged 579", p.Position.Y)
	}
	if p.Velocity.DY != 2 {
		t.Fatalf("DY = %v, want 2 (asymmetric clamp)", p.Velocity.DY)
	}

	MovePlayer(p, 800, 600, true)
	if p.Velocity.DY != 0 {
		t.Fatalf("DY = %v, want 0 with zeroVertical", p.Velocity.DY)
	}
}

func TestEnemyEliminatedExactlyOnTenthHit(t *testing.T) {
	r := newCombatRig()
	enemy := addEnemy(r.ecs, 100, 100, 10)

	for hit := 1; hit <= 10; hit++ {
		addProjectile(r.ecs, enemy.Position.X, enemy.Position.Y)
		r.tick()
		alive := len(r.ecs.Enemies) == 1
		if hit < 10 && !alive {
			t.Fatalf("enemy removed after %d hits", hit)
		}
		if hit == 10 && alive {
			t.Fatalf("enemy survived 10 hits")
		}
	}
	if r.ecs.Stats.Eliminations != 1 {
		t.Fatalf("eliminations = %d, want 1", r.ecs.Stats.Eliminations)
	}
	if len(r.ecs.Projectiles) != 0 {
		t.Fatalf("projectiles left: %d", len(r.ecs.Projectiles))
	}
}

func TestEliminationScoreUsesSpawnRadius(t *testing.T) {
	r := newCombatRig()
	r.ecs.Player.Combat.Damage = 100
	enemy := addEnemy(r.ecs, 100, 100, 15)
	enemy.Enemy.BaseRadius = 15.7
	enemy.Radius = 11 // уже уменьшился после прошлых попаданий

	var got event.EliminationData
	r.dispatcher.Subscribe(event.EnemyEliminated, event.ListenerFunc(func(e event.Event) {
		got = e.Data.(event.EliminationData)
	}))

	addProjectile(r.ecs, 100, 100)
	r.tick()

	if r.ecs.Stats.Score != 1500 {
		t.Fatalf("score = %d, want 1500", r.ecs.Stats.Score)
	}
	if got.Points != 1500 || got.Radius != 15.7 {
		t.Fatalf("elimination event = %+v", got)
	}
	if len(r.ecs.Particles) != 31 {
		t.Fatalf("particles = %d, want floor(15.7*2) = 31", len(r.ecs.Particles))
	}
}

func TestEliminationScoreUsesRadiusWithoutHealth(t *testing.T) {
	r := newCombatRig()
	r.ecs.Player.Combat.Damage = 100
	r.ecs.Add(&component.Entity{
		Kind:     component.KindEnemy,
		Position: component.Position{X: 100, Y: 100},
		Radius:   15.7,
	})
	addProjectile(r.ecs, 100, 100)
	r.tick()

	if r.ecs.Stats.Score != 1500 || len(r.ecs.Particles) != 31 {
		t.Fatalf("score = %d, particles = %d, want 1500 and 31", r.ecs.Stats.Score, len(r.ecs.Particles))
	}
}

func TestEliminationScoreIndependentOfHitPattern(t *testing.T) {
	tests := []struct {
		name   string
		damage int
		gap    int // тиков без попаданий между выстрелами
	}{
		{"twenty single hits", 1, 0},
		{"two heavy hits back to back", 10, 0},
		{"two heavy hits with a pause", 10, 20},
		{"one shot", 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newCombatRig()
			r.ecs.Player.Combat.Damage = tt.damage
			enemy := addEnemy(r.ecs, 100, 100, 20)
			for i := 0; i < 20 && len(r.ecs.Enemies) == 1; i++ {
				addProjectile(r.ecs, enemy.Position.X, enemy.Position.Y)
				r.tick()
				for j := 0; j < tt.gap; j++ {
					r.tick()
				}
			}
			if len(r.ecs.Enemies) != 0 {
				t.Fatalf("enemy survived")
			}
			if r.ecs.Stats.Score != 2000 {
				t.Fatalf("score = %d, want 2000", r.ecs.Stats.Score)
			}
		})
	}
}

func TestDamageUpgradesWithScore(t *testing.T) {
	r := newCombatRig()
	r.ecs.Stats.Score = 4000
	r.ecs.Player.Combat.Damage = 20
	addEnemy(r.ecs, 100, 100, 10)
	addProjectile(r.ecs, 100, 100)
	r.tick()

	if r.ecs.Player.Combat.Damage != 2 {
		t.Fatalf("damage = %d, want 2 at score %d", r.ecs.Player.Combat.Damage, r.ecs.Stats.Score)
	}
}

func TestOneProjectileDamagesOneEnemy(t *testing.T) {
	r := newCombatRig()
	first := addEnemy(r.ecs, 100, 100, 10)
	second := addEnemy(r.ecs, 105, 100, 10)
	addProjectile(r.ecs, 102, 100)

	r.tick()

	if first.Combat.Health != 9 {
		t.Fatalf("first enemy health = %d, want 9", first.Combat.Health)
	}
	if second.Combat.Health != 10 {
		t.Fatalf("second enemy health = %d, want 10", second.Combat.Health)
	}
	if len(r.ecs.Projectiles) != 0 {
		t.Fatalf("projectile not consumed")
	}
}

func TestHitStartsShrink(t *testing.T) {
	r := newCombatRig()
	enemy := addEnemy(r.ecs, 100, 100, 10)
	addProjectile(r.ecs, 100, 100)
	r.tick()

	if enemy.Shrink == nil {
		t.Fatalf("hit should start a shrink")
	}
	want := 10 * (config.ShrinkFloor + (1-config.ShrinkFloor)*0.9)
	if math.Abs(enemy.Shrink.To-want) > 1e-9 {
		t.Fatalf("shrink target = %v, want %v", enemy.Shrink.To, want)
	}
	for i := 0; i < config.EnemyShrinkTicks; i++ {
		r.tick()
	}
	if math.Abs(enemy.Radius-want) > 1e-9 {
		t.Fatalf("radius = %v, want %v", enemy.Radius, want)
	}
}

func TestPlayerCollisionStopsEvaluation(t *testing.T) {
	r := newCombatRig()
	addEnemy(r.ecs, 400, 300, 10)
	later := addEnemy(r.ecs, 100, 100, 10)
	addProjectile(r.ecs, 100, 100)

	r.tick()

	if r.playerHits != 1 {
		t.Fatalf("player hits = %d, want 1", r.playerHits)
	}
	if later.Combat.Health != 10 {
		t.Fatalf("enemy after the collision was evaluated")
	}
}

func TestEnemyCulledWhenLeavingCanvas(t *testing.T) {
	r := newCombatRig()
	leaving := addEnemy(r.ecs, -30, 100, 10)
	leaving.Velocity.DX = -1
	entering := addEnemy(r.ecs, -30, 200, 10)
	entering.Velocity.DX = 1

	r.tick()

	if len(r.ecs.Enemies) != 1 || r.ecs.Enemies[0] != entering {
		t.Fatalf("only the entering enemy should remain")
	}
}

func TestParticlesFadeAndDisappear(t *testing.T) {
	ecs := newWorld()
	ps := NewParticleSystem(ecs, utils.NewPRNGService(7))
	if n := ps.SpawnBurst(400, 300, 10, config.PlayerColor); n != 20 {
		t.Fatalf("burst = %d, want 20", n)
	}
	for i := 0; i < 2000 && len(ecs.Particles) > 0; i++ {
		ecs.BeginTick()
		ps.Update()
		ecs.ApplyPending()
	}
	if len(ecs.Particles) != 0 {
		t.Fatalf("%d particles never faded", len(ecs.Particles))
	}
}

func TestRapidFireOnEvenFrames(t *testing.T) {
	ecs := newWorld()
	proj := NewProjectileSystem(ecs)
	ecs.Player.Player.ActivePowerUp = component.PowerUpRapidFire

	fired := 0
	for f := uint64(1); f <= 10; f++ {
		ecs.Frames = f
		if proj.RapidFire(0, 0) {
			fired++
		}
	}
	if fired != 5 {
		t.Fatalf("rapid-fire shots = %d, want 5", fired)
	}
	if ecs.Stats.Projectiles != 0 {
		t.Fatalf("rapid fire must not count projectiles")
	}
}

func TestRapidFireShotMovesInTheSameTick(t *testing.T) {
	ecs := newWorld()
	proj := NewProjectileSystem(ecs)
	ecs.Player.Player.ActivePowerUp = component.PowerUpRapidFire
	start := ecs.Player.Position

	ecs.BeginTick()
	ecs.Frames = 2
	if !proj.RapidFire(start.X+100, start.Y) {
		t.Fatalf("no shot on an even frame")
	}
	proj.Update()
	ecs.ApplyPending()

	if len(ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ecs.Projectiles))
	}
	want := start.X + config.RapidFireProjectileSpeed
	if got := ecs.Projectiles[0].Position.X; math.Abs(got-want) > 1e-9 {
		t.Fatalf("shot x = %v, want %v after one step", got, want)
	}
}

func newSpawnerRig() (*Spawner, *timer.Scheduler, *timer.ManualClock, *entity.ECS) {
	clock := timer.NewManualClock(epoch)
	scheduler := timer.New(clock)
	ecs := newWorld()
	sp := NewSpawner(ecs, scheduler, utils.NewPRNGService(3), zerolog.New(io.Discard), config.EnemySpeed, config.PowerUpSpawnInterval)
	return sp, scheduler, clock, ecs
}

func TestSpawnerStartIsIdempotent(t *testing.T) {
	sp, scheduler, _, _ := newSpawnerRig()
	sp.Start()
	sp.Start()
	if scheduler.Len() != 2 {
		t.Fatalf("handles = %d, want 2", scheduler.Len())
	}
	interval := sp.EnemyInterval()
	if interval < config.EnemySpawnMinInterval || interval >= config.EnemySpawnMinInterval+config.EnemySpawnJitter {
		t.Fatalf("enemy interval %v out of range", interval)
	}

	sp.Suspend()
	sp.Resume()
	sp.Start()
	if scheduler.Len() != 2 {
		t.Fatalf("handles after resume = %d, want 2", scheduler.Len())
	}
}

func TestSpawnerSuspendPreservesCadence(t *testing.T) {
	sp, scheduler, clock, ecs := newSpawnerRig()
	sp.Start()
	interval := sp.EnemyInterval()

	clock.Advance(interval / 2)
	scheduler.Advance()
	sp.Suspend()
	clock.Advance(time.Hour)
	scheduler.Advance()
	if len(ecs.Enemies) != 0 || len(ecs.PowerUps) != 0 {
		t.Fatalf("spawned while suspended")
	}

	sp.Resume()
	clock.Advance(interval - interval/2)
	scheduler.Advance()
	if len(ecs.Enemies) != 1 {
		t.Fatalf("enemies = %d, want 1 after the remaining half interval", len(ecs.Enemies))
	}
}

func TestSpawnedEnemyAimsAtCentre(t *testing.T) {
	sp, _, _, ecs := newSpawnerRig()
	for i := 0; i < 50; i++ {
		sp.SpawnEnemy()
	}
	for _, e := range ecs.Enemies {
		if e.Combat.Health < 10 || e.Combat.Health > 20 {
			t.Fatalf("health %d out of range", e.Combat.Health)
		}
		if e.Radius != float64(e.Combat.Health) {
			t.Fatalf("radius %v != health %d", e.Radius, e.Combat.Health)
		}
		if !e.IsOutOfBounds(ecs.Width, ecs.Height) && !touchesEdge(e, ecs.Width, ecs.Height) {
			t.Fatalf("enemy spawned inside the canvas at %+v", e.Position)
		}
		toX, toY := ecs.Width/2-e.Position.X, ecs.Height/2-e.Position.Y
		if e.Velocity.DX*toX+e.Velocity.DY*toY <= 0 {
			t.Fatalf("enemy at %+v does not head to the centre", e.Position)
		}
	}
}

func touchesEdge(e *component.Entity, w, h float64) bool {
	p, r := e.Position, e.Radius
	return p.X+r <= 0 || p.X-r >= w || p.Y+r <= 0 || p.Y-r >= h
}

func TestSpawnerStopEnemiesKeepsPowerUps(t *testing.T) {
	sp, scheduler, _, _ := newSpawnerRig()
	sp.Start()
	sp.StopEnemies()
	enemies, powerUps := sp.Running()
	if enemies || !powerUps {
		t.Fatalf("running = (%v, %v), want (false, true)", enemies, powerUps)
	}
	sp.Stop()
	sp.Stop()
	if scheduler.Len() != 0 {
		t.Fatalf("handles after stop = %d", scheduler.Len())
	}
}

func TestPowerUpExpiresOnWallClock(t *testing.T) {
	clock := timer.NewManualClock(epoch)
	scheduler := timer.New(clock)
	ecs := newWorld()
	dispatcher := event.NewDispatcher()
	pus := NewPowerUpSystem(ecs, scheduler, dispatcher, config.PowerUpDuration)

	ecs.Add(&component.Entity{
		Kind:     component.KindPowerUp,
		Position: ecs.Player.Position,
		Radius:   config.PowerUpRadius,
		Pickup:   &component.Pickup{Kind: component.PowerUpRapidFire},
	})
	ecs.BeginTick()
	pus.Update()
	ecs.ApplyPending()

	if ecs.Player.Player.ActivePowerUp != component.PowerUpRapidFire {
		t.Fatalf("power-up not collected")
	}
	if len(ecs.PowerUps) != 0 {
		t.Fatalf("collected power-up still on canvas")
	}

	clock.Advance(4999 * time.Millisecond)
	scheduler.Advance()
	if !pus.ExpiryPending() {
		t.Fatalf("expired early")
	}
	clock.Advance(time.Millisecond)
	scheduler.Advance()
	if ecs.Player.Player.ActivePowerUp != component.PowerUpNone {
		t.Fatalf("power-up still active after 5000 ms")
	}
	if ecs.Player.Color != config.PlayerColor {
		t.Fatalf("player colour not restored")
	}
}

type memoryStore struct {
	saved []component.GameStatus
}

func (s *memoryStore) Save(status component.GameStatus) error {
	s.saved = append(s.saved, status)
	return nil
}

func TestStatusMachineTransitions(t *testing.T) {
	ecs := newWorld()
	store := &memoryStore{}
	dispatcher := event.NewDispatcher()
	m := NewStatusMachine(ecs, store, dispatcher, zerolog.New(io.Discard))

	var changes []event.StatusData
	dispatcher.Subscribe(event.StatusChanged, event.ListenerFunc(func(e event.Event) {
		changes = append(changes, e.Data.(event.StatusData))
	}))

	steps := []struct {
		name string
		op   func() error
		want component.GameStatus
		ok   bool
	}{
		{"pause", m.Pause, component.StatusPaused, true},
		{"pause twice", m.Pause, component.StatusPaused, false},
		{"game over while paused", m.GameOver, component.StatusPaused, false},
		{"toggle resumes", m.Toggle, component.StatusUp, true},
		{"game over", m.GameOver, component.StatusDown, true},
		{"toggle after game over", m.Toggle, component.StatusDown, false},
		{"resume after game over", m.Resume, component.StatusDown, false},
		{"restart", m.Restart, component.StatusUp, true},
		{"restart while up", m.Restart, component.StatusUp, true},
	}
	for _, st := range steps {
		err := st.op()
		if st.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", st.name, err)
		}
		if !st.ok && err == nil {
			t.Fatalf("%s: expected ErrIllegalTransition", st.name)
		}
		if m.Current() != st.want {
			t.Fatalf("%s: status = %s, want %s", st.name, m.Current(), st.want)
		}
	}

	dispatcher.Flush()
	if len(changes) != 5 || len(store.saved) != 5 {
		t.Fatalf("changes = %d, saved = %d, want 5 each", len(changes), len(store.saved))
	}
	if changes[2].From != component.StatusUp || changes[2].To != component.StatusDown {
		t.Fatalf("third change = %+v", changes[2])
	}
}
