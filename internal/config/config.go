// internal/config/config.go
package config

import (
	"image/color"
	"time"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	WindowTitle  = "Circle Shooter"

	PlayerRadius = 20.0
	PlayerSpeed  = 2.0 // пикселей за тик на единицу намерения
	PlayerDamage = 1

	ProjectileRadius          = 4.0
	ProjectileSpeed           = 8.0
	RapidFireProjectileRadius = 5.0
	RapidFireProjectileSpeed  = 5.0

	EnemyMinHealth       = 10
	EnemyHealthSpread    = 10 // health = round(rand*spread + min)
	EnemySpeed           = 1.0
	EliminationThreshold = 0
	ScorePerRadius       = 100

	// Радиус раненого врага: base * (ShrinkFloor + (1-ShrinkFloor) * health/maxHealth)
	ShrinkFloor      = 0.6
	EnemyShrinkTicks = 9 // ~150 мс при 60 TPS

	ParticleMaxRadius  = 5.0
	ParticleMaxSpeed   = 8.0
	ParticleFriction   = 0.99
	ParticleAlphaDecay = 0.02
	ParticlesPerRadius = 2.0

	PowerUpRadius  = 18.0
	PowerUpStartX  = -30.0
	PowerUpMinDX   = 2.0
	PowerUpDXRange = 1.0

	RapidFireFrameGate = 2 // автоматический выстрел каждый второй тик

	HUDMarginX     = 16
	HUDMarginY     = 28
	HUDLineSpacing = 24
	HUDFontSize    = 18
	PromptFontSize = 36

	RestartButtonWidth  = 180
	RestartButtonHeight = 48
)

const (
	EnemySpawnMinInterval = 500 * time.Millisecond
	EnemySpawnJitter      = 1000 * time.Millisecond
	PowerUpSpawnInterval  = 5000 * time.Millisecond
	PowerUpDuration       = 5000 * time.Millisecond
	SnapshotInterval      = 10 * time.Second
	SnapshotsToKeep       = 5
	ClickCooldown         = 150 * time.Millisecond
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	TrailColor        = color.RGBA{0, 0, 0, 128} // полупрозрачная заливка даёт шлейф
	PlayerColor       = colornames.Aqua
	PlayerPowerColor  = colornames.Yellow
	ProjectileColor   = colornames.White
	RapidFireColor    = colornames.Yellow
	PowerUpColor      = colornames.Gold
	PowerUpRingColor  = colornames.Orange
	EnemyTextColor    = colornames.Black
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	OverlayColor      = color.RGBA{0, 0, 0, 160}
	ButtonColor       = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor  = color.RGBA{220, 60, 60, 220}
	EnemySaturation   = 0.5
	EnemyLightness    = 0.5
	ParticleDrawAlpha = 0.1
)
