// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go-circle-shooter/internal/defs"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Переменные окружения, перекрывающие значения из config.yaml
const (
	EnvSeed      = "SHOOTER_SEED"
	EnvDataDir   = "SHOOTER_DATA_DIR"
	EnvLogLevel  = "SHOOTER_LOG_LEVEL"
	EnvPprofAddr = "SHOOTER_PPROF"
	EnvAudio     = "SHOOTER_AUDIO"
)

// Settings — настройки, которые можно менять без перекомпиляции.
type Settings struct {
	Seed         int64             `yaml:"seed"`
	DataDir      string            `yaml:"data_dir"`
	LogLevel     string            `yaml:"log_level"`
	PprofAddr    string            `yaml:"pprof_addr"`
	Audio        AudioSettings     `yaml:"audio"`
	Gameplay     GameplaySettings  `yaml:"gameplay"`
	Upgrades     defs.UpgradeTable `yaml:"upgrades"`
	UpgradesFile string            `yaml:"upgrades_file"` // отдельный YAML с таблицей, перекрывает upgrades
}

type AudioSettings struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// GameplaySettings — параметры симуляции.
type GameplaySettings struct {
	PlayerSpeed          float64       `yaml:"player_speed"`
	EnemySpeed           float64       `yaml:"enemy_speed"`
	EliminationThreshold int           `yaml:"elimination_threshold"`
	ZeroVerticalOnClamp  bool          `yaml:"zero_vertical_on_clamp"`
	PowerUpDuration      time.Duration `yaml:"power_up_duration"`
	PowerUpInterval      time.Duration `yaml:"power_up_interval"`
	SnapshotInterval     time.Duration `yaml:"snapshot_interval"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		DataDir:  ".shooter",
		LogLevel: "info",
		Audio: AudioSettings{
			Enabled: true,
			Volume:  0.4,
		},
		Gameplay: GameplaySettings{
			PlayerSpeed:          PlayerSpeed,
			EnemySpeed:           EnemySpeed,
			EliminationThreshold: EliminationThreshold,
			PowerUpDuration:      PowerUpDuration,
			PowerUpInterval:      PowerUpSpawnInterval,
			SnapshotInterval:     SnapshotInterval,
		},
		Upgrades: defs.DefaultUpgrades,
	}
}

// LoadSettings читает YAML-файл поверх настроек по умолчанию.
// Отсутствующий файл не является ошибкой.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.UpgradesFile != "" {
		if !filepath.IsAbs(s.UpgradesFile) {
			s.UpgradesFile = filepath.Join(filepath.Dir(path), s.UpgradesFile)
		}
		table, err := defs.LoadUpgrades(s.UpgradesFile)
		if err != nil {
			return s, err
		}
		s.Upgrades = table
	}
	if err := s.Upgrades.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// ApplyEnv загружает .env (если он есть) и применяет переменные SHOOTER_*.
func (s *Settings) ApplyEnv(envFile string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		s.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvPprofAddr); v != "" {
		s.PprofAddr = v
	}
	if v := os.Getenv(EnvAudio); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvAudio, err)
		}
		s.Audio.Enabled = enabled
	}
	return nil
}
