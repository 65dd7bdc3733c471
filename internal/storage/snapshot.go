// internal/storage/snapshot.go
package storage

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-circle-shooter/internal/component"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	snapshotPrefix = "state-"
	snapshotExt    = ".msgpack"
)

// Snapshot — полное состояние сессии. Снаряды и частицы живут доли секунды
// и не сохраняются.
type Snapshot struct {
	SessionID string          `msgpack:"session_id"`
	Timestamp int64           `msgpack:"ts"` // unix ms
	Status    string          `msgpack:"status"`
	Stats     component.Stats `msgpack:"stats"`
	Frames    uint64          `msgpack:"frames"`
	Player    PlayerRecord    `msgpack:"player"`
	Enemies   []EnemyRecord   `msgpack:"enemies"`
	PowerUps  []PowerUpRecord `msgpack:"power_ups"`
}

// PlayerRecord — игрок в снимке. PowerUpLeft — остаток действия бонуса;
// в старых снимках его нет, тогда бонус выдаётся на полную длительность.
type PlayerRecord struct {
	Position    component.Position    `msgpack:"pos"`
	Damage      int                   `msgpack:"damage"`
	PowerUp     component.PowerUpKind `msgpack:"power_up"`
	PowerUpLeft time.Duration         `msgpack:"power_up_left"`
}

type EnemyRecord struct {
	Position   component.Position `msgpack:"pos"`
	Velocity   component.Velocity `msgpack:"vel"`
	Radius     float64            `msgpack:"r"`
	BaseRadius float64            `msgpack:"base_r"`
	Health     int                `msgpack:"hp"`
	MaxHealth  int                `msgpack:"max_hp"`
	Color      color.RGBA         `msgpack:"color"`
}

type PowerUpRecord struct {
	Position component.Position    `msgpack:"pos"`
	Velocity component.Velocity    `msgpack:"vel"`
	Kind     component.PowerUpKind `msgpack:"kind"`
}

// SnapshotStore пишет снимки в data_dir/state-<unix ms>.msgpack.
// В отличие от статуса, чтение снисходительное: битые файлы пропускаются.
type SnapshotStore struct {
	dir string
	log zerolog.Logger
}

func NewSnapshotStore(dir string, log zerolog.Logger) *SnapshotStore {
	return &SnapshotStore{dir: dir, log: log}
}

// Save записывает снимок и возвращает путь к файлу
func (s *SnapshotStore) Save(snap *Snapshot) (string, error) {
	if snap.Timestamp == 0 {
		snap.Timestamp = time.Now().UnixMilli()
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data dir: %w", err)
	}
	path := filepath.Join(s.dir, snapshotPrefix+strconv.FormatInt(snap.Timestamp, 10)+snapshotExt)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

// Latest возвращает самый свежий читаемый снимок или ErrNotFound.
func (s *SnapshotStore) Latest() (*Snapshot, error) {
	files, err := s.list()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			s.log.Warn().Err(err).Str("file", f.path).Msg("skipping unreadable snapshot")
			continue
		}
		var snap Snapshot
		if err := msgpack.Unmarshal(data, &snap); err != nil {
			s.log.Warn().Err(err).Str("file", f.path).Msg("skipping malformed snapshot")
			continue
		}
		return &snap, nil
	}
	return nil, ErrNotFound
}

// Prune оставляет keep самых свежих снимков и возвращает число удалённых
func (s *SnapshotStore) Prune(keep int) (int, error) {
	files, err := s.list()
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	removed := 0
	for i := keep; i < len(files); i++ {
		if err := os.Remove(files[i].path); err != nil {
			return removed, fmt.Errorf("failed to remove snapshot: %w", err)
		}
		removed++
	}
	return removed, nil
}

type snapshotFile struct {
	path string
	ts   int64
}

// list — файлы снимков от новых к старым. Отсутствующий каталог — пустой список.
func (s *SnapshotStore) list() ([]snapshotFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var files []snapshotFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, snapshotPrefix) || !strings.HasSuffix(name, snapshotExt) {
			continue
		}
		ts, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(name, snapshotPrefix), snapshotExt), 10, 64)
		if err != nil {
			continue
		}
		files = append(files, snapshotFile{path: filepath.Join(s.dir, name), ts: ts})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ts > files[j].ts })
	return files, nil
}
