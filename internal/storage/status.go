// internal/storage/status.go
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go-circle-shooter/internal/component"
)

// ErrNotFound — сохранённых данных нет, нужно начать с настроек по умолчанию
var ErrNotFound = errors.New("not found")

const statusFile = "status"

// StatusStore хранит статус сессии строкой в файле data_dir/status.
// Разбор строгий: неизвестное значение — ошибка, а не статус по умолчанию.
type StatusStore struct {
	path string
}

func NewStatusStore(dir string) *StatusStore {
	return &StatusStore{path: filepath.Join(dir, statusFile)}
}

func (s *StatusStore) Save(status component.GameStatus) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(status.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write status: %w", err)
	}
	return nil
}

func (s *StatusStore) Load() (component.GameStatus, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return component.StatusUp, ErrNotFound
		}
		return component.StatusUp, fmt.Errorf("failed to read status: %w", err)
	}
	return component.ParseGameStatus(strings.TrimSpace(string(data)))
}
