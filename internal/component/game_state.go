package component

import (
	"errors"
	"fmt"
)

// GameStatus — статус игровой сессии
type GameStatus int

const (
	StatusUp GameStatus = iota
	StatusPaused
	StatusDown
)

var ErrInvalidStatus = errors.New("invalid game status")

func (s GameStatus) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusPaused:
		return "paused"
	case StatusDown:
		return "down"
	}
	return fmt.Sprintf("GameStatus(%d)", int(s))
}

// ParseGameStatus строго разбирает сохранённое значение статуса.
// Неизвестное значение — ошибка, а не значение по умолчанию.
func ParseGameStatus(s string) (GameStatus, error) {
	switch s {
	case "up":
		return StatusUp, nil
	case "paused":
		return StatusPaused, nil
	case "down":
		return StatusDown, nil
	}
	return StatusUp, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Stats — счётчики сессии. Растут только в симуляции, сбрасываются только рестартом.
type Stats struct {
	Score        int
	Projectiles  int
	Eliminations int
	Deaths       int
}
