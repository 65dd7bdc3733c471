// internal/logger/logger.go
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New создаёт консольный логгер с метками времени.
// Неизвестный уровень трактуется как info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
