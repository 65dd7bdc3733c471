// internal/timer/clock.go
package timer

import "time"

// Clock — источник времени для планировщика
type Clock interface {
	Now() time.Time
}

// SystemClock возвращает реальное время с монотонными показаниями
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock — управляемое время для тестов
type ManualClock struct {
	now time.Time
}

// NewManualClock создаёт часы, показывающие start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance сдвигает время вперёд на d
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set устанавливает текущее время
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}
