// internal/component/visual.go
package component

import "go-circle-shooter/internal/utils"

// Fade — затухание частицы: прозрачность и трение.
type Fade struct {
	Alpha    float64 // от 1 до 0
	Friction float64 // множитель скорости за тик, < 1
}

// Shrink — явное состояние интерполяции радиуса, продвигается раз в тик.
type Shrink struct {
	From, To float64
	Elapsed  int // тиков прошло
	Duration int // всего тиков
}

// NewShrink создаёт анимацию от текущего радиуса к целевому.
func NewShrink(from, to float64, ticks int) *Shrink {
	if ticks < 1 {
		ticks = 1
	}
	return &Shrink{From: from, To: to, Duration: ticks}
}

// Step продвигает анимацию на один тик и возвращает текущий радиус.
func (s *Shrink) Step() float64 {
	if s.Elapsed < s.Duration {
		s.Elapsed++
	}
	return utils.Lerp(s.From, s.To, float64(s.Elapsed)/float64(s.Duration))
}

// Done сообщает, что целевое значение достигнуто.
func (s *Shrink) Done() bool {
	return s.Elapsed >= s.Duration
}
