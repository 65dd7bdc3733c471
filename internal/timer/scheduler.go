// internal/timer/scheduler.go
package timer

import "time"

// Handle — отменяемый и приостанавливаемый таймер.
// Все методы безопасно вызывать повторно и на nil.
type Handle struct {
	s         *Scheduler
	seq       uint64
	due       time.Time
	interval  time.Duration // 0 для одноразового таймера
	fn        func()
	remaining time.Duration // остаток до срабатывания на момент приостановки
	suspended bool
	cancelled bool
}

// Scheduler — кооперативный планировщик таймеров. Не потокобезопасен:
// таймеры срабатывают только внутри Advance, в том же потоке, что и симуляция.
type Scheduler struct {
	clock   Clock
	handles []*Handle
	seq     uint64
}

// New создаёт планировщик поверх часов clock
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// Now — текущее время часов планировщика
func (s *Scheduler) Now() time.Time {
	return s.clock.Now()
}

// After вызывает fn один раз через d
func (s *Scheduler) After(d time.Duration, fn func()) *Handle {
	return s.add(d, 0, fn)
}

// Every вызывает fn каждые d, начиная через d
func (s *Scheduler) Every(d time.Duration, fn func()) *Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) *Handle {
	s.seq++
	h := &Handle{
		s:        s,
		seq:      s.seq,
		due:      s.clock.Now().Add(d),
		interval: interval,
		fn:       fn,
	}
	s.handles = append(s.handles, h)
	return h
}

// Advance запускает все таймеры, срок которых наступил, в порядке сроков.
// Периодический таймер, пропустивший несколько периодов, срабатывает один раз
// и переносится на период вперёд от текущего момента. Возвращает число срабатываний.
func (s *Scheduler) Advance() int {
	now := s.clock.Now()
	fired := 0
	for {
		h := s.nextDue(now)
		if h == nil {
			break
		}
		if h.interval > 0 {
			h.due = h.due.Add(h.interval)
			if !h.due.After(now) {
				h.due = now.Add(h.interval)
			}
		} else {
			h.cancelled = true
		}
		h.fn()
		fired++
	}
	s.compact()
	return fired
}

func (s *Scheduler) nextDue(now time.Time) *Handle {
	var next *Handle
	for _, h := range s.handles {
		if h.cancelled || h.suspended || h.due.After(now) {
			continue
		}
		if next == nil || h.due.Before(next.due) || (h.due.Equal(next.due) && h.seq < next.seq) {
			next = h
		}
	}
	return next
}

func (s *Scheduler) compact() {
	kept := s.handles[:0]
	for _, h := range s.handles {
		if !h.cancelled {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.handles); i++ {
		s.handles[i] = nil
	}
	s.handles = kept
}

// CancelAll отменяет все таймеры
func (s *Scheduler) CancelAll() {
	for _, h := range s.handles {
		h.cancelled = true
	}
	s.handles = nil
}

// Len — число живых (не отменённых) таймеров, включая приостановленные
func (s *Scheduler) Len() int {
	n := 0
	for _, h := range s.handles {
		if !h.cancelled {
			n++
		}
	}
	return n
}

// Cancel отменяет таймер
func (h *Handle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled = true
}

// Suspend замораживает таймер, запоминая остаток времени
func (h *Handle) Suspend() {
	if h == nil || h.cancelled || h.suspended {
		return
	}
	h.remaining = h.due.Sub(h.s.clock.Now())
	if h.remaining < 0 {
		h.remaining = 0
	}
	h.suspended = true
}

// Resume продолжает отсчёт с сохранённого остатка
func (h *Handle) Resume() {
	if h == nil || h.cancelled || !h.suspended {
		return
	}
	h.due = h.s.clock.Now().Add(h.remaining)
	h.suspended = false
}

// Active — таймер не отменён и (для одноразового) ещё не сработал
func (h *Handle) Active() bool {
	return h != nil && !h.cancelled
}

// Suspended — таймер приостановлен
func (h *Handle) Suspended() bool {
	return h != nil && !h.cancelled && h.suspended
}

// Remaining — время до следующего срабатывания; для приостановленного
// таймера — сохранённый остаток. 0 для отменённого таймера.
func (h *Handle) Remaining() time.Duration {
	if !h.Active() {
		return 0
	}
	if h.suspended {
		return h.remaining
	}
	return max(h.due.Sub(h.s.clock.Now()), 0)
}

// Interval — период таймера (0 для одноразового)
func (h *Handle) Interval() time.Duration {
	if h == nil {
		return 0
	}
	return h.interval
}
