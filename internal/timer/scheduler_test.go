package timer

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAfterFiresOnce(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	calls := 0
	h := s.After(100*time.Millisecond, func() { calls++ })

	clock.Advance(99 * time.Millisecond)
	s.Advance()
	if calls != 0 {
		t.Fatalf("fired early")
	}
	clock.Advance(time.Millisecond)
	s.Advance()
	clock.Advance(time.Second)
	s.Advance()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if h.Active() {
		t.Fatalf("one-shot handle still active after firing")
	}
	if s.Len() != 0 {
		t.Fatalf("scheduler still holds %d handles", s.Len())
	}
}

func TestEveryKeepsCadence(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	calls := 0
	s.Every(500*time.Millisecond, func() { calls++ })

	for i := 0; i < 30; i++ { // 30 кадров по 100 мс
		clock.Advance(100 * time.Millisecond)
		s.Advance()
	}
	if calls != 6 {
		t.Fatalf("calls = %d, want 6", calls)
	}
}

func TestEveryDoesNotCatchUpMissedPeriods(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	calls := 0
	s.Every(time.Second, func() { calls++ })

	clock.Advance(10 * time.Second)
	if fired := s.Advance(); fired != 1 {
		t.Fatalf("fired = %d after a long stall, want 1", fired)
	}
	clock.Advance(999 * time.Millisecond)
	s.Advance()
	if calls != 1 {
		t.Fatalf("rescheduled too early: calls = %d", calls)
	}
	clock.Advance(time.Millisecond)
	s.Advance()
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestSuspendPreservesRemainingTime(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	calls := 0
	h := s.Every(time.Second, func() { calls++ })

	clock.Advance(700 * time.Millisecond)
	s.Advance()
	h.Suspend()
	h.Suspend() // повторно — без эффекта

	clock.Advance(10 * time.Second)
	s.Advance()
	if calls != 0 {
		t.Fatalf("suspended handle fired")
	}

	h.Resume()
	clock.Advance(299 * time.Millisecond)
	s.Advance()
	if calls != 0 {
		t.Fatalf("fired before the remaining 300ms elapsed")
	}
	clock.Advance(time.Millisecond)
	s.Advance()
	if calls != 1 {
		t.Fatalf("calls = %d after resume, want 1", calls)
	}
	if s.Len() != 1 {
		t.Fatalf("resume created duplicate handles: %d", s.Len())
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	s := New(NewManualClock(epoch))
	h := s.Every(time.Second, func() {})
	h.Cancel()
	h.Cancel()
	h.Resume()
	if h.Active() {
		t.Fatalf("cancelled handle reports active")
	}

	var nilHandle *Handle
	nilHandle.Cancel()
	nilHandle.Suspend()
	nilHandle.Resume()
	if nilHandle.Active() {
		t.Fatalf("nil handle reports active")
	}
}

func TestCallbacksMayCancelOtherHandles(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	secondCalls := 0
	var second *Handle
	s.After(100*time.Millisecond, func() { second.Cancel() })
	second = s.After(100*time.Millisecond, func() { secondCalls++ })

	clock.Advance(100 * time.Millisecond)
	s.Advance()
	if secondCalls != 0 {
		t.Fatalf("handle cancelled by an earlier callback still fired")
	}
}

func TestCancelAll(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	calls := 0
	s.Every(100*time.Millisecond, func() { calls++ })
	s.After(100*time.Millisecond, func() { calls++ })
	s.CancelAll()
	clock.Advance(time.Second)
	s.Advance()
	if calls != 0 || s.Len() != 0 {
		t.Fatalf("CancelAll left live handles: calls=%d len=%d", calls, s.Len())
	}
}

func TestRemaining(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	h := s.After(time.Second, func() {})
	clock.Advance(300 * time.Millisecond)
	if got := h.Remaining(); got != 700*time.Millisecond {
		t.Fatalf("remaining = %v, want 700ms", got)
	}
	h.Suspend()
	clock.Advance(time.Hour)
	if got := h.Remaining(); got != 700*time.Millisecond {
		t.Fatalf("remaining while suspended = %v, want 700ms", got)
	}
	h.Cancel()
	if got := h.Remaining(); got != 0 {
		t.Fatalf("remaining after cancel = %v, want 0", got)
	}
	var nilHandle *Handle
	if nilHandle.Remaining() != 0 {
		t.Fatalf("nil handle has remaining time")
	}
}
