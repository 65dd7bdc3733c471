package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestPublishDefersDeliveryUntilFlush(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, ScoreChanged, GameOver)

	d.Publish(Event{Type: ScoreChanged})
	d.Publish(Event{Type: GameOver})
	d.Publish(Event{Type: Restarted}) // нет подписчиков
	if len(r.got) != 0 {
		t.Fatalf("events delivered before Flush: %v", r.got)
	}

	d.Flush()
	if len(r.got) != 2 || r.got[0] != ScoreChanged || r.got[1] != GameOver {
		t.Fatalf("delivered = %v, want [ScoreChanged GameOver]", r.got)
	}
	if d.Pending() != 0 {
		t.Fatalf("queue not drained: %d", d.Pending())
	}
}

func TestEventsPublishedDuringFlushWaitForNextFlush(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(Restarted, r)
	d.Subscribe(GameOver, ListenerFunc(func(Event) {
		d.Publish(Event{Type: Restarted})
	}))

	d.Publish(Event{Type: GameOver})
	d.Flush()
	if len(r.got) != 0 {
		t.Fatalf("nested event delivered in the same flush")
	}
	d.Flush()
	if len(r.got) != 1 {
		t.Fatalf("nested event not delivered on next flush: %v", r.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(ScoreChanged, r)
	d.Unsubscribe(ScoreChanged, r)
	d.Publish(Event{Type: ScoreChanged})
	d.Flush()
	if len(r.got) != 0 {
		t.Fatalf("unsubscribed listener received %v", r.got)
	}
}
