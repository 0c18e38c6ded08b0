package event

import "testing"

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)

	d.Dispatch(Event{Type: EnemyKilled, Data: 7})
	d.Dispatch(Event{Type: EnemyEscaped})

	if len(r.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(r.events))
	}
	if r.events[0].Data != 7 {
		t.Errorf("expected payload 7, got %v", r.events[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(TowerPlaced, r)
	d.Unsubscribe(TowerPlaced, r)

	d.Dispatch(Event{Type: TowerPlaced})

	if len(r.events) != 0 {
		t.Errorf("expected no events after unsubscribe, got %d", len(r.events))
	}
}

func TestListenerFuncAndUnsubscribeDoNotPanic(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(WaveCompleted, ListenerFunc(func(Event) { calls++ }))
	r := &recorder{}
	d.Subscribe(WaveCompleted, r)

	d.Unsubscribe(WaveCompleted, r)
	d.Unsubscribe(WaveCompleted, ListenerFunc(func(Event) {}))
	d.Dispatch(Event{Type: WaveCompleted, Data: WaveData{Level: 2}})

	if calls != 1 {
		t.Errorf("expected func listener to be called once, got %d", calls)
	}
	if len(r.events) != 0 {
		t.Errorf("expected recorder to be unsubscribed, got %d events", len(r.events))
	}
}
