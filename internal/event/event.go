// internal/event/event.go
package event

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// EventType — тип события
type EventType string

// Event is delivered synchronously, inside the tick that raised it.
type Event struct {
	Type EventType
	Data interface{}
}

// EnemyData is the payload of EnemySpawned, EnemyKilled and EnemyEscaped.
type EnemyData struct {
	ID      types.EntityID
	Variant defs.EnemyVariant
	Bounty  int
}

// WaveData is the payload of WaveCompleted: the level just entered.
type WaveData struct {
	Level int
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher fans events out to subscribers in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener. ListenerFunc
// values are not comparable and cannot be unsubscribed.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if _, isFunc := listener.(ListenerFunc); isFunc {
		return
	}
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if _, isFunc := l.(ListenerFunc); isFunc {
			continue
		}
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

func (d *Dispatcher) Dispatch(e Event) {
	for _, listener := range d.listeners[e.Type] {
		listener.OnEvent(e)
	}
}
