// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — очередь событий. Publish только ставит событие в очередь,
// доставка подписчикам происходит в Flush один раз за тик.
type Dispatcher struct {
	listeners map[EventType][]Listener
	queue     []Event
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает слушателя на несколько типов сразу.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Publish — постановка события в очередь
func (d *Dispatcher) Publish(event Event) {
	d.queue = append(d.queue, event)
}

// Pending — число событий, ожидающих доставки
func (d *Dispatcher) Pending() int {
	return len(d.queue)
}

// Flush доставляет накопленные события в порядке публикации.
// События, опубликованные подписчиками во время доставки, ждут следующего Flush.
func (d *Dispatcher) Flush() {
	if len(d.queue) == 0 {
		return
	}
	batch := d.queue
	d.queue = nil
	for _, e := range batch {
		for _, listener := range d.listeners[e.Type] {
			listener.OnEvent(e)
		}
	}
}
