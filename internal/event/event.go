// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — событие симуляции, Data содержит одну из структур *Data из types.go.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — подписчик на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события синхронно, в порядке подписки.
// Используется только из потока симуляции.
//
// Подписчик может во время OnEvent отправлять новые события (цепные взрывы)
// и отписываться: рассылка идёт по снимку списка.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
	sent      map[EventType]int
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
		sent:      make(map[EventType]int),
	}
}

// Subscribe подписывает listener на события одного типа.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener на все события. Такие подписчики
// получают событие после подписчиков его типа.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe снимает первую подписку listener на eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = remove(d.listeners[eventType], listener)
}

// UnsubscribeAll снимает подписку, сделанную через SubscribeAll.
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	d.all = remove(d.all, listener)
}

func remove(list []Listener, listener Listener) []Listener {
	i := slices.Index(list, listener)
	if i < 0 {
		return list
	}
	// новый срез: идущая рассылка держит старый
	return slices.Delete(slices.Clone(list), i, i+1)
}

// Dispatch отправляет событие подписчикам.
func (d *Dispatcher) Dispatch(event Event) {
	d.sent[event.Type]++
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}

// Sent возвращает, сколько событий типа eventType было отправлено.
func (d *Dispatcher) Sent(eventType EventType) int {
	return d.sent[eventType]
}
