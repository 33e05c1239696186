package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(ReactorOverheat, a)
	d.Subscribe(ReactorOverheat, b)
	d.Subscribe(SmokeEmitted, b)

	d.Dispatch(Event{Type: ReactorOverheat, Data: OverheatData{ID: 3, Heat: 1}})
	d.Dispatch(Event{Type: SmokeEmitted})
	d.Dispatch(Event{Type: FuelConsumed})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 2)
	assert.Equal(t, OverheatData{ID: 3, Heat: 1}, a.got[0].Data)

	d.Unsubscribe(ReactorOverheat, a)
	d.Dispatch(Event{Type: ReactorOverheat})
	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 3)
}

type unsubscriber struct {
	d     *Dispatcher
	calls int
}

func (u *unsubscriber) OnEvent(e Event) {
	u.calls++
	u.d.Unsubscribe(e.Type, u)
}

func TestDispatcherUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	u := &unsubscriber{d: d}
	after := &recorder{}
	d.Subscribe(BuildingDestroyed, u)
	d.Subscribe(BuildingDestroyed, after)

	d.Dispatch(Event{Type: BuildingDestroyed})
	d.Dispatch(Event{Type: BuildingDestroyed})

	assert.Equal(t, 1, u.calls)
	assert.Len(t, after.got, 2, "the listener behind still gets both")
	assert.Equal(t, 2, d.Sent(BuildingDestroyed))
	assert.Zero(t, d.Sent(SmokeEmitted))
}

func TestDispatcherSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	typed, all := &recorder{}, &recorder{}
	d.Subscribe(FuelConsumed, typed)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: FuelConsumed})
	d.Dispatch(Event{Type: BuildingPlaced})
	assert.Len(t, typed.got, 1)
	assert.Len(t, all.got, 2)

	d.UnsubscribeAll(all)
	d.Dispatch(Event{Type: FuelConsumed})
	assert.Len(t, all.got, 2)
	assert.Len(t, typed.got, 2)
}
