// Package events is the pub/sub fabric between the game and its transports.
// Game code emits structured events; each subscriber (a network session, a
// logger, a metrics hook) encodes them per-transport.
package events

import (
	"sync"

	"github.com/crystal-mush/gosoul/pkg/soul"
	"github.com/crystal-mush/gosoul/pkg/world"
)

// Subscriber receives events from the bus.
type Subscriber interface {
	Receive(ev Event)
	Closed() bool
}

// Bus is a per-living pub/sub event bus with support for global subscribers.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[*world.Object][]Subscriber
	global      []Subscriber
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[*world.Object][]Subscriber),
	}
}

// Subscribe registers a subscriber for a specific living's events.
func (b *Bus) Subscribe(living *world.Object, sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[living] = append(b.subscribers[living], sub)
}

// Unsubscribe removes a subscriber for a specific living.
func (b *Bus) Unsubscribe(living *world.Object, sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.subscribers[living]
	for i, s := range subs {
		if s == sub {
			b.subscribers[living] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subscribers[living]) == 0 {
		delete(b.subscribers, living)
	}
}

// SubscribeGlobal registers a subscriber that receives all events.
func (b *Bus) SubscribeGlobal(sub Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.global = append(b.global, sub)
}

// Emit sends an event to the receiver named in ev.Receiver and to all global
// subscribers.
func (b *Bus) Emit(ev Event) {
	b.mu.RLock()
	subs := b.subscribers[ev.Receiver]
	globals := b.global
	b.mu.RUnlock()

	for _, s := range subs {
		if !s.Closed() {
			s.Receive(ev)
		}
	}
	for _, s := range globals {
		if !s.Closed() {
			s.Receive(ev)
		}
	}
}

// EmitTo sends an event to a specific living (overriding ev.Receiver).
func (b *Bus) EmitTo(living *world.Object, ev Event) {
	ev.Receiver = living
	b.Emit(ev)
}

// EmitToRoom sends an event to every living in the room, except those listed
// in skip. Global subscribers get the event once, with Receiver left nil.
func (b *Bus) EmitToRoom(room *world.Location, ev Event, skip ...*world.Object) {
	if room == nil {
		return
	}
	b.mu.RLock()
	globals := b.global
	b.mu.RUnlock()

	skipSet := make(map[*world.Object]bool, len(skip))
	for _, l := range skip {
		skipSet[l] = true
	}
	for living := range room.Livings {
		if skipSet[living] {
			continue
		}
		livingEv := ev
		livingEv.Receiver = living

		b.mu.RLock()
		subs := b.subscribers[living]
		b.mu.RUnlock()

		for _, s := range subs {
			if !s.Closed() {
				s.Receive(livingEv)
			}
		}
	}

	ev.Receiver = nil
	for _, s := range globals {
		if !s.Closed() {
			s.Receive(ev)
		}
	}
}

// EmitAction fans a rendered soul action out to its three audiences: the
// actor gets the player message, each target the target message, and the
// rest of the room the room message.
func (b *Bus) EmitAction(actor *world.Object, verb string, result *soul.VerbResult) {
	b.EmitTo(actor, Event{Type: EvAction, Source: actor, Verb: verb, Text: result.PlayerMsg})
	skip := []*world.Object{actor}
	for target := range result.Who {
		skip = append(skip, target)
		b.EmitTo(target, Event{Type: EvAction, Source: actor, Verb: verb, Text: result.TargetMsg})
	}
	ev := Event{Type: EvAction, Source: actor, Verb: verb, Text: result.RoomMsg}
	b.EmitToRoom(actor.Location, ev, skip...)
}

// Subscribers returns the number of subscribers for a living.
func (b *Bus) Subscribers(living *world.Object) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[living])
}

// Cleanup removes closed subscribers from all lists.
func (b *Bus) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for living, subs := range b.subscribers {
		var active []Subscriber
		for _, s := range subs {
			if !s.Closed() {
				active = append(active, s)
			}
		}
		if len(active) == 0 {
			delete(b.subscribers, living)
		} else {
			b.subscribers[living] = active
		}
	}

	var activeGlobal []Subscriber
	for _, s := range b.global {
		if !s.Closed() {
			activeGlobal = append(activeGlobal, s)
		}
	}
	b.global = activeGlobal
}
