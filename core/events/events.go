package events

import "github.com/google/uuid"

// Playback is the slice of the player an event is allowed to see. It exists
// to break the dependency cycle between events and the player that drives
// them: behaviors receive the running playback, the engine only needs the
// tracker back out of it.
type Playback interface {
	Tracker() *CompletionTracker
}

// Behavior is the subtype contract for node side effects.
//
// OnStop receives a done callback. A behavior that cannot finish stopping
// synchronously returns false and calls done exactly once later; a behavior
// that finished returns true and must not call done afterwards. Calling done
// after returning true is absorbed by the tracker's set semantics, but
// providers should not rely on that.
type Behavior interface {
	IsAvailable() bool
	IsPlaying() bool
	OnPlay(p Playback) bool
	OnStop(p Playback, closing bool, done func()) bool
}

// Event wraps a Behavior with a stable identity and the stop bookkeeping the
// engine relies on. Events are created when a node is authored and destroyed
// with it; the wrapper itself holds no transient state.
type Event struct {
	id       string
	behavior Behavior
}

// New wraps behavior in an engine-managed event.
func New(behavior Behavior) *Event {
	return &Event{id: uuid.NewString(), behavior: behavior}
}

// ID returns the event's process-unique identifier.
func (e *Event) ID() string {
	if e == nil {
		return ""
	}
	return e.id
}

// Behavior exposes the wrapped subtype, mainly for authoring tools.
func (e *Event) Behavior() Behavior {
	if e == nil {
		return nil
	}
	return e.behavior
}

// IsAvailable reports whether the behavior can currently be played.
func (e *Event) IsAvailable() bool {
	return e != nil && e.behavior != nil && e.behavior.IsAvailable()
}

// IsPlaying reports whether the behavior is currently running.
func (e *Event) IsPlaying() bool {
	return e != nil && e.behavior != nil && e.behavior.IsPlaying()
}

// Play starts the behavior and reports whether it took effect. An
// unavailable event is not played and reports false.
func (e *Event) Play(p Playback) bool {
	if !e.IsAvailable() {
		return false
	}
	return e.behavior.OnPlay(p)
}

// Stop ends the behavior. An unavailable event is never told to stop.
//
// The event is registered with the playback's tracker before the behavior is
// attempted and unregistered once the behavior reports completion, either by
// returning true or by calling the done callback later. Registering first
// closes the race between issuing a batch of stops and asking the tracker
// whether anything is still pending.
func (e *Event) Stop(p Playback, closing bool) {
	if !e.IsAvailable() {
		return
	}

	tracker := p.Tracker()
	tracker.Register(e)
	if e.behavior.OnStop(p, closing, func() { tracker.Unregister(e) }) {
		tracker.Unregister(e)
	}
}

// PlayAll plays every event in sequence order and reports whether any of
// them took effect. Individual failures do not short-circuit the batch.
func PlayAll(p Playback, evs []*Event) bool {
	played := false
	for _, e := range evs {
		if e.Play(p) {
			played = true
		}
	}
	return played
}

// StopAll issues Stop for every event in sequence order and then asks the
// tracker to invoke onComplete once all genuinely pending stops have
// finished. If every stop completed synchronously onComplete fires before
// StopAll returns.
func StopAll(p Playback, evs []*Event, closing bool, onComplete func()) {
	for _, e := range evs {
		e.Stop(p, closing)
	}
	p.Tracker().RequestCompletion(onComplete)
}
