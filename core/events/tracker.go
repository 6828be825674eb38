package events

import "sync"

// CompletionTracker converges asynchronously completing event stops onto a
// single signal. The pending set is the single source of truth: callbacks
// fire on the transition from non-empty to empty, and register/unregister of
// the same event are idempotent.
//
// At most one completion callback is outstanding at a time. A second
// RequestCompletion while one is stored replaces it; not racing two stop
// batches through the same tracker is the caller's responsibility (the
// player coalesces them, see Player.Close).
type CompletionTracker struct {
	mu         sync.Mutex
	pending    map[*Event]struct{}
	onComplete func()
}

// NewCompletionTracker returns an empty tracker.
func NewCompletionTracker() *CompletionTracker {
	return &CompletionTracker{pending: map[*Event]struct{}{}}
}

// Register adds event to the pending set. Registering an event that is
// already pending is a no-op.
func (t *CompletionTracker) Register(event *Event) {
	if t == nil || event == nil {
		return
	}

	t.mu.Lock()
	t.pending[event] = struct{}{}
	t.mu.Unlock()
}

// Unregister removes event from the pending set. Removing an event that is
// not pending is a no-op. If the set becomes empty and a completion callback
// is stored, the callback is cleared and invoked.
//
// The callback runs outside the tracker lock so it may synchronously start a
// new stop batch against the same tracker.
func (t *CompletionTracker) Unregister(event *Event) {
	if t == nil || event == nil {
		return
	}

	t.mu.Lock()
	delete(t.pending, event)
	var fire func()
	if len(t.pending) == 0 && t.onComplete != nil {
		fire = t.onComplete
		t.onComplete = nil
	}
	t.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// RequestCompletion arranges for callback to run once every pending stop has
// completed. If nothing is pending the callback runs synchronously before
// RequestCompletion returns. A callback stored by an earlier call is
// replaced.
func (t *CompletionTracker) RequestCompletion(callback func()) {
	if t == nil {
		return
	}
	if callback == nil {
		callback = func() {}
	}

	t.mu.Lock()
	if len(t.pending) == 0 {
		t.onComplete = nil
		t.mu.Unlock()
		callback()
		return
	}
	t.onComplete = callback
	t.mu.Unlock()
}

// PendingCount reports how many events are still stopping.
func (t *CompletionTracker) PendingCount() int {
	if t == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
