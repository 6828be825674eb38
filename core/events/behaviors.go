package events

// Resetter is implemented by behaviors that carry transient runtime state
// (one-shot flags and the like). Node.Reset forwards to it via ResetEvent.
type Resetter interface {
	Reset()
}

// ResetEvent clears an event's transient runtime state if its behavior has
// any. Authored content is never touched.
func ResetEvent(e *Event) {
	if e == nil || e.behavior == nil {
		return
	}
	if r, ok := e.behavior.(Resetter); ok {
		r.Reset()
	}
}

// Func is a Behavior assembled from callbacks. Side-effect providers and
// tests use it instead of declaring a one-off type; nil callbacks fall back
// to an always-available behavior whose play succeeds and whose stop
// completes synchronously.
type Func struct {
	Available func() bool
	PlayFunc  func(p Playback) bool
	StopFunc  func(p Playback, closing bool, done func()) bool

	playing bool
}

func (f *Func) IsAvailable() bool {
	if f.Available == nil {
		return true
	}
	return f.Available()
}

func (f *Func) IsPlaying() bool { return f.playing }

func (f *Func) OnPlay(p Playback) bool {
	played := true
	if f.PlayFunc != nil {
		played = f.PlayFunc(p)
	}
	if played {
		f.playing = true
	}
	return played
}

func (f *Func) OnStop(p Playback, closing bool, done func()) bool {
	f.playing = false
	if f.StopFunc == nil {
		return true
	}
	return f.StopFunc(p, closing, done)
}

// once wraps a behavior so it plays a single time until reset.
type once struct {
	inner  Behavior
	played bool
}

// NewOnce returns an event whose behavior plays at most once per reset.
// While the one shot is still running the event stays available so the exit
// stop reaches the wrapped behavior; once stopped it reports unavailable
// until reset.
func NewOnce(inner Behavior) *Event {
	return New(&once{inner: inner})
}

func (o *once) IsAvailable() bool {
	if o.inner == nil {
		return false
	}
	if o.inner.IsPlaying() {
		return true
	}
	return !o.played && o.inner.IsAvailable()
}

func (o *once) IsPlaying() bool { return o.inner != nil && o.inner.IsPlaying() }

func (o *once) OnPlay(p Playback) bool {
	if o.played {
		return false
	}
	if !o.inner.OnPlay(p) {
		return false
	}
	o.played = true
	return true
}

func (o *once) OnStop(p Playback, closing bool, done func()) bool {
	return o.inner.OnStop(p, closing, done)
}

func (o *once) Reset() {
	o.played = false
	if r, ok := o.inner.(Resetter); ok {
		r.Reset()
	}
}
