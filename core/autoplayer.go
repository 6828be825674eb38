package playback

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/koscakluka/dialogue-core/core/graph"
)

// AutoPlayer is a player subtype that decides for itself when to call
// PlayNextNode: it plays the current node, waits a fixed delay, advances,
// and closes once the graph reports a terminal node. The delay doubles as
// the suspension point between consecutive advances, so graphs that cycle
// degrade to a steady loop instead of a busy one.
type AutoPlayer struct {
	*Player

	delay time.Duration

	closeCh chan struct{}
	done    chan struct{}

	startOnce sync.Once
	endOnce   sync.Once

	started atomic.Bool
}

// NewAutoPlayer returns an auto-advancing player that waits delay between
// node transitions.
func NewAutoPlayer(delay time.Duration, opts ...PlayerOption) *AutoPlayer {
	return &AutoPlayer{
		Player:  NewPlayer(opts...),
		delay:   delay,
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run sets the player up on g and starts the advance loop in its own
// goroutine. It reports whether the loop started; it starts at most once per
// AutoPlayer.
func (a *AutoPlayer) Run(ctx context.Context, g *graph.Graph, opts ...SetupOption) (started bool) {
	if a == nil {
		return false
	}
	if ctx == nil {
		ctx = context.Background()
	}

	a.startOnce.Do(func() {
		if err := a.Setup(ctx, g, opts...); err != nil {
			logger.Warn("auto player setup failed", "error", err)
			close(a.done)
			return
		}

		started = true
		a.started.Store(true)
		go a.loop(ctx)
	})
	return started
}

func (a *AutoPlayer) loop(ctx context.Context) {
	defer close(a.done)

	if err := a.PlayCurrentNode(); err != nil {
		logger.Warn("auto player failed to play start node", "error", err)
		return
	}

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			a.closeAndAwait()
			return
		case <-a.closeCh:
			a.closeAndAwait()
			return
		case <-timer.C:
		}

		outcome, err := a.PlayNextNode()
		if err != nil {
			logger.Warn("auto player advance failed", "error", err)
			return
		}
		if outcome == OutcomeTerminal {
			a.closeAndAwait()
			return
		}

		timer.Reset(a.delay)
	}
}

// closeAndAwait issues the close and blocks until the terminal transition
// has fired, so AwaitDone implies the player is fully Closed.
func (a *AutoPlayer) closeAndAwait() {
	closed := make(chan struct{})
	if err := a.Close(func() { close(closed) }); err != nil {
		logger.Warn("auto player close failed", "error", err)
		return
	}
	<-closed
}

// Stop asks the loop to close out the session. It is safe to call more than
// once and before Run.
func (a *AutoPlayer) Stop() {
	if a == nil {
		return
	}
	a.endOnce.Do(func() { close(a.closeCh) })
}

// AwaitDone blocks until the loop has exited, if it ever started.
func (a *AutoPlayer) AwaitDone() {
	if a == nil {
		return
	}
	if a.started.Load() {
		<-a.done
	}
}
