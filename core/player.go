package playback

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/koscakluka/dialogue-core/core/events"
	"github.com/koscakluka/dialogue-core/core/graph"
	"github.com/koscakluka/dialogue-core/core/settings"
)

// State is the player lifecycle state. Transitions only move forward:
// Created -> Playing -> Closing -> Closed.
type State int

const (
	StateCreated State = iota
	StatePlaying
	StateClosing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePlaying:
		return "playing"
	case StateClosing:
		return "closing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome reports what PlayNextNode decided.
type Outcome int

const (
	// OutcomeAdvanced means a next node was found and the transition to it
	// was initiated. With asynchronous stops the node is entered once the
	// previous node's stop batch completes, not before PlayNextNode
	// returns.
	OutcomeAdvanced Outcome = iota
	// OutcomeTerminal means no available next node exists. The cursor stays
	// on the terminal node awaiting an explicit Close.
	OutcomeTerminal
	// OutcomeDeferred means a transition was already in flight; the request
	// was queued behind it and its result is reported through callbacks.
	OutcomeDeferred
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeTerminal:
		return "terminal"
	case OutcomeDeferred:
		return "deferred"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Player walks one dialogue graph, playing node events on entry and
// coordinating their (possibly asynchronous) stop on exit.
type Player struct {
	mu sync.Mutex

	state   State
	graph   *graph.Graph
	current *graph.Node

	tracker  *events.CompletionTracker
	selector Selector
	speakers settings.Provider

	transcript  *Transcript
	callbacks   sessionCallbacks
	baseContext context.Context

	// inFlight marks an outstanding advance stop batch. Requests arriving
	// meanwhile are queued behind it rather than interrupting it.
	inFlight      bool
	advanceQueued bool
	closeWaiters  []func()
}

var _ events.Playback = (*Player)(nil)

// NewPlayer returns a player in the Created state. The player owns its
// completion tracker, keeping concurrent players isolated from each other.
func NewPlayer(opts ...PlayerOption) *Player {
	p := &Player{
		state:       StateCreated,
		tracker:     events.NewCompletionTracker(),
		selector:    FirstAvailable,
		transcript:  newTranscript(),
		baseContext: context.Background(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tracker exposes the player's completion tracker to its events.
func (p *Player) Tracker() *events.CompletionTracker { return p.tracker }

// State returns the current lifecycle state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// CurrentNode returns the node the player has entered, nil before setup and
// after close.
func (p *Player) CurrentNode() *graph.Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Graph returns the graph this player was set up on, nil before setup. The
// player never owns the graph; it outlives the session.
func (p *Player) Graph() *graph.Graph {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.graph
}

// Transcript returns the record of content nodes entered so far.
func (p *Player) Transcript() *Transcript { return p.transcript }

// RenderTranscript formats the transcript with the player's speaker
// settings, wrapped to width columns when width is positive.
func (p *Player) RenderTranscript(width int) string {
	return p.transcript.Render(p.speakers, width)
}

// Setup binds the player to a graph and moves it to Playing. The cursor
// starts at the graph root unless a start node option overrides it. Setup is
// valid exactly once, on a Created player.
func (p *Player) Setup(ctx context.Context, g *graph.Graph, opts ...SetupOption) error {
	if g == nil || g.Root() == nil {
		return fmt.Errorf("setup requires a graph with a root node")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var session sessionOptions
	for _, opt := range opts {
		opt(&session)
	}

	p.mu.Lock()
	if p.state != StateCreated {
		state := p.state
		p.mu.Unlock()
		return fmt.Errorf("%w: setup in %s", ErrInvalidState, state)
	}

	p.graph = g
	p.baseContext = ctx
	p.callbacks = session.callbacks
	p.current = g.Root()
	if session.startNode != nil {
		p.current = session.startNode
	}
	p.state = StatePlaying
	start := p.current
	p.mu.Unlock()

	_, span := tracer.Start(ctx, "setup playback")
	span.SetAttributes(attribute.String("dialogue.start_node", start.Guid()))
	span.End()
	return nil
}

// PlayCurrentNode plays all events attached to the current node without
// advancing the cursor. Valid only while Playing and with no transition in
// flight.
func (p *Player) PlayCurrentNode() error {
	p.mu.Lock()
	if p.state != StatePlaying || p.inFlight {
		state := p.state
		p.mu.Unlock()
		return fmt.Errorf("%w: play current node in %s", ErrInvalidState, state)
	}
	node := p.current
	p.mu.Unlock()

	p.enter(node)
	return nil
}

// PlayNextNode determines the next node from the current node's children and
// initiates the transition to it. The previous node's events are stopped
// first; the new node is entered only once that stop batch has fully
// completed.
//
// Link nodes are skipped through, never entered: the chain is resolved
// iteratively within this call, so a cycle of pure links does bounded work
// and reports OutcomeTerminal instead of recursing. An unresolvable link is
// likewise a terminal outcome, never a fault.
func (p *Player) PlayNextNode() (Outcome, error) {
	p.mu.Lock()
	if p.state != StatePlaying {
		state := p.state
		p.mu.Unlock()
		return OutcomeTerminal, fmt.Errorf("%w: play next node in %s", ErrInvalidState, state)
	}
	if p.inFlight {
		p.advanceQueued = true
		p.mu.Unlock()
		logger.Debug("advance requested while a transition is in flight, queueing")
		return OutcomeDeferred, nil
	}

	prev := p.current
	next := p.selectNextLocked()
	if next == nil {
		onTerminal := p.callbacks.onTerminal
		p.mu.Unlock()
		if onTerminal != nil {
			onTerminal(prev)
		}
		return OutcomeTerminal, nil
	}

	p.inFlight = true
	p.mu.Unlock()

	_, span := tracer.Start(p.baseContext, "advance node")
	span.SetAttributes(
		attribute.String("dialogue.from_node", prev.Guid()),
		attribute.String("dialogue.to_node", next.Guid()),
	)
	events.StopAll(p, prev.Events(), false, func() { p.finishAdvance(prev, next) })
	span.End()
	return OutcomeAdvanced, nil
}

// selectNextLocked picks the next content node. Caller holds p.mu.
func (p *Player) selectNextLocked() *graph.Node {
	var candidates []*graph.Node
	for _, child := range p.current.Children() {
		if child.IsAvailable() {
			candidates = append(candidates, child)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	chosen := p.selector(p.current, candidates)
	if chosen == nil {
		return nil
	}

	// Resolve link chains iteratively; a revisited link means the chain is
	// a pure-link cycle with no content node, a dead end.
	seen := map[*graph.Node]bool{}
	for chosen != nil && chosen.Kind() == graph.KindLink {
		if seen[chosen] {
			logger.Warn("link chain closed a cycle without content, treating as terminal",
				"node", chosen.Guid())
			return nil
		}
		seen[chosen] = true

		target, ok := chosen.ResolveLink(p.graph)
		if !ok {
			logger.Warn("link target unresolved, treating as terminal", "node", chosen.Guid())
			return nil
		}
		chosen = target
	}
	return chosen
}

// finishAdvance runs once the previous node's stop batch has completed.
func (p *Player) finishAdvance(prev, next *graph.Node) {
	p.mu.Lock()
	p.inFlight = false

	if p.state == StateClosing {
		// A close queued behind this advance. The previous node's events are
		// already stopped and the next node was never entered, so the close
		// finalizes here without a second stop batch.
		p.finishCloseLocked(prev)
		return
	}

	p.current = next
	queued := p.advanceQueued
	p.advanceQueued = false
	onExited := p.callbacks.onNodeExited
	p.mu.Unlock()

	if onExited != nil {
		onExited(prev)
	}
	p.enter(next)

	if queued {
		// The queued request's result surfaces through callbacks; the
		// original caller already got OutcomeDeferred.
		if _, err := p.PlayNextNode(); err != nil {
			logger.Warn("queued advance failed", "error", err)
		}
	}
}

// enter plays a node's events and records it on the transcript.
func (p *Player) enter(node *graph.Node) {
	events.PlayAll(p, node.Events())
	if node.Text != "" {
		p.transcript.append(node)
	}

	p.mu.Lock()
	onEntered := p.callbacks.onNodeEntered
	p.mu.Unlock()
	if onEntered != nil {
		onEntered(node)
	}
}

// Close stops whatever node is currently active with closing semantics and
// transitions the player to Closed, then invokes onComplete. Valid from
// Playing or Closing; a Close issued while one is already resolving
// coalesces onto the in-flight stop batch instead of issuing a second one,
// and every queued onComplete fires on the single terminal transition.
func (p *Player) Close(onComplete func()) error {
	p.mu.Lock()
	switch p.state {
	case StateClosing:
		if onComplete != nil {
			p.closeWaiters = append(p.closeWaiters, onComplete)
		}
		p.mu.Unlock()
		return nil
	case StatePlaying:
		// handled below
	default:
		state := p.state
		p.mu.Unlock()
		return fmt.Errorf("%w: close in %s", ErrInvalidState, state)
	}

	p.state = StateClosing
	if onComplete != nil {
		p.closeWaiters = append(p.closeWaiters, onComplete)
	}
	if p.inFlight {
		// An advance stop batch is outstanding; the close queues behind it
		// and finalizes in finishAdvance once that batch completes.
		p.mu.Unlock()
		return nil
	}
	node := p.current
	p.mu.Unlock()

	_, span := tracer.Start(p.baseContext, "close playback")
	span.SetAttributes(attribute.String("dialogue.node", node.Guid()))
	events.StopAll(p, node.Events(), true, func() {
		p.mu.Lock()
		p.finishCloseLocked(node)
	})
	span.End()
	return nil
}

// finishCloseLocked finalizes the terminal transition. Caller holds p.mu;
// the lock is released before waiters run.
func (p *Player) finishCloseLocked(exited *graph.Node) {
	p.state = StateClosed
	p.current = nil
	waiters := p.closeWaiters
	p.closeWaiters = nil
	onExited := p.callbacks.onNodeExited
	onClosed := p.callbacks.onClosed
	p.mu.Unlock()

	if onExited != nil {
		onExited(exited)
	}
	for _, waiter := range waiters {
		waiter()
	}
	if onClosed != nil {
		onClosed()
	}
}
