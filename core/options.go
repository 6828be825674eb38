package playback

import (
	"github.com/koscakluka/dialogue-core/core/graph"
	"github.com/koscakluka/dialogue-core/core/settings"
)

// PlayerOption configures a player at construction time.
type PlayerOption func(*Player)

// WithSelector overrides the next-node selection policy. The default picks
// the first available child in authored order; branch/choice semantics
// supply their own policy here.
func WithSelector(selector Selector) PlayerOption {
	return func(p *Player) {
		if selector != nil {
			p.selector = selector
		}
	}
}

// WithSpeakerSettings supplies the speaker display-name provider used when
// rendering the transcript. Traversal never consults it.
func WithSpeakerSettings(provider settings.Provider) PlayerOption {
	return func(p *Player) {
		p.speakers = provider
	}
}

type sessionCallbacks struct {
	onNodeEntered func(*graph.Node)
	onNodeExited  func(*graph.Node)
	onTerminal    func(*graph.Node)
	onClosed      func()
}

type sessionOptions struct {
	startNode *graph.Node
	callbacks sessionCallbacks
}

// SetupOption configures a single playback session at Setup time.
type SetupOption func(*sessionOptions)

// WithStartNode starts the session at node instead of the graph root.
func WithStartNode(node *graph.Node) SetupOption {
	return func(o *sessionOptions) {
		o.startNode = node
	}
}

// WithNodeEnteredCallback registers a callback invoked after a node's events
// have been played on entry.
func WithNodeEnteredCallback(callback func(node *graph.Node)) SetupOption {
	return func(o *sessionOptions) {
		o.callbacks.onNodeEntered = callback
	}
}

// WithNodeExitedCallback registers a callback invoked once a node's stop
// batch has fully completed.
func WithNodeExitedCallback(callback func(node *graph.Node)) SetupOption {
	return func(o *sessionOptions) {
		o.callbacks.onNodeExited = callback
	}
}

// WithTerminalCallback registers a callback invoked when PlayNextNode finds
// no available next node. The player stays on the terminal node awaiting
// Close.
func WithTerminalCallback(callback func(node *graph.Node)) SetupOption {
	return func(o *sessionOptions) {
		o.callbacks.onTerminal = callback
	}
}

// WithClosedCallback registers a callback invoked after the player reaches
// Closed, after any Close onComplete waiters.
func WithClosedCallback(callback func()) SetupOption {
	return func(o *sessionOptions) {
		o.callbacks.onClosed = callback
	}
}
