// Package playback drives one playback session over one dialogue graph.
//
// A Player walks the graph built by package graph, playing each node's
// events on entry and stopping them on exit. Stops may complete
// asynchronously; the player waits for the whole batch through a
// CompletionTracker it owns, so any number of concurrently stopping side
// effects converge on a single "fully stopped" signal before the next node
// is entered.
//
// All Player methods are expected to be called from one logical thread of
// control. Deferred stop completions may arrive from timers or other
// goroutines; the player serializes the resulting transitions internally,
// but drivers must not race two of their own calls against each other.
package playback
