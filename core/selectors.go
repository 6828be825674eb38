package playback

import (
	"math/rand"

	"github.com/koscakluka/dialogue-core/core/graph"
)

// Selector picks the next node among the available children of from.
// Candidates are in authored order and never empty; returning nil treats the
// node as terminal.
type Selector func(from *graph.Node, candidates []*graph.Node) *graph.Node

// FirstAvailable is the default policy: the first available child in
// authored order.
func FirstAvailable(_ *graph.Node, candidates []*graph.Node) *graph.Node {
	return candidates[0]
}

// RandomSticky picks a random available child and caches the pick on the
// node, so replaying the same node within one session stays on the same
// branch. Graph.Reset clears the cache for a fresh playthrough.
func RandomSticky(from *graph.Node, candidates []*graph.Node) *graph.Node {
	choice, ok := from.CachedChoice()
	if !ok {
		choice = rand.Intn(len(candidates))
		from.SetCachedChoice(choice)
	}
	// Availability may have shifted since the choice was cached.
	return candidates[choice%len(candidates)]
}
