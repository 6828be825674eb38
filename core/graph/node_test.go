package graph

import (
	"errors"
	"testing"

	"github.com/koscakluka/dialogue-core/core/events"
)

func mustCreate(t *testing.T, g *Graph, kind Kind) *Node {
	t.Helper()

	n, err := g.CreateNode(kind)
	if err != nil {
		t.Fatalf("failed to create %q node: %v", kind, err)
	}
	return n
}

func TestAddChildSetsParentAndPreservesOrder(t *testing.T) {
	g := New()
	first := mustCreate(t, g, KindLine)
	second := mustCreate(t, g, KindLine)

	g.Root().AddChild(first)
	g.Root().AddChild(second)

	children := g.Root().Children()
	if len(children) != 2 || children[0] != first || children[1] != second {
		t.Fatalf("children out of order: %v", children)
	}
	if first.Parent() != g.Root() {
		t.Fatalf("child parent not set")
	}
}

func TestRemoveChildRejectsForeignNodes(t *testing.T) {
	g := New()
	child := mustCreate(t, g, KindLine)
	stranger := mustCreate(t, g, KindLine)
	g.Root().AddChild(child)

	if err := g.Root().RemoveChild(stranger); !errors.Is(err, ErrStructuralViolation) {
		t.Fatalf("expected structural violation, got %v", err)
	}
	if len(g.Root().Children()) != 1 {
		t.Fatalf("rejected removal mutated the child sequence")
	}

	if err := g.Root().RemoveChild(child); err != nil {
		t.Fatalf("legitimate removal failed: %v", err)
	}
	if child.Parent() != nil {
		t.Fatalf("detached child kept its parent pointer")
	}
}

func TestFindByGuidDepthFirst(t *testing.T) {
	g := New()
	branch := mustCreate(t, g, KindLine)
	leaf := mustCreate(t, g, KindLine)
	g.Root().AddChild(branch)
	branch.AddChild(leaf)

	found, ok := g.FindNode(leaf.Guid())
	if !ok || found != leaf {
		t.Fatalf("deep lookup failed: found=%v ok=%v", found, ok)
	}

	if _, ok := g.FindNode("no-such-guid"); ok {
		t.Fatalf("lookup of an unknown guid reported a match")
	}
}

func TestCommentSubtreeIsHiddenFromSearch(t *testing.T) {
	g := New()
	comment := mustCreate(t, g, KindComment)
	hidden := mustCreate(t, g, KindLine)
	g.Root().AddChild(comment)
	comment.AddChild(hidden)

	if _, ok := g.FindNode(hidden.Guid()); ok {
		t.Fatalf("search descended into a non-searchable node")
	}
	// The comment itself is still findable.
	if _, ok := g.FindNode(comment.Guid()); !ok {
		t.Fatalf("non-searchable node was not findable itself")
	}
}

func TestFindParentOf(t *testing.T) {
	g := New()
	branch := mustCreate(t, g, KindLine)
	leaf := mustCreate(t, g, KindLine)
	g.Root().AddChild(branch)
	branch.AddChild(leaf)

	parent, ok := g.Root().FindParentOf(leaf)
	if !ok || parent != branch {
		t.Fatalf("expected %q as parent, got %v ok=%v", branch.Guid(), parent, ok)
	}
}

func TestLineAvailability(t *testing.T) {
	g := New()

	empty := mustCreate(t, g, KindLine)
	if empty.IsAvailable() {
		t.Fatalf("empty line reported available")
	}

	withText := mustCreate(t, g, KindLine)
	withText.Text = "Hello"
	if !withText.IsAvailable() {
		t.Fatalf("line with text reported unavailable")
	}

	withEvent := mustCreate(t, g, KindLine)
	withEvent.AddEvent(events.New(&events.Func{}))
	if !withEvent.IsAvailable() {
		t.Fatalf("line with an available event reported unavailable")
	}

	container := mustCreate(t, g, KindLine)
	container.AddChild(withText)
	if !container.IsAvailable() {
		t.Fatalf("container with an available child reported unavailable")
	}
}

func TestResetClearsTransientStateRecursively(t *testing.T) {
	g := New()
	branch := mustCreate(t, g, KindLine)
	leaf := mustCreate(t, g, KindLine)
	g.Root().AddChild(branch)
	branch.AddChild(leaf)

	branch.SetCachedChoice(2)
	leaf.SetCachedChoice(1)
	onceEvent := events.NewOnce(&events.Func{})
	leaf.AddEvent(onceEvent)

	fake := fakePlayback{tracker: events.NewCompletionTracker()}
	onceEvent.Play(&fake)
	onceEvent.Stop(&fake, false)
	if onceEvent.IsAvailable() {
		t.Fatalf("one-shot event still available before reset")
	}

	g.Reset()

	if _, ok := branch.CachedChoice(); ok {
		t.Fatalf("reset did not clear branch choice")
	}
	if _, ok := leaf.CachedChoice(); ok {
		t.Fatalf("reset did not clear leaf choice")
	}
	if !onceEvent.IsAvailable() {
		t.Fatalf("reset did not restore the one-shot event")
	}
}

type fakePlayback struct {
	tracker *events.CompletionTracker
}

func (f *fakePlayback) Tracker() *events.CompletionTracker { return f.tracker }
