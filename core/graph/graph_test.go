package graph

import (
	"errors"
	"testing"
)

func TestCreateNodeRejectsUnknownKinds(t *testing.T) {
	g := New()

	if _, err := g.CreateNode(Kind("projector")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestRemoveDetachesSubtree(t *testing.T) {
	g := New()
	branch := mustCreate(t, g, KindLine)
	leaf := mustCreate(t, g, KindLine)
	g.Root().AddChild(branch)
	branch.AddChild(leaf)

	if err := g.Remove(branch); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := g.FindNode(leaf.Guid()); ok {
		t.Fatalf("removed subtree still reachable from the graph")
	}
	// The detached subtree stays intact for the caller.
	if found, ok := branch.FindByGuid(leaf.Guid()); !ok || found != leaf {
		t.Fatalf("detached subtree lost its structure")
	}
}

func TestRemoveUnknownNodeReportsNotFound(t *testing.T) {
	g := New()
	other := New()
	foreign := mustCreate(t, other, KindLine)
	other.Root().AddChild(foreign)

	if err := g.Remove(foreign); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestRootCannotBeRemoved(t *testing.T) {
	g := New()

	if err := g.Remove(g.Root()); !errors.Is(err, ErrStructuralViolation) {
		t.Fatalf("expected structural violation removing root, got %v", err)
	}
}

func TestLinkResolvesWhileTargetLives(t *testing.T) {
	g := New()
	target := mustCreate(t, g, KindLine)
	target.Text = "A"
	link := mustCreate(t, g, KindLink)
	g.Root().AddChild(target)
	g.Root().AddChild(link)

	if err := link.LinkTo(target); err != nil {
		t.Fatalf("LinkTo failed: %v", err)
	}
	if !link.IsAvailable() {
		t.Fatalf("link with a target reported unavailable")
	}

	resolved, ok := link.ResolveLink(g)
	if !ok || resolved != target {
		t.Fatalf("link did not resolve to its target")
	}
}

func TestRemovedTargetLeavesDeadLink(t *testing.T) {
	g := New()
	target := mustCreate(t, g, KindLine)
	target.Text = "A"
	link := mustCreate(t, g, KindLink)
	g.Root().AddChild(target)
	g.Root().AddChild(link)
	if err := link.LinkTo(target); err != nil {
		t.Fatalf("LinkTo failed: %v", err)
	}

	if err := g.Remove(target); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := link.ResolveLink(g); ok {
		t.Fatalf("link resolved to a removed target")
	}
}

func TestLinkToRejectsNonLinkNodes(t *testing.T) {
	g := New()
	line := mustCreate(t, g, KindLine)

	if err := line.LinkTo(g.Root()); !errors.Is(err, ErrNotLink) {
		t.Fatalf("expected ErrNotLink, got %v", err)
	}
}

func TestKindSchemaDescribesAuthoringMetadata(t *testing.T) {
	schema, ok := KindSchema(KindLine)
	if !ok || schema == nil {
		t.Fatalf("expected a schema for the line kind")
	}

	if _, ok := KindSchema(Kind("projector")); ok {
		t.Fatalf("expected no schema for an unregistered kind")
	}
}

func TestCreatableKindsIncludeBuiltins(t *testing.T) {
	listed := map[Kind]bool{}
	for _, kind := range CreatableKinds() {
		listed[kind] = true
	}

	for _, kind := range []Kind{KindLine, KindLink, KindComment} {
		if !listed[kind] {
			t.Fatalf("builtin kind %q missing from CreatableKinds", kind)
		}
	}
}
