package graph

import "fmt"

// Graph owns one dialogue graph through its root node. Exactly one root
// exists per graph; it is created with the graph and cannot be removed.
type Graph struct {
	root *Node
}

// New returns a graph with a fresh root line node.
func New() *Graph {
	root := newNode(KindLine)
	root.root = true
	return &Graph{root: root}
}

// Root returns the graph's designated entry vertex.
func (g *Graph) Root() *Node {
	if g == nil {
		return nil
	}
	return g.root
}

// CreateNode instantiates a detached node of a registered kind. The caller
// attaches it with AddChild.
func (g *Graph) CreateNode(kind Kind) (*Node, error) {
	if _, ok := kindSpec(kind); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return newNode(kind), nil
}

// FindNode looks a node up by guid anywhere in the graph. A miss is an
// expected outcome, reported through the bool, never an error.
func (g *Graph) FindNode(guid string) (*Node, bool) {
	if g == nil {
		return nil, false
	}
	return g.root.FindByGuid(guid)
}

// Remove detaches node from the graph. The root cannot be removed; removing
// a node that is not in the graph reports ErrNodeNotFound.
func (g *Graph) Remove(node *Node) error {
	if g == nil || node == nil {
		return ErrNodeNotFound
	}
	if node == g.root {
		return fmt.Errorf("%w: cannot remove the root node", ErrStructuralViolation)
	}

	parent, ok := g.root.FindParentOf(node)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, node.Guid())
	}
	return parent.RemoveChild(node)
}

// Reset clears transient runtime state across the whole graph so it can be
// replayed from the start.
func (g *Graph) Reset() {
	if g == nil {
		return
	}
	g.root.Reset()
}
