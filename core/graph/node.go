package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/koscakluka/dialogue-core/core/events"
)

// Node is a vertex of the dialogue graph. It owns its children and attached
// events; Parent is a non-owning back reference. Text and SpeakerIndex are
// display metadata, opaque to traversal.
type Node struct {
	guid   string
	kind   Kind
	parent *Node
	root   bool

	children []*Node
	events   []*events.Event

	Text         string
	SpeakerIndex int

	// targetGuid is the redirect edge of link nodes, empty otherwise.
	targetGuid string

	// cachedChoice is transient runtime state used by sticky selectors,
	// cleared by Reset.
	cachedChoice    int
	hasCachedChoice bool
}

func newNode(kind Kind) *Node {
	return &Node{guid: uuid.NewString(), kind: kind}
}

// Guid returns the node's process-unique identifier. It is assigned at
// creation and never reused within a loaded graph.
func (n *Node) Guid() string {
	if n == nil {
		return ""
	}
	return n.guid
}

// Kind returns the node's registered kind.
func (n *Node) Kind() Kind {
	if n == nil {
		return ""
	}
	return n.kind
}

// Parent returns the structural parent, nil for the root or a detached node.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// IsRoot reports whether this is the graph's designated entry vertex.
func (n *Node) IsRoot() bool { return n != nil && n.root }

// Children returns the ordered child sequence. The slice is a copy; the
// nodes are not.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}

	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

// Events returns the attached event sequence. The slice is a copy.
func (n *Node) Events() []*events.Event {
	if n == nil {
		return nil
	}

	evs := make([]*events.Event, len(n.events))
	copy(evs, n.events)
	return evs
}

// AddEvent attaches an event to the node.
func (n *Node) AddEvent(e *events.Event) {
	if n == nil || e == nil {
		return
	}
	n.events = append(n.events, e)
}

// AddChild appends node to the child sequence and takes ownership of it. No
// cycle check is performed: the API is meant for newly created or explicitly
// detached nodes.
func (n *Node) AddChild(node *Node) {
	if n == nil || node == nil {
		return
	}

	node.parent = n
	n.children = append(n.children, node)
	logger.Debug("added child node", "parent", n.guid, "child", node.guid, "kind", string(node.kind))
}

// RemoveChild detaches node from the child sequence. The caller keeps the
// detached subtree; discarding it destroys it. Removing a node that is not a
// child of n is a structural violation and performs no mutation.
func (n *Node) RemoveChild(node *Node) error {
	if n == nil || node == nil || node.parent != n {
		return fmt.Errorf("%w: node %q is not a child of %q", ErrStructuralViolation, node.Guid(), n.Guid())
	}

	for i, child := range n.children {
		if child == node {
			n.children = append(n.children[:i], n.children[i+1:]...)
			node.parent = nil
			logger.Debug("removed child node", "parent", n.guid, "child", node.guid)
			return nil
		}
	}

	// Parent pointer said yes but the sequence disagrees; treat it as the
	// same violation rather than guessing.
	return fmt.Errorf("%w: node %q missing from children of %q", ErrStructuralViolation, node.Guid(), n.Guid())
}

// FindByGuid searches depth-first for a node with the given guid, honoring
// each kind's Searchable flag: non-searchable nodes match themselves but
// hide their subtree. Guid collisions are a caller error; the first match in
// document order wins.
func (n *Node) FindByGuid(guid string) (*Node, bool) {
	if n == nil || guid == "" {
		return nil, false
	}

	if n.guid == guid {
		return n, true
	}
	if spec, ok := kindSpec(n.kind); ok && !spec.Searchable {
		return nil, false
	}
	for _, child := range n.children {
		if found, ok := child.FindByGuid(guid); ok {
			return found, true
		}
	}
	return nil, false
}

// FindParentOf searches depth-first for the structural parent of node,
// honoring the same Searchable flag as FindByGuid.
func (n *Node) FindParentOf(node *Node) (*Node, bool) {
	if n == nil || node == nil {
		return nil, false
	}

	if spec, ok := kindSpec(n.kind); ok && !spec.Searchable {
		return nil, false
	}
	for _, child := range n.children {
		if child == node {
			return n, true
		}
		if found, ok := child.FindParentOf(node); ok {
			return found, true
		}
	}
	return nil, false
}

// IsAvailable reports whether the node can currently be played, per its
// kind's predicate. Unavailable nodes are skipped during next-node
// selection.
func (n *Node) IsAvailable() bool {
	if n == nil {
		return false
	}

	spec, ok := kindSpec(n.kind)
	if !ok {
		return false
	}
	return spec.Available(n)
}

// Reset recursively clears transient runtime state (cached selector choices,
// one-shot event flags) without touching authored content. Invoked before a
// graph is replayed from the start.
func (n *Node) Reset() {
	if n == nil {
		return
	}

	n.cachedChoice = 0
	n.hasCachedChoice = false
	for _, e := range n.events {
		events.ResetEvent(e)
	}
	for _, child := range n.children {
		child.Reset()
	}
}

// CachedChoice returns the selector choice stored on this node, if any.
func (n *Node) CachedChoice() (int, bool) {
	if n == nil {
		return 0, false
	}
	return n.cachedChoice, n.hasCachedChoice
}

// SetCachedChoice stores a selector choice on this node until the next
// Reset.
func (n *Node) SetCachedChoice(choice int) {
	if n == nil {
		return
	}
	n.cachedChoice = choice
	n.hasCachedChoice = true
}
