package graph

import "fmt"

// LinkTo points a link node's redirect edge at target. Only the target's
// guid is stored, never a pointer, so a target that is later removed from
// the graph leaves a dead link instead of a dangling reference.
func (n *Node) LinkTo(target *Node) error {
	if n == nil || n.kind != KindLink {
		return fmt.Errorf("%w: %q", ErrNotLink, n.Guid())
	}

	if target == nil {
		n.targetGuid = ""
		return nil
	}
	n.targetGuid = target.guid
	return nil
}

// TargetGuid returns the stored redirect guid of a link node, empty when
// unset or when the node is not a link.
func (n *Node) TargetGuid() string {
	if n == nil {
		return ""
	}
	return n.targetGuid
}

// ResolveLink re-resolves the redirect edge against the live graph. It
// returns false for non-links, unset links, and links whose target has been
// removed; traversal treats all of those as a dead end, never a fault.
func (n *Node) ResolveLink(g *Graph) (*Node, bool) {
	if n == nil || g == nil || n.kind != KindLink || n.targetGuid == "" {
		return nil, false
	}
	return g.FindNode(n.targetGuid)
}
