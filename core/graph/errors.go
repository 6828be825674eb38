package graph

import "errors"

var (
	// ErrUnknownKind reports an attempt to create a node of an unregistered
	// kind.
	ErrUnknownKind = errors.New("unknown node kind")
	// ErrNodeNotFound reports a lookup miss for a node expected to be part
	// of the graph.
	ErrNodeNotFound = errors.New("node not found in graph")
	// ErrStructuralViolation reports a tree mutation that would break the
	// ownership invariants; the mutation is rejected and nothing changes.
	ErrStructuralViolation = errors.New("structural violation")
	// ErrNotLink reports a link operation on a node that is not a link.
	ErrNotLink = errors.New("node is not a link")
)
