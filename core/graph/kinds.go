package graph

import (
	"sort"
	"sync"

	"github.com/invopop/jsonschema"
)

// Kind identifies a node variant in the creatable-kind registry.
type Kind string

const (
	// KindLine is a content node: spoken text plus attached events.
	KindLine Kind = "line"
	// KindLink is a non-owning redirect to another node in the same graph.
	KindLink Kind = "link"
	// KindComment is an authoring note. It never plays and its subtree is
	// hidden from guid searches.
	KindComment Kind = "comment"
)

// KindSpec describes a creatable node kind to the engine and to authoring
// tools.
type KindSpec struct {
	Kind Kind

	// Searchable controls whether FindByGuid descends into children of
	// nodes of this kind. Collapsed or purely-editorial kinds opt out.
	Searchable bool

	// Available is the kind's availability predicate, consulted during
	// next-node selection.
	Available func(*Node) bool

	// Metadata is the zero value of the kind's authoring-metadata struct,
	// reflected into a JSON schema for inspector panels.
	Metadata any
}

// LineMetadata is the authoring surface of a line node.
type LineMetadata struct {
	Text         string `json:"text"`
	SpeakerIndex int    `json:"speakerIndex"`
}

// LinkMetadata is the authoring surface of a link node.
type LinkMetadata struct {
	TargetGuid string `json:"targetGuid"`
}

// CommentMetadata is the authoring surface of a comment node.
type CommentMetadata struct {
	Text string `json:"text"`
}

var (
	kindsMu sync.RWMutex
	kinds   = map[Kind]KindSpec{}
)

func init() {
	RegisterKind(KindSpec{
		Kind:       KindLine,
		Searchable: true,
		Available:  lineAvailable,
		Metadata:   LineMetadata{},
	})
	RegisterKind(KindSpec{
		Kind:       KindLink,
		Searchable: true,
		Available:  func(n *Node) bool { return n.targetGuid != "" },
		Metadata:   LinkMetadata{},
	})
	RegisterKind(KindSpec{
		Kind:       KindComment,
		Searchable: false,
		Available:  func(*Node) bool { return false },
		Metadata:   CommentMetadata{},
	})
}

func lineAvailable(n *Node) bool {
	if n.Text != "" {
		return true
	}
	for _, e := range n.events {
		if e.IsAvailable() {
			return true
		}
	}
	for _, child := range n.children {
		if child.IsAvailable() {
			return true
		}
	}
	return false
}

// RegisterKind adds a creatable node kind. Registering an existing kind
// replaces its spec; registration is expected to happen at startup.
func RegisterKind(spec KindSpec) {
	if spec.Kind == "" || spec.Available == nil {
		return
	}

	kindsMu.Lock()
	kinds[spec.Kind] = spec
	kindsMu.Unlock()
}

func kindSpec(kind Kind) (KindSpec, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()

	spec, ok := kinds[kind]
	return spec, ok
}

// CreatableKinds lists registered kinds in stable order, for authoring
// pickers.
func CreatableKinds() []Kind {
	kindsMu.RLock()
	out := make([]Kind, 0, len(kinds))
	for kind := range kinds {
		out = append(out, kind)
	}
	kindsMu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// KindSchema returns the JSON schema of a kind's authoring metadata, for
// inspector panels. The second result is false for unregistered kinds or
// kinds without metadata.
func KindSchema(kind Kind) (*jsonschema.Schema, bool) {
	spec, ok := kindSpec(kind)
	if !ok || spec.Metadata == nil {
		return nil, false
	}
	return jsonschema.Reflect(spec.Metadata), true
}
