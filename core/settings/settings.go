// Package settings exposes the speaker display-metadata boundary. It is
// consumed only when rendering playback output for humans; traversal logic
// never touches it.
package settings

import "fmt"

// Provider supplies speaker display names to rendering layers.
type Provider interface {
	SpeakerCount() int
	SpeakerNameAt(index int) (string, bool)
}

// Static is a fixed, in-memory Provider. The zero value has no speakers.
type Static struct {
	Speakers []string
}

func (s *Static) SpeakerCount() int {
	if s == nil {
		return 0
	}
	return len(s.Speakers)
}

func (s *Static) SpeakerNameAt(index int) (string, bool) {
	if s == nil || index < 0 || index >= len(s.Speakers) {
		return "", false
	}
	return s.Speakers[index], true
}

// SpeakerLabel resolves a display label for a speaker index, falling back to
// a generic positional label when the provider has no name for it.
func SpeakerLabel(p Provider, index int) string {
	if p != nil {
		if name, ok := p.SpeakerNameAt(index); ok {
			return name
		}
	}
	return fmt.Sprintf("Speaker %d", index+1)
}
