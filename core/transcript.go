package playback

import (
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/muesli/reflow/wordwrap"

	"github.com/koscakluka/dialogue-core/core/graph"
	"github.com/koscakluka/dialogue-core/core/settings"
)

// TranscriptEntry records one content node the player entered.
type TranscriptEntry struct {
	NodeGuid     string
	Text         string
	SpeakerIndex int
	EnteredAt    time.Time
}

// Transcript is the append-only record of a playback session, the debugging
// and tooling view of what the player actually said.
type Transcript struct {
	mu      sync.RWMutex
	entries []TranscriptEntry
}

func newTranscript() *Transcript {
	return &Transcript{}
}

func (t *Transcript) append(node *graph.Node) {
	if t == nil || node == nil {
		return
	}

	t.mu.Lock()
	t.entries = append(t.entries, TranscriptEntry{
		NodeGuid:     node.Guid(),
		Text:         node.Text,
		SpeakerIndex: node.SpeakerIndex,
		EnteredAt:    time.Now(),
	})
	t.mu.Unlock()
}

// Len reports how many entries have been recorded.
func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Snapshot returns a point-in-time deep copy of the recorded entries.
func (t *Transcript) Snapshot() []TranscriptEntry {
	if t == nil {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var entries []TranscriptEntry
	copier.Copy(&entries, t.entries)
	return entries
}

// Render formats the transcript as speaker-prefixed plain text, wrapped to
// width columns when width is positive. Speaker names come from the
// provider, with positional fallbacks for unnamed indices.
func (t *Transcript) Render(provider settings.Provider, width int) string {
	entries := t.Snapshot()

	var b strings.Builder
	for i, entry := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(settings.SpeakerLabel(provider, entry.SpeakerIndex))
		b.WriteString(": ")
		b.WriteString(entry.Text)
	}

	rendered := b.String()
	if width > 0 {
		rendered = wordwrap.String(rendered, width)
	}
	return rendered
}
