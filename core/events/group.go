package events

// group aggregates a sequence of events so a node can carry several
// behaviors under one attachment slot.
type group struct {
	members []*Event
}

// NewGroup returns a composite event over members, in order. The group is
// available while it has at least one available member.
func NewGroup(members ...*Event) *Event {
	return New(&group{members: members})
}

func (g *group) IsAvailable() bool {
	for _, m := range g.members {
		if m.IsAvailable() {
			return true
		}
	}
	return false
}

func (g *group) IsPlaying() bool {
	for _, m := range g.members {
		if m.IsPlaying() {
			return true
		}
	}
	return false
}

// OnPlay plays every member regardless of individual failures and reports
// whether any of them took effect.
func (g *group) OnPlay(p Playback) bool {
	return PlayAll(p, g.members)
}

// OnStop delegates to every member unconditionally. Each member registers
// itself with the shared tracker, so the group is always synchronously done
// at its own level; member asynchrony is absorbed by the tracker rather than
// surfaced through the group's return value.
func (g *group) OnStop(p Playback, closing bool, _ func()) bool {
	for _, m := range g.members {
		m.Stop(p, closing)
	}
	return true
}

// Reset forwards the reset to resettable members.
func (g *group) Reset() {
	for _, m := range g.members {
		ResetEvent(m)
	}
}
