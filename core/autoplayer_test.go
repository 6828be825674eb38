package playback

import (
	"context"
	"testing"
	"time"

	"github.com/koscakluka/dialogue-core/core/graph"
)

func TestAutoPlayerRunsThroughToClosed(t *testing.T) {
	g := graph.New()
	hello := lineNode(t, g, "Hello")
	bye := lineNode(t, g, "Bye")
	g.Root().AddChild(hello)
	hello.AddChild(bye)

	a := NewAutoPlayer(time.Millisecond)
	if !a.Run(context.Background(), g) {
		t.Fatalf("auto player did not start")
	}
	a.AwaitDone()

	if a.State() != StateClosed {
		t.Fatalf("expected Closed after the loop drained, got %s", a.State())
	}
	if got := a.Transcript().Len(); got != 2 {
		t.Fatalf("expected 2 transcript entries, got %d", got)
	}
}

func TestAutoPlayerRunsAtMostOnce(t *testing.T) {
	g := graph.New()
	g.Root().AddChild(lineNode(t, g, "only"))

	a := NewAutoPlayer(time.Millisecond)
	if !a.Run(context.Background(), g) {
		t.Fatalf("auto player did not start")
	}
	if a.Run(context.Background(), g) {
		t.Fatalf("second Run reported a fresh start")
	}
	a.AwaitDone()
}

func TestAutoPlayerStopClosesACyclingGraph(t *testing.T) {
	g := graph.New()
	a := lineNode(t, g, "A")
	b := lineNode(t, g, "B")
	g.Root().AddChild(a)
	g.Root().AddChild(b)
	a.AddChild(linkNode(t, g, b))
	b.AddChild(linkNode(t, g, a))

	player := NewAutoPlayer(time.Millisecond)
	if !player.Run(context.Background(), g, WithStartNode(a)) {
		t.Fatalf("auto player did not start")
	}

	// Let the cycle spin a little, then ask it to wind down.
	time.Sleep(20 * time.Millisecond)
	player.Stop()
	player.AwaitDone()

	if player.State() != StateClosed {
		t.Fatalf("expected Closed after Stop, got %s", player.State())
	}
}

func TestAutoPlayerHonorsContextCancellation(t *testing.T) {
	g := graph.New()
	a := lineNode(t, g, "A")
	g.Root().AddChild(a)
	a.AddChild(linkNode(t, g, a))

	ctx, cancel := context.WithCancel(context.Background())
	player := NewAutoPlayer(time.Millisecond)
	if !player.Run(ctx, g, WithStartNode(a)) {
		t.Fatalf("auto player did not start")
	}

	cancel()
	player.AwaitDone()
	if player.State() != StateClosed {
		t.Fatalf("expected Closed after cancellation, got %s", player.State())
	}
}
