// Package events defines the node side-effect contract for dialogue playback.
//
// An Event is the unit a node carries to drive external behavior (animation,
// camera, UI, audio) when the node is entered and exited. The package splits
// the contract in two:
//
//   - Behavior: the subtype contract implemented by side-effect providers.
//     OnPlay starts the behavior; OnStop ends it and reports whether it
//     finished synchronously, otherwise the provider calls the supplied done
//     callback once it has.
//   - Event: the engine-side wrapper that owns the two-phase stop protocol
//     (register with the tracker before attempting, unregister on
//     completion) so the pending set always reflects reality.
//
// Semantics used across the package:
//
//   - Available: the behavior is structurally able to play right now;
//     unavailable events are skipped by both Play and Stop.
//   - Playing: the behavior is currently running.
//   - Closing: the stop is part of conversation teardown rather than a node
//     transition; providers may skip exit transitions in that case.
//
// The CompletionTracker converges any number of concurrently stopping events
// onto a single completion signal. It is owned by the Player and handed to
// events through the Playback interface, never kept as global state, so
// multiple players remain isolated.
package events
