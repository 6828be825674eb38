package playback

import "errors"

// ErrInvalidState reports an operation that is not valid for the player's
// current state. It indicates a driver bug: the call is rejected with no
// side effect, but the player itself remains usable.
var ErrInvalidState = errors.New("operation invalid for current player state")
