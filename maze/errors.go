package maze

import "errors"

// ErrOutOfBounds is the message used when a fatal, caller-bug precondition
// is violated. It is never returned as an error value — Fill and Clean
// panic with it, per spec.md §7, because an out-of-bounds rectangle is a
// caller bug, not a recoverable routing failure.
var ErrOutOfBounds = errors.New("maze: rectangle out of bounds")
