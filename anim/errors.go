package anim

import "errors"

var (
	// ErrCanceled is reported by Handle.Wait for an animation that was
	// cancelled or replaced by a newer one under the same id.
	ErrCanceled = errors.New("animation canceled")

	// ErrCallbackPanicked is reported by Handle.Wait for an animation
	// dropped because its update callback panicked.
	ErrCallbackPanicked = errors.New("animation callback panicked")
)
