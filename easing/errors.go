package easing

import "errors"

var (
	// ErrInvalidArgument flags curve parameters that cannot describe an
	// easing function.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownEasing is returned by Lookup for unregistered names.
	ErrUnknownEasing = errors.New("unknown easing")
)
