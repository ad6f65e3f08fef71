package canvas

import "errors"

var (
	// ErrContextUnavailable is returned by New when the surface cannot
	// produce a 2D drawing context.
	ErrContextUnavailable = errors.New("canvas: could not get 2d context")

	// ErrNotInitialized is returned by coordinate-dependent operations
	// before both the camera and the canvas size are known.
	ErrNotInitialized = errors.New("canvas: not initialized")
)
