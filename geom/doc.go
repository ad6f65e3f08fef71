// Package geom provides the small 2D value types used by the scaling
// canvas: vectors, axis-aligned rects and the scale-fit affine transform
// that maps one rect into another.
package geom
