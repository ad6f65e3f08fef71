// Package canvas lets callers draw in their own world coordinates on a host
// raster surface. The world is Y-up with an arbitrary origin; the surface
// is Y-down in pixels. A ScalingCanvas keeps one uniform-scale transform
// that fits the requested world rect into the surface, centered, and
// refits it whenever the camera or the surface size changes.
//
// Hosts plug in through the Surface and Context interfaces. See the
// host/ebitenhost, host/gghost and host/pdfhost packages.
package canvas
