// Package canvas provides an image canvas with zoom, point markers, and
// fitted line segments drawn over a captured raster.
package canvas

import (
	"image/color"
)

// Marker is a filled circle drawn at a buffered point, in image coordinates.
type Marker struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
}

// SegmentShape is a line segment drawn between two image-coordinate
// endpoints with a per-line color.
type SegmentShape struct {
	X1, Y1    float64
	X2, Y2    float64
	Color     color.RGBA
	Thickness int
}
