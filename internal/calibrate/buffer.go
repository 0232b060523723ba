// Package calibrate estimates the screen-to-real-world similarity transform
// from two point correspondences captured in measurement mode.
package calibrate

import (
	"screen-measure/pkg/geometry"
)

// PairCount is the number of screen/real-world correspondences a
// calibration needs.
const PairCount = 2

// Buffer is a fixed-capacity ordered sequence of points. Once full, further
// pushes are rejected: exactly two calibration points are expected, and a
// third click must not silently displace the first.
type Buffer struct {
	points []geometry.Point
	cap    int
}

// NewBuffer creates a buffer with the given fixed capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{points: make([]geometry.Point, 0, capacity), cap: capacity}
}

// Push appends a point. It returns false, leaving the buffer unchanged, when
// the buffer is already full.
func (b *Buffer) Push(p geometry.Point) bool {
	if len(b.points) >= b.cap {
		return false
	}
	b.points = append(b.points, p)
	return true
}

// Len returns the number of buffered points.
func (b *Buffer) Len() int {
	return len(b.points)
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int {
	return b.cap
}

// At returns the i-th point in insertion order.
func (b *Buffer) At(i int) geometry.Point {
	return b.points[i]
}

// Points returns the buffered points in insertion order.
func (b *Buffer) Points() []geometry.Point {
	out := make([]geometry.Point, len(b.points))
	copy(out, b.points)
	return out
}

// Full reports whether the buffer holds its full capacity.
func (b *Buffer) Full() bool {
	return len(b.points) >= b.cap
}

// Clear empties the buffer for the next calibration attempt.
func (b *Buffer) Clear() {
	b.points = b.points[:0]
}
