// Package geometry provides the basic geometric types used throughout the
// application: 2D points in single precision, the unique point set, and the
// similarity transform that maps screen pixels to real-world coordinates.
package geometry

import (
	"math"
)

// Point represents a 2D point with single-precision coordinates.
// The engine runs in float32 end to end; screen pixels and real-world
// coordinates use the same representation.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// NewPoint creates a new Point.
func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// Finite reports whether both coordinates are finite.
func (p Point) Finite() bool {
	return !math.IsNaN(float64(p.X)) && !math.IsInf(float64(p.X), 0) &&
		!math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.Y), 0)
}

// pointKey is the canonical bit representation of a Point used for set
// membership. Equality is exact bit-for-bit, with two fixups so that every
// float value has one well-defined identity: all NaN payloads collapse to a
// single pattern, and -0 collapses to +0. Near-but-not-exact duplicates are
// intentionally distinct points.
type pointKey struct {
	x, y uint32
}

const canonicalNaN = 0x7fc00000

func coordBits(v float32) uint32 {
	if v != v { // NaN
		return canonicalNaN
	}
	if v == 0 {
		return 0
	}
	return math.Float32bits(v)
}

func (p Point) key() pointKey {
	return pointKey{x: coordBits(p.X), y: coordBits(p.Y)}
}

// Transform is a similarity transform (uniform scale + rotation +
// translation) in the parameterization
//
//	x' = Alpha*x - Beta*y + DX
//	y' = Beta*x  + Alpha*y + DY
//
// where Alpha = s*cos(theta) and Beta = s*sin(theta).
type Transform struct {
	Alpha float32 `json:"alpha"`
	Beta  float32 `json:"beta"`
	DX    float32 `json:"dx"`
	DY    float32 `json:"dy"`
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{Alpha: 1}
}

// Apply applies the transform to a point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.Alpha*p.X - t.Beta*p.Y + t.DX,
		Y: t.Beta*p.X + t.Alpha*p.Y + t.DY,
	}
}

// Scale returns the uniform scale factor encoded in the transform.
func (t Transform) Scale() float32 {
	return float32(math.Hypot(float64(t.Alpha), float64(t.Beta)))
}

// Angle returns the rotation angle in radians.
func (t Transform) Angle() float32 {
	return float32(math.Atan2(float64(t.Beta), float64(t.Alpha)))
}

// IsIdentity reports whether the transform is exactly the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}
