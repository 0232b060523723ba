// Package line holds the fitted line segment built from a committed point
// cluster, together with its per-frame re-fit against the current transform.
package line

import (
	"fmt"
	"math/rand"

	"screen-measure/internal/regression"
	"screen-measure/pkg/colorutil"
	"screen-measure/pkg/geometry"
)

// Segment is one committed regression line. It owns the raw screen-space
// point set that produced it; the set is never mutated after creation.
//
// The cached fit is always computed against the last transform applied,
// so Fitted/Equation report the line in real-world space. The extreme
// points are raw screen-space values computed once at creation; they only
// bound the drawn segment on screen.
type Segment struct {
	raw *geometry.PointSet

	rawFit    regression.Line
	fitted    regression.Line
	transform geometry.Transform

	Leftmost  geometry.Point
	Rightmost geometry.Point
	Color     colorutil.RGB
}

// New builds a Segment from a raw point set, fitting it under the identity
// transform. The set must hold at least two points.
func New(points *geometry.PointSet, rng *rand.Rand) (*Segment, error) {
	fitted, err := regression.Fit(points)
	if err != nil {
		return nil, err
	}

	members := points.Points()
	leftmost, rightmost := members[0], members[0]
	for _, p := range members[1:] {
		if p.X < leftmost.X {
			leftmost = p
		}
		if p.X > rightmost.X {
			rightmost = p
		}
	}

	return &Segment{
		raw:       points.Clone(),
		rawFit:    fitted,
		fitted:    fitted,
		transform: geometry.Identity(),
		Leftmost:  leftmost,
		Rightmost: rightmost,
		Color:     colorutil.Random(rng),
	}, nil
}

// Refit re-derives the fitted line under the given transform. The raw set
// is mapped through the transform and the fitter reruns on the mapped
// points; the parameters are never derived algebraically from the previous
// slope/intercept, since fitting does not commute with rotation.
func (s *Segment) Refit(t geometry.Transform) error {
	mapped := geometry.TransformSet(s.raw, t)
	fitted, err := regression.Fit(mapped)
	if err != nil {
		return fmt.Errorf("refit: %w", err)
	}
	s.fitted = fitted
	s.transform = t
	return nil
}

// Fitted returns the cached fit, valid for Transform().
func (s *Segment) Fitted() regression.Line {
	return s.fitted
}

// Transform returns the transform the cached fit was computed against.
func (s *Segment) Transform() geometry.Transform {
	return s.transform
}

// Equation formats the transformed-space line equation.
func (s *Segment) Equation() string {
	return s.fitted.Equation()
}

// RawPoints returns a copy of the raw screen-space points, e.g. for export.
func (s *Segment) RawPoints() []geometry.Point {
	return s.raw.Points()
}

// RawLen returns the size of the raw point set.
func (s *Segment) RawLen() int {
	return s.raw.Len()
}

// RawFit returns the screen-space fit computed once at creation. The
// reported equation always comes from Fitted instead; RawFit only positions
// the drawn segment.
func (s *Segment) RawFit() regression.Line {
	return s.rawFit
}

// Endpoints returns the two screen-space endpoints of the drawn segment:
// the raw fit evaluated at the extreme member x values.
func (s *Segment) Endpoints() (geometry.Point, geometry.Point) {
	start := geometry.NewPoint(s.Leftmost.X, s.rawFit.YAt(s.Leftmost.X))
	end := geometry.NewPoint(s.Rightmost.X, s.rawFit.YAt(s.Rightmost.X))
	return start, end
}

// ScreenLine returns the slope/intercept of the chord between the extreme
// raw points.
func (s *Segment) ScreenLine() regression.Line {
	d := s.Leftmost.Sub(s.Rightmost)
	slope := d.Y / d.X
	return regression.Line{
		Slope:     slope,
		Intercept: s.Leftmost.Y - slope*s.Leftmost.X,
	}
}
