// Package regression provides the ordinary least-squares line fitter used
// for every committed point cluster. Fitting runs in single precision to
// match the engine's coordinate representation.
package regression

import (
	"errors"
	"fmt"
	"math"

	"screen-measure/pkg/geometry"
)

// ErrInsufficientPoints is returned when a fit is requested on fewer than
// two points. Callers are expected to guard with Len >= 2 before fitting;
// hitting this error means a precondition was violated.
var ErrInsufficientPoints = errors.New("regression: need at least 2 points to fit a line")

// ErrDegenerateFit is returned by Line.Check when the fitted slope is not
// finite, which happens when every point shares the same x coordinate.
var ErrDegenerateFit = errors.New("regression: zero x-variance, slope is not finite")

// Line holds a fitted slope/intercept pair.
type Line struct {
	Slope     float32
	Intercept float32
}

// Fit computes the least-squares line through every point in the set:
//
//	slope     = (n*Σxy - Σx*Σy) / (n*Σx² - (Σx)²)
//	intercept = (Σy - slope*Σx) / n
//
// A set where all points share the same x produces a non-finite slope;
// Fit does not mask that, the caller inspects it via Check or Degenerate.
func Fit(points *geometry.PointSet) (Line, error) {
	if points.Len() < 2 {
		return Line{}, ErrInsufficientPoints
	}

	var n, sumX, sumY, sumXX, sumXY float32
	n = float32(points.Len())
	for _, p := range points.Points() {
		sumX += p.X
		sumY += p.Y
		sumXX += p.X * p.X
		sumXY += p.X * p.Y
	}

	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n
	return Line{Slope: slope, Intercept: intercept}, nil
}

// Degenerate reports whether the fit produced a non-finite slope.
func (l Line) Degenerate() bool {
	s := float64(l.Slope)
	return math.IsNaN(s) || math.IsInf(s, 0)
}

// Check returns ErrDegenerateFit for a degenerate line, nil otherwise.
func (l Line) Check() error {
	if l.Degenerate() {
		return ErrDegenerateFit
	}
	return nil
}

// Equation formats the line as a human-readable equation with three-decimal
// fixed formatting, e.g. "y = 2.000x + 0.500" or "y = 2.000x - 0.500".
func (l Line) Equation() string {
	if l.Intercept < 0 {
		return fmt.Sprintf("y = %.3fx - %.3f", l.Slope, -l.Intercept)
	}
	return fmt.Sprintf("y = %.3fx + %.3f", l.Slope, l.Intercept)
}

// YAt evaluates the line at the given x.
func (l Line) YAt(x float32) float32 {
	return l.Slope*x + l.Intercept
}
