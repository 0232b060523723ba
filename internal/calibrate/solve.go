package calibrate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"screen-measure/pkg/geometry"
)

// ErrDegenerateCalibration is returned when the calibration system is
// singular. With two correspondences this happens precisely when the two
// screen points coincide.
var ErrDegenerateCalibration = errors.New("calibrate: degenerate calibration, screen points coincide")

// Solve estimates the similarity transform mapping screen coordinates to
// real-world coordinates from two correspondences (s1 -> w1, s2 -> w2).
//
// Each correspondence contributes the two equations of the transform
// definition as rows of a 4x4 linear system in the unknowns
// (alpha, beta, dx, dy):
//
//	[x -y 1 0] . (alpha, beta, dx, dy)ᵗ = wx
//	[y  x 0 1] . (alpha, beta, dx, dy)ᵗ = wy
//
// The returned transform replaces the current one wholesale; there is no
// blending with a previous calibration.
func Solve(s1, w1, s2, w2 geometry.Point) (geometry.Transform, error) {
	a := mat.NewDense(4, 4, []float64{
		float64(s1.X), float64(-s1.Y), 1, 0,
		float64(s1.Y), float64(s1.X), 0, 1,
		float64(s2.X), float64(-s2.Y), 1, 0,
		float64(s2.Y), float64(s2.X), 0, 1,
	})
	b := mat.NewVecDense(4, []float64{
		float64(w1.X), float64(w1.Y),
		float64(w2.X), float64(w2.Y),
	})

	var params mat.VecDense
	if err := params.SolveVec(a, b); err != nil {
		return geometry.Transform{}, fmt.Errorf("%w: %v", ErrDegenerateCalibration, err)
	}

	return geometry.Transform{
		Alpha: float32(params.AtVec(0)),
		Beta:  float32(params.AtVec(1)),
		DX:    float32(params.AtVec(2)),
		DY:    float32(params.AtVec(3)),
	}, nil
}

// SolveBuffers is the convenience form taken by the session: the screen
// buffer holds the two clicked points, worlds holds the operator-entered
// real-world coordinates in the same order.
func SolveBuffers(screen *Buffer, worlds []geometry.Point) (geometry.Transform, error) {
	if screen.Len() < PairCount || len(worlds) < PairCount {
		return geometry.Transform{}, fmt.Errorf("calibrate: need %d point pairs, have %d screen and %d real-world",
			PairCount, screen.Len(), len(worlds))
	}
	return Solve(screen.At(0), worlds[0], screen.At(1), worlds[1])
}
