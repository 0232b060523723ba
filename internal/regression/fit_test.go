package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screen-measure/pkg/geometry"
)

func setOf(pts ...geometry.Point) *geometry.PointSet {
	s := geometry.NewPointSet()
	for _, p := range pts {
		s.Insert(p)
	}
	return s
}

func TestFitExactLine(t *testing.T) {
	s := setOf(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 2),
		geometry.NewPoint(2, 4),
	)

	l, err := Fit(s)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, l.Slope, 1e-6)
	assert.InDelta(t, 0.0, l.Intercept, 1e-6)
	assert.NoError(t, l.Check())
}

func TestFitScatteredPoints(t *testing.T) {
	s := setOf(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 2),
		geometry.NewPoint(2, 3.5),
		geometry.NewPoint(3, 6),
	)

	l, err := Fit(s)
	require.NoError(t, err)
	assert.InDelta(t, 1.95, l.Slope, 1e-4)
	assert.InDelta(t, -0.05, l.Intercept, 1e-4)
}

func TestFitTooFewPoints(t *testing.T) {
	_, err := Fit(geometry.NewPointSet())
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = Fit(setOf(geometry.NewPoint(5, 5)))
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestFitVerticalPointsIsDegenerate(t *testing.T) {
	s := setOf(
		geometry.NewPoint(3, 0),
		geometry.NewPoint(3, 1),
		geometry.NewPoint(3, 2),
	)

	l, err := Fit(s)
	require.NoError(t, err)
	assert.True(t, l.Degenerate())
	assert.ErrorIs(t, l.Check(), ErrDegenerateFit)
}

func TestEquationFormatting(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{"positive intercept", Line{Slope: 2, Intercept: 0.5}, "y = 2.000x + 0.500"},
		{"negative intercept", Line{Slope: -1.25, Intercept: -3}, "y = -1.250x - 3.000"},
		{"zero intercept", Line{Slope: 1, Intercept: 0}, "y = 1.000x + 0.000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.Equation())
		})
	}
}

func TestYAt(t *testing.T) {
	l := Line{Slope: 2, Intercept: 1}
	assert.InDelta(t, 7.0, l.YAt(3), 1e-6)
	assert.InDelta(t, 1.0, l.YAt(0), 1e-6)
}
