package line

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screen-measure/internal/regression"
	"screen-measure/pkg/geometry"
)

func newSegment(t *testing.T, pts ...geometry.Point) *Segment {
	t.Helper()
	s := geometry.NewPointSet()
	for _, p := range pts {
		s.Insert(p)
	}
	seg, err := New(s, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return seg
}

func TestNewFitsUnderIdentity(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 2),
		geometry.NewPoint(2, 4),
	)

	assert.True(t, seg.Transform().IsIdentity())
	assert.InDelta(t, 2.0, seg.Fitted().Slope, 1e-6)
	assert.InDelta(t, 0.0, seg.Fitted().Intercept, 1e-6)
	assert.Equal(t, seg.RawFit(), seg.Fitted())
}

func TestNewRejectsTooFewPoints(t *testing.T) {
	s := geometry.NewPointSet()
	s.Insert(geometry.NewPoint(1, 1))

	_, err := New(s, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, regression.ErrInsufficientPoints)
}

func TestNewFindsExtremePoints(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(5, 1),
		geometry.NewPoint(-2, 7),
		geometry.NewPoint(3, 3),
	)

	assert.Equal(t, geometry.NewPoint(-2, 7), seg.Leftmost)
	assert.Equal(t, geometry.NewPoint(5, 1), seg.Rightmost)
}

func TestNewClonesPointSet(t *testing.T) {
	s := geometry.NewPointSet()
	s.Insert(geometry.NewPoint(0, 0))
	s.Insert(geometry.NewPoint(1, 1))

	seg, err := New(s, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	// Mutating the caller's set must not leak into the segment
	s.Insert(geometry.NewPoint(2, 9))
	assert.Equal(t, 2, seg.RawLen())
}

func TestRefitIdentityKeepsRawFit(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 2),
		geometry.NewPoint(2, 4),
	)

	require.NoError(t, seg.Refit(geometry.Identity()))
	assert.InDelta(t, seg.RawFit().Slope, seg.Fitted().Slope, 1e-6)
	assert.InDelta(t, seg.RawFit().Intercept, seg.Fitted().Intercept, 1e-6)
}

func TestRefitTranslationShiftsIntercept(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 2),
		geometry.NewPoint(2, 4),
	)

	shift := geometry.Transform{Alpha: 1, DX: 0, DY: 10}
	require.NoError(t, seg.Refit(shift))

	assert.InDelta(t, 2.0, seg.Fitted().Slope, 1e-5)
	assert.InDelta(t, 10.0, seg.Fitted().Intercept, 1e-4)
	assert.Equal(t, shift, seg.Transform())
}

func TestRefitRotationRerunsTheFitter(t *testing.T) {
	// Scattered points so the fit has residuals. Under rotation the
	// residual axis rotates with the data, so re-fitting the mapped points
	// gives a different slope than transforming the line parameters.
	seg := newSegment(t,
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 2),
		geometry.NewPoint(2, 3.5),
		geometry.NewPoint(3, 6),
	)
	rawSlope := seg.Fitted().Slope
	assert.InDelta(t, 1.95, rawSlope, 1e-4)

	rot := geometry.Transform{Alpha: 0, Beta: 1} // 90 degrees
	require.NoError(t, seg.Refit(rot))

	assert.InDelta(t, -0.50814, seg.Fitted().Slope, 1e-3)

	// The parameter-algebra shortcut lands elsewhere
	naive := (rot.Alpha*rawSlope + rot.Beta) / (rot.Alpha - rot.Beta*rawSlope)
	assert.Greater(t, abs32(seg.Fitted().Slope-naive), float32(0.001))
}

func TestRefitDegenerateKeepsPreviousFit(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 2),
	)
	before := seg.Fitted()

	// Collapse every point onto one: too few distinct points to fit
	squash := geometry.Transform{Alpha: 0, Beta: 0, DX: 1, DY: 1}
	err := seg.Refit(squash)
	assert.ErrorIs(t, err, regression.ErrInsufficientPoints)
	assert.Equal(t, before, seg.Fitted())
	assert.True(t, seg.Transform().IsIdentity())
}

func TestEndpoints(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(0, 0),
		geometry.NewPoint(2, 4),
	)

	start, end := seg.Endpoints()
	assert.InDelta(t, 0.0, start.X, 1e-6)
	assert.InDelta(t, 0.0, start.Y, 1e-6)
	assert.InDelta(t, 2.0, end.X, 1e-6)
	assert.InDelta(t, 4.0, end.Y, 1e-6)
}

func TestScreenLine(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(1, 1),
		geometry.NewPoint(3, 5),
	)

	l := seg.ScreenLine()
	assert.InDelta(t, 2.0, l.Slope, 1e-6)
	assert.InDelta(t, -1.0, l.Intercept, 1e-6)
}

func TestRawPointsIsACopy(t *testing.T) {
	seg := newSegment(t,
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 1),
	)

	pts := seg.RawPoints()
	pts[0] = geometry.NewPoint(99, 99)
	assert.Equal(t, 2, seg.RawLen())

	for _, p := range seg.RawPoints() {
		assert.Less(t, float64(p.X), 2.0)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
