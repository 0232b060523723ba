package calibrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screen-measure/pkg/geometry"
)

func TestBufferRejectsWhenFull(t *testing.T) {
	b := NewBuffer(PairCount)

	assert.True(t, b.Push(geometry.NewPoint(1, 1)))
	assert.True(t, b.Push(geometry.NewPoint(2, 2)))
	assert.True(t, b.Full())

	// The third push must not displace either captured point
	assert.False(t, b.Push(geometry.NewPoint(3, 3)))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, geometry.NewPoint(1, 1), b.At(0))
	assert.Equal(t, geometry.NewPoint(2, 2), b.At(1))
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(PairCount)
	b.Push(geometry.NewPoint(1, 1))
	b.Clear()

	assert.Equal(t, 0, b.Len())
	assert.False(t, b.Full())
	assert.True(t, b.Push(geometry.NewPoint(5, 5)))
}

func TestBufferPointsIsACopy(t *testing.T) {
	b := NewBuffer(PairCount)
	b.Push(geometry.NewPoint(1, 1))

	pts := b.Points()
	pts[0] = geometry.NewPoint(9, 9)
	assert.Equal(t, geometry.NewPoint(1, 1), b.At(0))
}

func TestSolveRoundTrip(t *testing.T) {
	target := geometry.Transform{Alpha: 0.5, Beta: 0.866, DX: 10, DY: -5}

	s1 := geometry.NewPoint(100, 50)
	s2 := geometry.NewPoint(-20, 30)
	w1 := target.Apply(s1)
	w2 := target.Apply(s2)

	got, err := Solve(s1, w1, s2, w2)
	require.NoError(t, err)

	assert.InDelta(t, target.Alpha, got.Alpha, 1e-4)
	assert.InDelta(t, target.Beta, got.Beta, 1e-4)
	assert.InDelta(t, target.DX, got.DX, 1e-3)
	assert.InDelta(t, target.DY, got.DY, 1e-3)
}

func TestSolveTranslationOnly(t *testing.T) {
	s1 := geometry.NewPoint(0, 0)
	s2 := geometry.NewPoint(10, 0)

	got, err := Solve(s1, geometry.NewPoint(5, 7), s2, geometry.NewPoint(15, 7))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, got.Alpha, 1e-6)
	assert.InDelta(t, 0.0, got.Beta, 1e-6)
	assert.InDelta(t, 5.0, got.DX, 1e-6)
	assert.InDelta(t, 7.0, got.DY, 1e-6)
}

func TestSolveCoincidentScreenPoints(t *testing.T) {
	p := geometry.NewPoint(4, 4)
	_, err := Solve(p, geometry.NewPoint(0, 0), p, geometry.NewPoint(1, 1))
	assert.ErrorIs(t, err, ErrDegenerateCalibration)
}

func TestSolveBuffers(t *testing.T) {
	target := geometry.Transform{Alpha: 2, Beta: 0, DX: -3, DY: 4}

	b := NewBuffer(PairCount)
	s1 := geometry.NewPoint(1, 1)
	s2 := geometry.NewPoint(8, -2)
	b.Push(s1)
	b.Push(s2)

	got, err := SolveBuffers(b, []geometry.Point{target.Apply(s1), target.Apply(s2)})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.Alpha, 1e-5)
	assert.InDelta(t, 0.0, got.Beta, 1e-5)
	assert.InDelta(t, -3.0, got.DX, 1e-5)
	assert.InDelta(t, 4.0, got.DY, 1e-5)
}

func TestSolveBuffersTooFewPoints(t *testing.T) {
	b := NewBuffer(PairCount)
	b.Push(geometry.NewPoint(1, 1))

	_, err := SolveBuffers(b, []geometry.Point{{}, {}})
	assert.Error(t, err)
}

func TestEntryParse(t *testing.T) {
	e := Entry{X: " 1.5 ", Y: "-2"}
	p, err := e.Parse()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint(1.5, -2), p)
}

func TestEntryParseBadText(t *testing.T) {
	_, err := Entry{X: "abc", Y: "1"}.Parse()
	assert.Error(t, err)

	_, err = Entry{X: "1", Y: ""}.Parse()
	assert.Error(t, err)
}

func TestNewEntryRoundTrips(t *testing.T) {
	e := NewEntry(3.25, -0.5)
	p, err := e.Parse()
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint(3.25, -0.5), p)
}
