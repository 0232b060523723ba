package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSetInsertIdempotent(t *testing.T) {
	s := NewPointSet()

	assert.True(t, s.Insert(NewPoint(1, 2)))
	assert.Equal(t, 1, s.Len())

	// Inserting the same point again leaves cardinality unchanged
	assert.False(t, s.Insert(NewPoint(1, 2)))
	assert.Equal(t, 1, s.Len())

	// 2.0000001 rounds to the same float32 bits as 2.0
	assert.False(t, s.Insert(NewPoint(1, 2.0000001)))
	assert.Equal(t, 1, s.Len())

	// The closest representable float32 above 2 is a distinct member
	assert.True(t, s.Insert(NewPoint(1, math.Nextafter32(2, 3))))
	assert.Equal(t, 2, s.Len())
}

func TestPointSetNearDuplicatesStayDistinct(t *testing.T) {
	s := NewPointSet()
	s.Insert(NewPoint(10, 10))
	s.Insert(NewPoint(10, 10.001))
	s.Insert(NewPoint(10.001, 10))
	assert.Equal(t, 3, s.Len())
}

func TestPointSetNaNCanonicalization(t *testing.T) {
	nan1 := float32(math.NaN())
	nan2 := math.Float32frombits(0x7fc00001) // different NaN payload

	s := NewPointSet()
	assert.True(t, s.Insert(NewPoint(nan1, 1)))
	assert.False(t, s.Insert(NewPoint(nan2, 1)), "all NaN payloads must alias to one member")
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains(NewPoint(nan2, 1)))
}

func TestPointSetNegativeZero(t *testing.T) {
	negZero := math.Float32frombits(0x80000000)

	s := NewPointSet()
	s.Insert(NewPoint(0, 0))
	assert.False(t, s.Insert(NewPoint(negZero, 0)), "-0 and +0 compare equal, they must alias")
	assert.Equal(t, 1, s.Len())
}

func TestPointSetContainsAndClear(t *testing.T) {
	s := NewPointSet()
	s.Insert(NewPoint(3, 4))

	assert.True(t, s.Contains(NewPoint(3, 4)))
	assert.False(t, s.Contains(NewPoint(4, 3)))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains(NewPoint(3, 4)))
}

func TestPointSetCloneIsIndependent(t *testing.T) {
	s := NewPointSet()
	s.Insert(NewPoint(1, 1))

	c := s.Clone()
	c.Insert(NewPoint(2, 2))

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}

func TestTransformSetCollapsesDuplicates(t *testing.T) {
	s := NewPointSet()
	s.Insert(NewPoint(1, 5))
	s.Insert(NewPoint(2, 7))

	// Project everything onto a single point
	squash := Transform{Alpha: 0, Beta: 0, DX: 3, DY: 3}
	out := TransformSet(s, squash)

	assert.Equal(t, 1, out.Len())
	assert.True(t, out.Contains(NewPoint(3, 3)))
	// Source set is untouched
	assert.Equal(t, 2, s.Len())
}

func TestTransformSetAppliesToEveryMember(t *testing.T) {
	s := NewPointSet()
	s.Insert(NewPoint(1, 0))
	s.Insert(NewPoint(0, 1))

	shift := Transform{Alpha: 1, DX: 10, DY: -2}
	out := TransformSet(s, shift)

	assert.Equal(t, 2, out.Len())
	assert.True(t, out.Contains(NewPoint(11, -2)))
	assert.True(t, out.Contains(NewPoint(10, -1)))
}
