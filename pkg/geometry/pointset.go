package geometry

// PointSet is a set of points with exact-equality membership. Two clicks at
// literally the same pixel coalesce; anything else stays distinct. The zero
// value is ready to use.
type PointSet struct {
	members map[pointKey]Point
}

// NewPointSet creates an empty point set.
func NewPointSet() *PointSet {
	return &PointSet{members: make(map[pointKey]Point)}
}

// Insert adds a point to the set. It returns true if the point was newly
// added; inserting an already-present point is a no-op.
func (s *PointSet) Insert(p Point) bool {
	if s.members == nil {
		s.members = make(map[pointKey]Point)
	}
	k := p.key()
	if _, ok := s.members[k]; ok {
		return false
	}
	s.members[k] = p
	return true
}

// Contains reports whether the point is a member of the set.
func (s *PointSet) Contains(p Point) bool {
	_, ok := s.members[p.key()]
	return ok
}

// Len returns the number of points in the set.
func (s *PointSet) Len() int {
	return len(s.members)
}

// Points returns the members as a freshly-allocated slice. Iteration order
// is unspecified.
func (s *PointSet) Points() []Point {
	out := make([]Point, 0, len(s.members))
	for _, p := range s.members {
		out = append(out, p)
	}
	return out
}

// Clear removes all points.
func (s *PointSet) Clear() {
	s.members = make(map[pointKey]Point)
}

// Clone returns an independent copy of the set.
func (s *PointSet) Clone() *PointSet {
	out := &PointSet{members: make(map[pointKey]Point, len(s.members))}
	for k, p := range s.members {
		out.members[k] = p
	}
	return out
}

// TransformSet maps every member of the set through the transform and
// collects the results into a fresh set. Duplicates created by the mapping
// collapse; that is accepted behavior, not an error.
func TransformSet(s *PointSet, t Transform) *PointSet {
	out := NewPointSet()
	for _, p := range s.members {
		out.Insert(t.Apply(p))
	}
	return out
}
