// Package session holds the measurement session state: the gathering-mode
// state machine, the point buffers, the committed regression lines, and the
// current screen-to-real-world transform.
package session

import (
	"errors"
	"log"
	"math/rand"
	"sync"

	"screen-measure/internal/calibrate"
	"screen-measure/internal/line"
	"screen-measure/pkg/geometry"
)

// Mode selects which buffer receives newly clicked points.
type Mode int

const (
	// ModeNormal routes clicks into the gathering set for line fitting.
	ModeNormal Mode = iota
	// ModeMeasurement routes clicks into the calibration buffer.
	ModeMeasurement
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeMeasurement:
		return "Measurement"
	default:
		return "Unknown"
	}
}

// EventType identifies session events the UI subscribes to.
type EventType int

const (
	EventPointsChanged EventType = iota
	EventLinesChanged
	EventModeChanged
	EventTransformChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// ErrBufferFull is returned when a calibration click arrives on a full
// calibration buffer.
var ErrBufferFull = errors.New("session: calibration buffer already holds both points")

// ErrTooFewPoints is returned when a line commit is requested with fewer
// than two gathered points.
var ErrTooFewPoints = errors.New("session: need at least 2 points to commit a line")

// State is the engine's root object. It is driven synchronously by the UI
// once per frame; the mutex exists because the export reply poller reads
// it from its own goroutine.
type State struct {
	mu sync.RWMutex

	mode      Mode
	gathered  *geometry.PointSet
	measured  *calibrate.Buffer
	entries   []calibrate.Entry
	lines     []*line.Segment
	transform geometry.Transform

	rng *rand.Rand

	listeners map[EventType][]EventListener
}

// NewState creates a session in Normal mode with an identity transform.
func NewState() *State {
	s := &State{
		mode:      ModeNormal,
		gathered:  geometry.NewPointSet(),
		measured:  calibrate.NewBuffer(calibrate.PairCount),
		entries:   make([]calibrate.Entry, calibrate.PairCount),
		transform: geometry.Identity(),
		rng:       rand.New(rand.NewSource(rand.Int63())),
		listeners: make(map[EventType][]EventListener),
	}
	for i := range s.entries {
		s.entries[i] = calibrate.NewEntry(0, 0)
	}
	return s
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Mode returns the current gathering mode.
func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// AddPoint routes a clicked point into the buffer selected by the current
// mode. In Measurement mode a click beyond the second is rejected with
// ErrBufferFull.
func (s *State) AddPoint(p geometry.Point) error {
	s.mu.Lock()
	var err error
	switch s.mode {
	case ModeNormal:
		s.gathered.Insert(p)
	case ModeMeasurement:
		if !s.measured.Push(p) {
			err = ErrBufferFull
		}
	}
	s.mu.Unlock()

	if err == nil {
		s.Emit(EventPointsChanged, p)
	}
	return err
}

// VisiblePoints returns the points of whichever buffer the current mode
// renders: the gathering set in Normal mode, the calibration buffer in
// Measurement mode.
func (s *State) VisiblePoints() []geometry.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch s.mode {
	case ModeMeasurement:
		return s.measured.Points()
	default:
		return s.gathered.Points()
	}
}

// GatheredLen returns the size of the gathering set.
func (s *State) GatheredLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gathered.Len()
}

// CommitLine fits a segment through the gathered points and clears the
// gathering set. With fewer than two points it returns ErrTooFewPoints and
// leaves the set untouched.
func (s *State) CommitLine() (*line.Segment, error) {
	s.mu.Lock()
	if s.gathered.Len() < 2 {
		s.mu.Unlock()
		return nil, ErrTooFewPoints
	}
	seg, err := line.New(s.gathered, s.rng)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := seg.Refit(s.transform); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.lines = append(s.lines, seg)
	s.gathered.Clear()
	s.mu.Unlock()

	s.Emit(EventLinesChanged, seg)
	s.Emit(EventPointsChanged, nil)
	return seg, nil
}

// Lines returns the committed segments, oldest first.
func (s *State) Lines() []*line.Segment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*line.Segment, len(s.lines))
	copy(out, s.lines)
	return out
}

// RemoveLine dismisses the i-th segment.
func (s *State) RemoveLine(i int) {
	s.mu.Lock()
	if i < 0 || i >= len(s.lines) {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.mu.Unlock()

	s.Emit(EventLinesChanged, nil)
}

// RefitAll re-derives every segment's fitted line against the current
// transform. Called once per evaluation cycle. A segment whose raw set was
// corrupted below two points propagates ErrInsufficientPoints.
func (s *State) RefitAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seg := range s.lines {
		if err := seg.Refit(s.transform); err != nil {
			return err
		}
	}
	return nil
}

// BeginCalibration enters Measurement mode and resets the calibration
// buffer for a fresh attempt.
func (s *State) BeginCalibration() {
	s.mu.Lock()
	s.mode = ModeMeasurement
	s.measured.Clear()
	s.mu.Unlock()

	s.Emit(EventModeChanged, ModeMeasurement)
	s.Emit(EventPointsChanged, nil)
}

// Entry returns the real-world text entry for calibration point i.
func (s *State) Entry(i int) calibrate.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[i]
}

// SetEntry stores the real-world text entry for calibration point i.
func (s *State) SetEntry(i int, e calibrate.Entry) {
	s.mu.Lock()
	s.entries[i] = e
	s.mu.Unlock()
}

// MeasuredLen returns the number of captured calibration points.
func (s *State) MeasuredLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.measured.Len()
}

// MeasuredAt returns the i-th captured calibration point.
func (s *State) MeasuredAt(i int) geometry.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.measured.At(i)
}

// Calibrate parses the real-world entries, estimates the transform from the
// two captured correspondences, and on success replaces the current
// transform wholesale and returns to Normal mode. A singular system leaves
// the prior transform unchanged. Non-numeric entry text aborts the process.
func (s *State) Calibrate() (geometry.Transform, error) {
	s.mu.Lock()
	worlds := make([]geometry.Point, 0, calibrate.PairCount)
	for i := 0; i < calibrate.PairCount && i < s.measured.Len(); i++ {
		w, err := s.entries[i].Parse()
		if err != nil {
			s.mu.Unlock()
			log.Fatalf("calibration input: %v", err)
		}
		worlds = append(worlds, w)
	}

	t, err := calibrate.SolveBuffers(s.measured, worlds)
	if err != nil {
		s.mu.Unlock()
		return s.Transform(), err
	}

	s.transform = t
	s.mode = ModeNormal
	s.mu.Unlock()

	log.Printf("calibrated: alpha=%g beta=%g dx=%g dy=%g (scale=%g angle=%grad)",
		t.Alpha, t.Beta, t.DX, t.DY, t.Scale(), t.Angle())
	s.Emit(EventTransformChanged, t)
	s.Emit(EventModeChanged, ModeNormal)
	return t, nil
}

// ResetTransform restores the identity transform.
func (s *State) ResetTransform() {
	s.mu.Lock()
	s.transform = geometry.Identity()
	s.mu.Unlock()

	s.Emit(EventTransformChanged, geometry.Identity())
}

// Transform returns the current transform.
func (s *State) Transform() geometry.Transform {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transform
}
