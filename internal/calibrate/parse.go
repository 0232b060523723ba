package calibrate

import (
	"fmt"
	"strconv"
	"strings"

	"screen-measure/pkg/geometry"
)

// Entry holds the free-text real-world coordinate typed by the operator for
// one calibration point. It stays textual until the calibration commit.
type Entry struct {
	X string
	Y string
}

// NewEntry returns an entry seeded with numeric text.
func NewEntry(x, y float32) Entry {
	return Entry{
		X: strconv.FormatFloat(float64(x), 'g', -1, 32),
		Y: strconv.FormatFloat(float64(y), 'g', -1, 32),
	}
}

// Parse converts the entry to a point. Non-numeric text is an error; the
// caller treats it as fatal.
func (e Entry) Parse() (geometry.Point, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(e.X), 32)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("calibrate: bad real-world x %q: %w", e.X, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(e.Y), 32)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("calibrate: bad real-world y %q: %w", e.Y, err)
	}
	return geometry.NewPoint(float32(x), float32(y)), nil
}
