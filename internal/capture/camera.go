package capture

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// CameraSource grabs a single frame from a video device, for measuring a
// live camera view instead of a stored screenshot.
type CameraSource struct {
	Device int
}

// NewCameraSource creates a source reading from the given device index.
func NewCameraSource(device int) *CameraSource {
	return &CameraSource{Device: device}
}

// Capture opens the device, reads one frame, and converts it to an
// image.Image. The device is released before returning.
func (s *CameraSource) Capture() (image.Image, error) {
	webcam, err := gocv.OpenVideoCapture(s.Device)
	if err != nil {
		return nil, fmt.Errorf("failed to open video device %d: %w", s.Device, err)
	}
	defer webcam.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	if ok := webcam.Read(&frame); !ok || frame.Empty() {
		return nil, fmt.Errorf("failed to read frame from device %d", s.Device)
	}

	img, err := frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame: %w", err)
	}
	return img, nil
}

var _ Source = (*FileSource)(nil)
var _ Source = (*CameraSource)(nil)
