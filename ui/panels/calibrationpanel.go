package panels

import (
	"errors"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"screen-measure/internal/calibrate"
	"screen-measure/internal/session"
)

// CalibrationPanel drives the two-point transform calibration: enter
// measurement mode, capture two screen points, type their real-world
// coordinates, commit.
type CalibrationPanel struct {
	state     *session.State
	container fyne.CanvasObject

	status  *widget.Label
	rows    *fyne.Container
	entries [calibrate.PairCount][2]*widget.Entry
	screens [calibrate.PairCount]*widget.Label
}

// NewCalibrationPanel creates the calibration panel.
func NewCalibrationPanel(state *session.State) *CalibrationPanel {
	cp := &CalibrationPanel{
		state:  state,
		status: widget.NewLabel("Measure two points on the screen to calibrate the transform"),
	}
	cp.status.Wrapping = fyne.TextWrapWord

	enterBtn := widget.NewButton("Go to calibration mode", func() {
		cp.state.BeginCalibration()
		cp.status.SetText("Click two points with the secondary button")
	})
	commitBtn := widget.NewButton("Calibrate", cp.onCalibrate)
	resetBtn := widget.NewButton("Reset transform", func() {
		cp.state.ResetTransform()
		cp.status.SetText("Transform reset to identity")
	})

	cp.rows = container.NewVBox()
	for i := 0; i < calibrate.PairCount; i++ {
		idx := i
		cp.screens[i] = widget.NewLabel("x: -  y: -")

		ex := widget.NewEntry()
		ey := widget.NewEntry()
		entry := cp.state.Entry(i)
		ex.SetText(entry.X)
		ey.SetText(entry.Y)
		ex.OnChanged = func(text string) {
			e := cp.state.Entry(idx)
			e.X = text
			cp.state.SetEntry(idx, e)
		}
		ey.OnChanged = func(text string) {
			e := cp.state.Entry(idx)
			e.Y = text
			cp.state.SetEntry(idx, e)
		}
		cp.entries[i] = [2]*widget.Entry{ex, ey}

		cp.rows.Add(container.NewVBox(
			widget.NewLabel(fmt.Sprintf("Point %d (screen):", i+1)),
			cp.screens[i],
			container.NewGridWithColumns(2, ex, ey),
		))
	}

	cp.container = container.NewVBox(
		cp.status,
		container.NewHBox(enterBtn, commitBtn, resetBtn),
		cp.rows,
	)

	cp.Reload()
	return cp
}

// Container returns the panel container.
func (cp *CalibrationPanel) Container() fyne.CanvasObject {
	return cp.container
}

// onCalibrate commits the calibration. Bad real-world text aborts the
// process; the degenerate-points case is recoverable and keeps the prior
// transform.
func (cp *CalibrationPanel) onCalibrate() {
	t, err := cp.state.Calibrate()
	if err != nil {
		if errors.Is(err, calibrate.ErrDegenerateCalibration) {
			cp.status.SetText("Calibration failed: the two screen points coincide")
		} else {
			cp.status.SetText("Calibration failed: " + err.Error())
		}
		log.Printf("calibration: %v", err)
		return
	}
	cp.status.SetText(fmt.Sprintf("Calibrated: scale=%.4f angle=%.4f rad", t.Scale(), t.Angle()))
}

// Reload refreshes the captured screen coordinates from session state.
func (cp *CalibrationPanel) Reload() {
	for i := 0; i < calibrate.PairCount; i++ {
		if i < cp.state.MeasuredLen() {
			p := cp.state.MeasuredAt(i)
			cp.screens[i].SetText(fmt.Sprintf("x: %g  y: %g", p.X, p.Y))
		} else {
			cp.screens[i].SetText("x: -  y: -")
		}
	}
}
