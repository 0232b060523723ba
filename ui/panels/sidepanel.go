// Package panels provides UI panels for the application.
package panels

import (
	"screen-measure/internal/session"
	"screen-measure/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *session.State
	canvas    *canvas.ImageCanvas
	container *container.AppTabs

	pointsPanel      *PointsPanel
	linesPanel       *LinesPanel
	calibrationPanel *CalibrationPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *session.State, cvs *canvas.ImageCanvas) *SidePanel {
	sp := &SidePanel{
		state:  state,
		canvas: cvs,
	}

	sp.pointsPanel = NewPointsPanel(state)
	sp.linesPanel = NewLinesPanel(state)
	sp.calibrationPanel = NewCalibrationPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Points", sp.pointsPanel.Container()),
		container.NewTabItem("Lines", sp.linesPanel.Container()),
		container.NewTabItem("Calibration", sp.calibrationPanel.Container()),
	)

	state.On(session.EventPointsChanged, func(interface{}) {
		sp.pointsPanel.Reload()
		sp.calibrationPanel.Reload()
	})
	state.On(session.EventLinesChanged, func(interface{}) {
		sp.linesPanel.Reload()
	})
	state.On(session.EventTransformChanged, func(interface{}) {
		sp.pointsPanel.Reload()
		sp.linesPanel.Reload()
	})
	state.On(session.EventModeChanged, func(interface{}) {
		sp.pointsPanel.Reload()
		sp.calibrationPanel.Reload()
	})

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Reload refreshes every section from session state.
func (sp *SidePanel) Reload() {
	sp.pointsPanel.Reload()
	sp.linesPanel.Reload()
	sp.calibrationPanel.Reload()
}
