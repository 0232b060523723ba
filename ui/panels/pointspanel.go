package panels

import (
	"fmt"

	"screen-measure/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PointsPanel lists the currently buffered points, shown through the
// current transform so the operator reads real-world coordinates.
type PointsPanel struct {
	state     *session.State
	container fyne.CanvasObject

	modeLabel *widget.Label
	list      *fyne.Container
}

// NewPointsPanel creates the buffered-points panel.
func NewPointsPanel(state *session.State) *PointsPanel {
	pp := &PointsPanel{
		state:     state,
		modeLabel: widget.NewLabel(""),
		list:      container.NewVBox(),
	}

	pp.container = container.NewBorder(
		container.NewVBox(
			widget.NewLabel("Buffered points:"),
			pp.modeLabel,
		),
		nil, nil, nil,
		container.NewVScroll(pp.list),
	)

	pp.Reload()
	return pp
}

// Container returns the panel container.
func (pp *PointsPanel) Container() fyne.CanvasObject {
	return pp.container
}

// Reload rebuilds the point list from session state.
func (pp *PointsPanel) Reload() {
	pp.modeLabel.SetText("Mode: " + pp.state.Mode().String())

	t := pp.state.Transform()
	pp.list.Objects = nil
	for _, p := range pp.state.VisiblePoints() {
		rw := t.Apply(p)
		pp.list.Add(widget.NewLabel(fmt.Sprintf("(%g, %g)", rw.X, rw.Y)))
	}
	pp.list.Refresh()
}
