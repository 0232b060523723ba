package panels

import (
	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"screen-measure/internal/session"
)

// LinesPanel lists the committed line equations, one row per segment with
// its color swatch and a dismiss button.
type LinesPanel struct {
	state     *session.State
	container fyne.CanvasObject

	list *fyne.Container
}

// NewLinesPanel creates the line-equations panel.
func NewLinesPanel(state *session.State) *LinesPanel {
	lp := &LinesPanel{
		state: state,
		list:  container.NewVBox(),
	}

	lp.container = container.NewBorder(
		widget.NewLabel("Line equations:"),
		nil, nil, nil,
		container.NewVScroll(lp.list),
	)

	lp.Reload()
	return lp
}

// Container returns the panel container.
func (lp *LinesPanel) Container() fyne.CanvasObject {
	return lp.container
}

// Reload rebuilds the equation list from session state.
func (lp *LinesPanel) Reload() {
	lp.list.Objects = nil
	for i, seg := range lp.state.Lines() {
		idx := i

		swatch := fynecanvas.NewRectangle(seg.Color.RGBA())
		swatch.SetMinSize(fyne.NewSize(40, 16))

		dismiss := widget.NewButton("X", func() {
			lp.state.RemoveLine(idx)
		})

		row := container.NewHBox(
			dismiss,
			swatch,
			widget.NewLabel(seg.Equation()),
		)
		lp.list.Add(row)
	}
	lp.list.Refresh()
}
