// Package mainwindow provides the main application window.
package mainwindow

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"screen-measure/internal/capture"
	"screen-measure/internal/export"
	"screen-measure/internal/session"
	"screen-measure/internal/version"
	"screen-measure/pkg/colorutil"
	"screen-measure/pkg/geometry"
	"screen-measure/ui/canvas"
	"screen-measure/ui/panels"
	"screen-measure/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *session.State
	prefs     *prefs.Prefs
	exporter  *export.Worker
	canvas    *canvas.ImageCanvas
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	fitToWindowItem *fyne.MenuItem
}

// New creates the main window.
func New(fyneApp fyne.App, state *session.State, p *prefs.Prefs, exporter *export.Worker) *MainWindow {
	win := fyneApp.NewWindow("Screen Measure")

	mw := &MainWindow{
		Window:   win,
		app:      fyneApp,
		state:    state,
		prefs:    p,
		exporter: exporter,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupShortcuts()
	mw.setupEventHandlers()
	go mw.pollReplies()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.canvas = canvas.NewImageCanvas()
	mw.canvas.OnSecondaryClick(mw.onMarkPoint)

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.canvas)

	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		mw.canvas.Container(),
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25) // Side panel takes 25% of width

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,
	)

	mw.SetContent(content)
	mw.restoreLastImage()
}

// createToolbar creates the toolbar with zoom controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", mw.onZoomOut)
	zoomInBtn := widget.NewButton("+", mw.onZoomIn)
	fitBtn := widget.NewButton("Fit", mw.onToggleFitToWindow)
	actualBtn := widget.NewButton("1:1", mw.onActualSize)
	commitBtn := widget.NewButton("Fit Line (L)", mw.onCommitLine)
	exportBtn := widget.NewButton("Export (S)", mw.onExportAll)

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		fitBtn,
		actualBtn,
		widget.NewSeparator(),
		commitBtn,
		exportBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mw.onOpenImage),
		fyne.NewMenuItem("Capture From Camera", mw.onCaptureCamera),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export All Lines", mw.onExportAll),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	mw.fitToWindowItem = fyne.NewMenuItem("  Fit to Window", mw.onToggleFitToWindow)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.onZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.onZoomOut),
		mw.fitToWindowItem,
		fyne.NewMenuItem("Actual Size", mw.onActualSize),
	)

	measureMenu := fyne.NewMenu("Measure",
		fyne.NewMenuItem("Fit Line Through Points", mw.onCommitLine),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Calibrate Transform...", func() { mw.state.BeginCalibration() }),
		fyne.NewMenuItem("Reset Transform", func() { mw.state.ResetTransform() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, viewMenu, measureMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupShortcuts wires the keyboard contract: L commits a line, S exports
// all lines, Escape quits.
func (mw *MainWindow) setupShortcuts() {
	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyL:
			mw.onCommitLine()
		case fyne.KeyS:
			mw.onExportAll()
		case fyne.KeyEscape:
			mw.app.Quit()
		}
	})
}

// setupEventHandlers registers for session events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(session.EventPointsChanged, func(interface{}) {
		mw.refreshShapes()
	})
	mw.state.On(session.EventLinesChanged, func(interface{}) {
		mw.refreshShapes()
	})
	mw.state.On(session.EventTransformChanged, func(interface{}) {
		mw.refreshShapes()
	})
	mw.state.On(session.EventModeChanged, func(data interface{}) {
		if mode, ok := data.(session.Mode); ok {
			mw.updateStatus("Mode: " + mode.String())
		}
		mw.refreshShapes()
	})
}

// refreshShapes re-runs the per-cycle re-fit and pushes the current
// markers and segments to the canvas.
func (mw *MainWindow) refreshShapes() {
	if err := mw.state.RefitAll(); err != nil {
		log.Printf("refit: %v", err)
		mw.updateStatus("Re-fit failed: " + err.Error())
	}

	radius := mw.prefs.MarkerRadius()
	points := mw.state.VisiblePoints()
	markers := make([]canvas.Marker, 0, len(points))
	for _, p := range points {
		markers = append(markers, canvas.Marker{
			X:      float64(p.X),
			Y:      float64(p.Y),
			Radius: radius,
			Color:  colorutil.MarkerRed,
		})
	}
	mw.canvas.SetMarkers(markers)

	thickness := int(mw.prefs.LineThickness())
	lines := mw.state.Lines()
	segments := make([]canvas.SegmentShape, 0, len(lines))
	for _, seg := range lines {
		start, end := seg.Endpoints()
		segments = append(segments, canvas.SegmentShape{
			X1: float64(start.X), Y1: float64(start.Y),
			X2: float64(end.X), Y2: float64(end.Y),
			Color:     seg.Color.RGBA(),
			Thickness: thickness,
		})
	}
	mw.canvas.SetSegments(segments)
}

// onMarkPoint routes a secondary click into the session.
func (mw *MainWindow) onMarkPoint(x, y float64) {
	err := mw.state.AddPoint(geometry.NewPoint(float32(x), float32(y)))
	if errors.Is(err, session.ErrBufferFull) {
		mw.updateStatus("Calibration buffer is full; commit or restart calibration")
	}
}

// onCommitLine fits a line through the gathered points.
func (mw *MainWindow) onCommitLine() {
	seg, err := mw.state.CommitLine()
	if err != nil {
		if errors.Is(err, session.ErrTooFewPoints) {
			mw.updateStatus("Mark at least 2 points before fitting a line")
			return
		}
		mw.updateStatus("Line fit failed: " + err.Error())
		return
	}
	mw.updateStatus("Fitted " + seg.Equation())
}

// onExportAll submits one export request per committed line. Raw screen
// coordinates are written; the current transform rides along in the
// request snapshot.
func (mw *MainWindow) onExportAll() {
	lines := mw.state.Lines()
	if len(lines) == 0 {
		mw.updateStatus("No lines to export")
		return
	}
	t := mw.state.Transform()
	for i, seg := range lines {
		mw.exporter.Submit(export.Request{
			ID:        i,
			Path:      export.SegmentPath(i),
			Points:    seg.RawPoints(),
			Transform: t,
		})
	}
	mw.updateStatus(fmt.Sprintf("Export of %d line(s) queued", len(lines)))
}

// pollReplies drains the export reply channel and surfaces outcomes in the
// status bar. Replies may arrive in a later cycle than their requests.
func (mw *MainWindow) pollReplies() {
	for reply := range mw.exporter.Replies() {
		if reply.Err != nil {
			mw.updateStatus(fmt.Sprintf("Export of %s failed: %v", reply.Path, reply.Err))
			continue
		}
		mw.updateStatus("Exported " + reply.Path)
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// LoadImage loads the given image file into the canvas.
func (mw *MainWindow) LoadImage(path string) error {
	src := capture.NewFileSource(path)
	img, err := src.Capture()
	if err != nil {
		return err
	}
	mw.canvas.SetImage(img)
	mw.prefs.SetString(prefs.KeyLastImage, path)
	if err := mw.prefs.Save(); err != nil {
		log.Printf("preferences: %v", err)
	}
	mw.SetTitle("Screen Measure - " + filepath.Base(path))
	mw.updateStatus("Loaded " + path)
	return nil
}

// restoreLastImage reloads the previously used image, if any.
func (mw *MainWindow) restoreLastImage() {
	path := mw.prefs.String(prefs.KeyLastImage)
	if path == "" {
		return
	}
	if err := mw.LoadImage(path); err != nil {
		log.Printf("restore image %s: %v", path, err)
	}
}

// Menu action handlers

func (mw *MainWindow) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		if err := mw.LoadImage(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tiff", ".tif"}))
	fd.Show()
}

func (mw *MainWindow) onCaptureCamera() {
	src := capture.NewCameraSource(0)
	img, err := src.Capture()
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.canvas.SetImage(img)
	mw.SetTitle("Screen Measure - camera")
	mw.updateStatus("Captured camera frame")
}

func (mw *MainWindow) onZoomIn() {
	mw.disableFitToWindow()
	mw.canvas.ZoomIn()
}

func (mw *MainWindow) onZoomOut() {
	mw.disableFitToWindow()
	mw.canvas.ZoomOut()
}

func (mw *MainWindow) onToggleFitToWindow() {
	enabled := !mw.canvas.GetFitToWindow()
	mw.canvas.SetFitToWindow(enabled)

	if enabled {
		mw.fitToWindowItem.Label = "✓ Fit to Window"
	} else {
		mw.fitToWindowItem.Label = "  Fit to Window"
	}
}

func (mw *MainWindow) onActualSize() {
	mw.disableFitToWindow()
	mw.canvas.SetZoom(1.0)
}

func (mw *MainWindow) disableFitToWindow() {
	if mw.canvas.GetFitToWindow() {
		mw.canvas.SetFitToWindow(false)
		mw.fitToWindowItem.Label = "  Fit to Window"
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Screen Measure",
		"Screen Measure "+version.String()+"\n\n"+
			"Mark points on a captured image, fit lines through them,\n"+
			"and calibrate a pixel-to-real-world transform.",
		mw.Window)
}
