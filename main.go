// Package main provides the entry point for the Screen Measure application.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"screen-measure/internal/export"
	"screen-measure/internal/session"
	"screen-measure/internal/version"
	"screen-measure/ui/mainwindow"
	"screen-measure/ui/prefs"
)

const appTitle = "Screen Measure"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s %s", appTitle, version.String())

	fyneApp := app.NewWithID("io.screenmeasure.app")

	state := session.NewState()
	appPrefs := prefs.Load()

	outDir := appPrefs.String(prefs.KeyOutputDir)
	exporter := export.NewWorker(outDir)

	win := mainwindow.New(fyneApp, state, appPrefs, exporter)
	win.SetTitle(appTitle)

	// An image path on the command line overrides the restored one
	if len(os.Args) > 1 {
		if err := win.LoadImage(os.Args[1]); err != nil {
			log.Printf("Failed to load image %s: %v", os.Args[1], err)
		}
	}

	win.Resize(fyne.NewSize(1280, 800))
	win.ShowAndRun()

	exporter.Close()
}
