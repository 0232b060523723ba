// Package export writes committed line segments to disk asynchronously.
// The engine submits immutable snapshots over a FIFO request channel and a
// single worker goroutine performs the writes, reporting each outcome on a
// reply channel. No engine state is shared with the worker.
package export

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"screen-measure/pkg/geometry"
)

// DefaultDir is the output directory created on demand relative to the
// working directory.
const DefaultDir = "exported_lines"

// Request asks the worker to write one line segment. Points are the raw,
// untransformed screen coordinates; the transform rides along so the
// snapshot records which calibration was current at export time.
type Request struct {
	ID        int
	Path      string
	Points    []geometry.Point
	Transform geometry.Transform
}

// Reply reports the outcome of one request. Err is nil on success. Replies
// arrive in submission order but not necessarily in the cycle that
// submitted them.
type Reply struct {
	ID   int
	Path string
	Err  error
}

// Worker is the asynchronous export actor. Start it once; Submit requests
// from the engine side and poll Replies opportunistically.
type Worker struct {
	dir      string
	requests chan Request
	replies  chan Reply
}

// NewWorker creates a worker that writes into dir and starts its goroutine.
// The directory itself is created lazily on the first write.
func NewWorker(dir string) *Worker {
	if dir == "" {
		dir = DefaultDir
	}
	w := &Worker{
		dir:      dir,
		requests: make(chan Request, 16),
		replies:  make(chan Reply, 16),
	}
	go w.run()
	return w
}

// Dir returns the output directory.
func (w *Worker) Dir() string {
	return w.dir
}

// SegmentPath returns the logical file name for the index-th line segment.
func SegmentPath(index int) string {
	return fmt.Sprintf("line_%d.csv", index)
}

// Submit queues a request. Submission order is processing order; once
// queued a request is attempted exactly once, there is no cancellation.
func (w *Worker) Submit(req Request) {
	w.requests <- req
}

// Replies returns the reply channel for opportunistic polling.
func (w *Worker) Replies() <-chan Reply {
	return w.replies
}

// Close stops the worker after all queued requests finish. The reply
// channel is closed once the last outcome has been reported.
func (w *Worker) Close() {
	close(w.requests)
}

func (w *Worker) run() {
	defer close(w.replies)
	for req := range w.requests {
		err := w.write(req)
		if err != nil {
			log.Printf("export: line %d -> %s failed: %v", req.ID, req.Path, err)
		}
		w.replies <- Reply{ID: req.ID, Path: req.Path, Err: err}
	}
}

// write creates the output directory if needed and writes one point per
// row, "x,y", in raw screen coordinates.
func (w *Worker) write(req Request) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.dir, req.Path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	for _, p := range req.Points {
		record := []string{
			strconv.FormatFloat(float64(p.X), 'g', -1, 32),
			strconv.FormatFloat(float64(p.Y), 'g', -1, 32),
		}
		if err := cw.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
