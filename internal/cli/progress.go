package cli

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ScanProgressReporter renders a progress bar while the deps scan walks
// files. The bar writes to stderr so the module list on stdout stays
// clean.
type ScanProgressReporter struct {
	quiet        bool
	bar          *progressbar.ProgressBar
	startTime    time.Time
	totalFiles   int
	scannedFiles int
}

// NewScanProgressReporter creates a new scan progress reporter.
func NewScanProgressReporter(quiet bool) *ScanProgressReporter {
	return &ScanProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (r *ScanProgressReporter) OnScanStart(totalFiles int) {
	if r.quiet {
		return
	}
	r.totalFiles = totalFiles
	r.scannedFiles = 0

	r.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Scanning imports"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

func (r *ScanProgressReporter) OnFileScanned() {
	if r.quiet || r.bar == nil {
		return
	}
	r.scannedFiles++
	r.bar.Add(1)
}

func (r *ScanProgressReporter) OnScanComplete(moduleCount int) {
	if r.quiet {
		return
	}
	log.Printf("Scanned %d files in %s, found %d external modules",
		r.scannedFiles, time.Since(r.startTime).Round(time.Millisecond), moduleCount)
}
