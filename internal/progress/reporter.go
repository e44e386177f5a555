// internal/progress/reporter.go
package progress

import (
	"sync"
	"time"

	"github.com/bstardust/exifgps/internal/logger"
)

// Stats counts scanned files by outcome
type Stats struct {
	Total      int
	WithGPS    int
	WithoutGPS int
	NoExif     int
	Errors     int
}

// Processed returns the number of files handled so far
func (s Stats) Processed() int {
	return s.WithGPS + s.WithoutGPS + s.NoExif + s.Errors
}

// Reporter tracks and reports scan progress
type Reporter struct {
	mu             sync.Mutex
	stats          Stats
	startTime      time.Time
	lastUpdateTime time.Time
	updateInterval time.Duration
}

// New creates a new progress reporter
func New() *Reporter {
	return &Reporter{
		updateInterval: 2 * time.Second,
	}
}

// Start initializes the progress reporter with the total number of files
func (r *Reporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats = Stats{Total: total}
	r.startTime = time.Now()
	r.lastUpdateTime = time.Now()

	logger.Info("Scanning %d files", total)
}

// Complete marks a file whose EXIF data was read
func (r *Reporter) Complete(path string, hasGPS bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if hasGPS {
		r.stats.WithGPS++
	} else {
		r.stats.WithoutGPS++
	}
	r.updateProgress()
}

// Skip marks a file without EXIF data
func (r *Reporter) Skip(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.NoExif++
	r.updateProgress()
}

// Error marks a file as failed
func (r *Reporter) Error(path string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Errors++
	logger.Warn("Failed to process %s: %v", path, err)
	r.updateProgress()
}

// Stats returns a snapshot of the counters
func (r *Reporter) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.stats
}

// Finish completes the progress reporting
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := time.Since(r.startTime)

	logger.Info("Scan complete: %d/%d files with GPS, %d without GPS, %d without EXIF, %d errors in %s",
		r.stats.WithGPS, r.stats.Total, r.stats.WithoutGPS, r.stats.NoExif, r.stats.Errors, duration.Round(time.Millisecond))
}

// updateProgress logs progress at most once per update interval
func (r *Reporter) updateProgress() {
	now := time.Now()
	if now.Sub(r.lastUpdateTime) < r.updateInterval {
		return
	}

	r.lastUpdateTime = now
	processed := r.stats.Processed()
	if processed == 0 || r.stats.Total == 0 {
		return
	}

	percentage := float64(processed) / float64(r.stats.Total) * 100

	// Estimate time remaining from the average so far
	timePerFile := now.Sub(r.startTime) / time.Duration(processed)
	eta := (timePerFile * time.Duration(r.stats.Total-processed)).Round(time.Second)

	logger.Info("Progress: %.1f%% (%d/%d, %d with GPS, %d errors) ETA: %s",
		percentage, processed, r.stats.Total, r.stats.WithGPS, r.stats.Errors, eta)
}
