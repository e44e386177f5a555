package models

import (
	"time"

	"github.com/bstardust/exifgps/internal/metadata"
)

// Image is one scanned file in a report
type Image struct {
	Source  string           `json:"source"`
	Path    string           `json:"path"`
	HasExif bool             `json:"has_exif"`
	GPS     *metadata.Record `json:"gps,omitempty"`
}

// HasGPS reports whether the image carries a position
func (i Image) HasGPS() bool {
	return i.GPS != nil && i.GPS.HasCoordinates()
}

// Report is the result of a batch scan
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	Backend     string    `json:"backend"`
	Images      []Image   `json:"images"`
}

func NewReport(backend string, images []Image) *Report {
	if images == nil {
		images = []Image{}
	}
	return &Report{
		GeneratedAt: time.Now().UTC(),
		Backend:     backend,
		Images:      images,
	}
}

// CountGPS returns how many images carry a position
func (r *Report) CountGPS() int {
	n := 0
	for _, img := range r.Images {
		if img.HasGPS() {
			n++
		}
	}
	return n
}
