package metadata

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bstardust/exifgps/internal/exif"
	"github.com/bstardust/exifgps/internal/gps"
	"github.com/bstardust/exifgps/internal/logger"
)

// Record holds the GPS facts read from one image. Every field is
// optional; Latitude and Longitude are always set together.
type Record struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Timestamp *string  `json:"timestamp,omitempty"`
}

// HasCoordinates reports whether the record carries a position.
func (r *Record) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// IsEmpty reports whether no GPS field was found.
func (r *Record) IsEmpty() bool {
	return !r.HasCoordinates() && r.Altitude == nil && r.Timestamp == nil
}

// Extractor builds GPS records from image files
type Extractor struct {
	decoder exif.Decoder
}

// NewExtractor creates a new extractor. A nil decoder selects the default backend.
func NewExtractor(decoder exif.Decoder) *Extractor {
	if decoder == nil {
		decoder, _ = exif.NewDecoder(exif.BackendGoexif)
	}
	return &Extractor{
		decoder: decoder,
	}
}

// ExtractFromContainer assembles a record from an already parsed EXIF block.
func ExtractFromContainer(c exif.Container) *Record {
	record := &Record{}

	if lat, lon, ok := gps.Coordinates(c); ok {
		record.Latitude = &lat
		record.Longitude = &lon
	}

	if alt, ok := gps.Altitude(c); ok {
		record.Altitude = &alt
	}

	if ts, ok := gps.Timestamp(c); ok {
		record.Timestamp = &ts
	}

	return record
}

// ExtractFromReader parses r and assembles a record. The error is only
// non-nil when r holds no parseable EXIF block.
func (e *Extractor) ExtractFromReader(r io.Reader) (*Record, error) {
	c, err := e.decoder.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to decode EXIF data: %w", err)
	}
	return ExtractFromContainer(c), nil
}

// ExtractFile extracts the GPS record of the image at path. It returns
// false when the file cannot be opened or carries no EXIF data.
func (e *Extractor) ExtractFile(path string) (*Record, bool) {
	file, err := os.Open(path)
	if err != nil {
		logger.Debug("Failed to open %s: %v", path, err)
		return nil, false
	}
	defer file.Close()

	return e.extract(path, file)
}

// ExtractFromFile is ExtractFile over a filesystem, such as an opened zip archive.
func (e *Extractor) ExtractFromFile(fsys fs.FS, path string) (*Record, bool) {
	file, err := fsys.Open(path)
	if err != nil {
		logger.Debug("Failed to open %s: %v", path, err)
		return nil, false
	}
	defer file.Close()

	return e.extract(path, file)
}

func (e *Extractor) extract(path string, r io.Reader) (*Record, bool) {
	record, err := e.ExtractFromReader(r)
	if err != nil {
		logger.Debug("No EXIF metadata in %s: %v", path, err)
		return nil, false
	}
	return record, true
}

// ToMap converts the record to a map for S3 object metadata
func (r *Record) ToMap() map[string]string {
	result := make(map[string]string)

	if r.HasCoordinates() {
		result["gps-latitude"] = fmt.Sprintf("%f", *r.Latitude)
		result["gps-longitude"] = fmt.Sprintf("%f", *r.Longitude)
	}
	if r.Altitude != nil {
		result["gps-altitude"] = fmt.Sprintf("%f", *r.Altitude)
	}
	if r.Timestamp != nil {
		result["gps-timestamp"] = *r.Timestamp
	}

	return result
}
