// Package render turns GPS records into the text shown to users: the
// console report and the line list used by info panels.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/bstardust/exifgps/internal/metadata"
)

const (
	header      = "GPS Information"
	noLocation  = "No GPS Coordinates found in the image"
	mapsBaseURL = "https://www.google.com/maps?q="
	linkPrefix  = "Google Maps Link: "
)

// MapsURL returns a Google Maps link for a signed coordinate pair.
func MapsURL(lat, lon float64) string {
	return mapsBaseURL + strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}

// Location formats a coordinate pair as unsigned magnitudes with
// hemisphere letters.
func Location(lat, lon float64) string {
	ns, ew := "N", "E"
	if lat < 0 {
		ns = "S"
	}
	if lon < 0 {
		ew = "W"
	}
	return fmt.Sprintf("Location: %.6f°%s, %.6f°%s", math.Abs(lat), ns, math.Abs(lon), ew)
}

// Lines returns one line per field present in the record, in display order.
func Lines(r *metadata.Record) []string {
	var lines []string

	if r.HasCoordinates() {
		lines = append(lines,
			Location(*r.Latitude, *r.Longitude),
			linkPrefix+MapsURL(*r.Latitude, *r.Longitude),
		)
	}
	if r.Altitude != nil {
		lines = append(lines, fmt.Sprintf("Altitude: %.1f meters", *r.Altitude))
	}
	if r.Timestamp != nil {
		lines = append(lines, "GPS Timestamp: "+*r.Timestamp)
	}

	return lines
}

// WriteConsole prints the full report, including the header and the
// notice for missing coordinates.
func WriteConsole(w io.Writer, r *metadata.Record) error {
	lines := []string{header}
	if !r.HasCoordinates() {
		lines = append(lines, noLocation)
	}
	lines = append(lines, Lines(r)...)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteLines prints Lines(r), one per line.
func WriteLines(w io.Writer, r *metadata.Record) error {
	for _, line := range Lines(r) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
