// internal/gps/extract.go
package gps

import (
	"fmt"

	"github.com/bstardust/exifgps/internal/exif"
)

// Coordinates returns the signed latitude and longitude. All four of the
// latitude, latitude reference, longitude and longitude reference tags
// must be present; otherwise neither value is reported.
func Coordinates(c exif.Container) (lat, lon float64, ok bool) {
	latRats, ok1 := exif.ReadRationals(c, exif.GPSLatitude)
	latRef, ok2 := exif.ReadASCII(c, exif.GPSLatitudeRef)
	lonRats, ok3 := exif.ReadRationals(c, exif.GPSLongitude)
	lonRef, ok4 := exif.ReadASCII(c, exif.GPSLongitudeRef)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return 0, 0, false
	}

	return ToDecimalDegrees(latRats, latRef), ToDecimalDegrees(lonRats, lonRef), true
}

// Altitude returns the altitude in meters. A nonzero GPSAltitudeRef byte
// means below sea level; a missing reference means above.
func Altitude(c exif.Container) (float64, bool) {
	rats, ok := exif.ReadRationals(c, exif.GPSAltitude)
	if !ok || len(rats) == 0 {
		return 0, false
	}

	alt, ok := rats[0].Float64()
	if !ok {
		return 0, false
	}

	if ref, ok := exif.ReadByte(c, exif.GPSAltitudeRef); ok && ref != 0 {
		alt = -alt
	}
	return alt, true
}

// Timestamp returns "HH:MM:SS", prefixed by the GPS date stamp when one
// is stored. Each component is truncated to whole units.
func Timestamp(c exif.Container) (string, bool) {
	rats, ok := exif.ReadRationals(c, exif.GPSTimeStamp)
	if !ok || len(rats) != 3 {
		return "", false
	}

	var hms [3]uint32
	for i, r := range rats {
		v, ok := r.Float64()
		if !ok {
			return "", false
		}
		hms[i] = uint32(v)
	}

	clock := fmt.Sprintf("%02d:%02d:%02d", hms[0], hms[1], hms[2])
	if date, ok := exif.ReadASCII(c, exif.GPSDateStamp); ok {
		return date + " " + clock, true
	}
	return clock, true
}
