// internal/gps/convert.go
package gps

import "github.com/bstardust/exifgps/internal/exif"

// ToDecimalDegrees converts a degrees/minutes/seconds triple to signed
// decimal degrees. South and west references are negative.
//
// Anything other than exactly three components, or a component with a
// zero denominator, yields 0.
func ToDecimalDegrees(components []exif.Rational, ref string) float64 {
	if len(components) != 3 {
		return 0
	}

	var parts [3]float64
	for i, c := range components {
		v, ok := c.Float64()
		if !ok {
			return 0
		}
		parts[i] = v
	}

	decimal := parts[0] + parts[1]/60 + parts[2]/3600
	if ref == "S" || ref == "W" {
		decimal = -decimal
	}
	return decimal
}
