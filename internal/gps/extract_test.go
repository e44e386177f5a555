package gps

import (
	"testing"

	"github.com/bstardust/exifgps/internal/exif"
	"github.com/stretchr/testify/assert"
)

type fakeContainer map[exif.Tag]exif.Value

func (f fakeContainer) Lookup(tag exif.Tag) (exif.Value, bool) {
	v, ok := f[tag]
	return v, ok
}

func rationals(rs ...exif.Rational) exif.Value {
	return exif.Value{Kind: exif.KindRational, Rationals: rs}
}

func ascii(s string) exif.Value {
	return exif.Value{Kind: exif.KindASCII, Text: s}
}

func byteValue(b byte) exif.Value {
	return exif.Value{Kind: exif.KindByte, Bytes: []byte{b}}
}

func r(n, d uint32) exif.Rational {
	return exif.Rational{Numerator: n, Denominator: d}
}

func fullCoordinates() fakeContainer {
	return fakeContainer{
		exif.GPSLatitude:     rationals(dms(40, 26, 46)...),
		exif.GPSLatitudeRef:  ascii("N"),
		exif.GPSLongitude:    rationals(dms(79, 58, 56)...),
		exif.GPSLongitudeRef: ascii("W"),
	}
}

func TestCoordinates(t *testing.T) {
	lat, lon, ok := Coordinates(fullCoordinates())
	assert.True(t, ok)
	assert.InDelta(t, 40.446111, lat, 1e-6)
	assert.InDelta(t, -79.982222, lon, 1e-6)
}

func TestCoordinatesAllOrNothing(t *testing.T) {
	for _, missing := range []exif.Tag{exif.GPSLatitude, exif.GPSLatitudeRef, exif.GPSLongitude, exif.GPSLongitudeRef} {
		t.Run(string(missing), func(t *testing.T) {
			c := fullCoordinates()
			delete(c, missing)

			lat, lon, ok := Coordinates(c)
			assert.False(t, ok)
			assert.Zero(t, lat)
			assert.Zero(t, lon)
		})
	}
}

func TestCoordinatesWrongKindIsAbsent(t *testing.T) {
	c := fullCoordinates()
	c[exif.GPSLongitudeRef] = byteValue('W')

	_, _, ok := Coordinates(c)
	assert.False(t, ok)
}

func TestCoordinatesMalformedComponents(t *testing.T) {
	c := fullCoordinates()
	c[exif.GPSLatitude] = rationals(r(40, 1), r(26, 1))

	lat, lon, ok := Coordinates(c)
	assert.True(t, ok, "malformed shape still yields a coordinate pair")
	assert.Equal(t, 0.0, lat)
	assert.InDelta(t, -79.982222, lon, 1e-6)
}

func TestAltitude(t *testing.T) {
	tests := []struct {
		name string
		c    fakeContainer
		want float64
		ok   bool
	}{
		{"no reference", fakeContainer{exif.GPSAltitude: rationals(r(1255, 10))}, 125.5, true},
		{"above sea level", fakeContainer{exif.GPSAltitude: rationals(r(1255, 10)), exif.GPSAltitudeRef: byteValue(0)}, 125.5, true},
		{"below sea level", fakeContainer{exif.GPSAltitude: rationals(r(1255, 10)), exif.GPSAltitudeRef: byteValue(1)}, -125.5, true},
		{"any nonzero reference", fakeContainer{exif.GPSAltitude: rationals(r(30, 1)), exif.GPSAltitudeRef: byteValue(7)}, -30, true},
		{"reference of wrong kind", fakeContainer{exif.GPSAltitude: rationals(r(30, 1)), exif.GPSAltitudeRef: ascii("1")}, 30, true},
		{"only first rational used", fakeContainer{exif.GPSAltitude: rationals(r(30, 1), r(99, 1))}, 30, true},
		{"missing", fakeContainer{exif.GPSAltitudeRef: byteValue(1)}, 0, false},
		{"empty", fakeContainer{exif.GPSAltitude: rationals()}, 0, false},
		{"zero denominator", fakeContainer{exif.GPSAltitude: rationals(r(30, 0))}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Altitude(tt.c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		c    fakeContainer
		want string
		ok   bool
	}{
		{"time only", fakeContainer{exif.GPSTimeStamp: rationals(dms(5, 3, 9)...)}, "05:03:09", true},
		{"with date", fakeContainer{exif.GPSTimeStamp: rationals(dms(5, 3, 9)...), exif.GPSDateStamp: ascii("2023:04:01")}, "2023:04:01 05:03:09", true},
		{"truncates", fakeContainer{exif.GPSTimeStamp: rationals(r(235, 10), r(599, 10), r(5999, 100))}, "23:59:59", true},
		{"date of wrong kind", fakeContainer{exif.GPSTimeStamp: rationals(dms(12, 0, 0)...), exif.GPSDateStamp: byteValue(1)}, "12:00:00", true},
		{"two components", fakeContainer{exif.GPSTimeStamp: rationals(r(5, 1), r(3, 1))}, "", false},
		{"zero denominator", fakeContainer{exif.GPSTimeStamp: rationals(r(5, 1), r(3, 0), r(9, 1))}, "", false},
		{"date without time", fakeContainer{exif.GPSDateStamp: ascii("2023:04:01")}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Timestamp(tt.c)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
