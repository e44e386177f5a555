package render

import (
	"bytes"
	"testing"

	"github.com/bstardust/exifgps/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestMapsURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=40.5,-79.25", MapsURL(40.5, -79.25))
	assert.Equal(t, "https://www.google.com/maps?q=0,0", MapsURL(0, 0))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Location: 33.859167°S, 151.200833°E", Location(-33.859167, 151.200833))
	assert.Equal(t, "Location: 40.446111°N, 79.982222°W", Location(40.446111, -79.982222))
}

func TestWriteConsole(t *testing.T) {
	record := &metadata.Record{
		Latitude:  ptr(40.5),
		Longitude: ptr(-79.25),
		Altitude:  ptr(-12.34),
		Timestamp: ptr("2023:04:01 05:03:09"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteConsole(&buf, record))

	want := "GPS Information\n" +
		"Location: 40.500000°N, 79.250000°W\n" +
		"Google Maps Link: https://www.google.com/maps?q=40.5,-79.25\n" +
		"Altitude: -12.3 meters\n" +
		"GPS Timestamp: 2023:04:01 05:03:09\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteConsoleWithoutCoordinates(t *testing.T) {
	record := &metadata.Record{Altitude: ptr(100.0)}

	var buf bytes.Buffer
	require.NoError(t, WriteConsole(&buf, record))

	assert.Equal(t, "GPS Information\nNo GPS Coordinates found in the image\nAltitude: 100.0 meters\n", buf.String())
}

func TestLines(t *testing.T) {
	assert.Empty(t, Lines(&metadata.Record{}))

	lines := Lines(&metadata.Record{Timestamp: ptr("05:03:09")})
	assert.Equal(t, []string{"GPS Timestamp: 05:03:09"}, lines)

	lines = Lines(&metadata.Record{Latitude: ptr(1.0), Longitude: ptr(2.0)})
	assert.Equal(t, []string{
		"Location: 1.000000°N, 2.000000°E",
		"Google Maps Link: https://www.google.com/maps?q=1,2",
	}, lines)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &metadata.Record{Altitude: ptr(1.5)}))

	assert.JSONEq(t, `{"altitude": 1.5}`, buf.String())
}
