package s3client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", DetectContentType("a/B.JPG"))
	assert.Equal(t, "image/tiff", DetectContentType("scan.tif"))
	assert.Equal(t, "application/json", DetectContentType("report.json"))
	assert.Equal(t, "application/octet-stream", DetectContentType("noext"))
}

func TestIsImageFile(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.tiff", "d.dng", "e.heic", "f.png"} {
		assert.True(t, IsImageFile(name), name)
	}
	for _, name := range []string{"a.mp4", "b.json", "c", "d.txt"} {
		assert.False(t, IsImageFile(name), name)
	}
}
