package fileinfo

import (
	"github.com/bstardust/exifgps/pkg/s3client"
)

// IsImageFile checks if a file is an image that may carry EXIF data
func IsImageFile(filename string) bool {
	return s3client.IsImageFile(filename)
}

// GetContentType returns the content type for a file
func GetContentType(filename string) string {
	return s3client.DetectContentType(filename)
}
