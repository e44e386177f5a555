package s3client

import (
	"mime"
	"path/filepath"
	"strings"
)

// Common MIME types for the files this tool reads and writes
var commonMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".tiff": "image/tiff",
	".tif":  "image/tiff",
	".heic": "image/heic",
	".heif": "image/heif",
	".dng":  "image/x-adobe-dng",
	".nef":  "image/x-nikon-nef",
	".cr2":  "image/x-canon-cr2",
	".arw":  "image/x-sony-arw",
	".json": "application/json",
}

// DetectContentType determines the content type of a file based on its extension
func DetectContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	// Check our common types first
	if mimeType, ok := commonMimeTypes[ext]; ok {
		return mimeType
	}

	// Fall back to the standard library
	mimeType := mime.TypeByExtension(ext)
	if mimeType != "" {
		return mimeType
	}

	// Default to binary data
	return "application/octet-stream"
}

// IsImageFile checks if a file is an image format that can embed EXIF
func IsImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".tiff", ".tif", ".heic", ".heif",
		".dng", ".nef", ".cr2", ".arw":
		return true
	default:
		return false
	}
}
