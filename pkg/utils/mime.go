package utils

import "strings"

// mimeTypeToExtension maps the video MIME types this service works with
// to their typical file extensions.
var mimeTypeToExtension = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
	"video/mpeg":      ".mpeg",
	"video/ogg":       ".ogv",
	"video/avi":       ".avi",
	"video/x-flv":     ".flv",
	"video/x-ms-wmv":  ".wmv",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "video/mp4; codecs=avc1")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return ".bin"
}
