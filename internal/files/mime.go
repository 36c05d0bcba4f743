package files

import (
	"path/filepath"
	"strings"
)

// defaultMimeType is returned for any extension not in the table.
const defaultMimeType = "application/octet-stream"

var mimeTypes = map[string]string{
	".html": "text/html",
	".htm":  "text/html",
	".txt":  "text/plain",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".jpg":  "image/jpg",
	".jpeg": "image/jpg",
	".png":  "image/png",
	".gif":  "image/gif",
	".mp4":  "video/mp4",
}

// MimeType derives a MIME type from the file name's extension.
func MimeType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := mimeTypes[ext]; ok {
		return t
	}
	return defaultMimeType
}
