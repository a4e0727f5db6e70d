// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions is the set of file extensions accepted as image sources.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tiff": true,
	".tif":  true,
	".bmp":  true,
	".webp": true,
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a
// name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsImageFile reports whether the path has a supported image extension.
func IsImageFile(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}
