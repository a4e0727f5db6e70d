package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file", path: file, want: true},
		{name: "missing file", path: filepath.Join(dir, "missing.txt"), want: false},
		{name: "directory is not a file", path: dir, want: false},
		{name: "empty path", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"config", false},
		{"./config.yaml", true},
		{"/etc/img2pdf/config.yaml", true},
		{`C:\configs\img2pdf.yaml`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"scan.png", true},
		{"scan.tif", true},
		{"scan.tiff", true},
		{"scan.bmp", true},
		{"scan.webp", true},
		{"/dir/with.dots/a.PNG", true},
		{"document.pdf", false},
		{"notes.txt", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.path); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
