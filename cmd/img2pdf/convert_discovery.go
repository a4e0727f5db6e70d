package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-img2pdf/internal/fileutil"
)

// discoverImages resolves the input argument into an ordered list of image
// paths. The input may be a single file, a comma-separated list of files, or
// a directory (scanned non-recursively for supported image extensions).
func discoverImages(input string, sortList bool) ([]string, error) {
	info, err := os.Stat(input)
	if err == nil && info.IsDir() {
		return discoverDirectory(input)
	}

	var files []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, err := os.Stat(part); err != nil {
			return nil, fmt.Errorf("input %q: %w", part, err)
		}
		files = append(files, part)
	}
	if sortList {
		sort.Strings(files)
	}
	return files, nil
}

// discoverDirectory lists the supported images directly inside dir.
// os.ReadDir returns entries sorted by filename, so directory input is
// always deterministic; the sort flag exists for comma-list input.
func discoverDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if fileutil.IsImageFile(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
