// Package mapping parses per-image mapping sources into ordered key/value
// pairs. A source is either a CSV-like file (one "key:value" or "key,value"
// per line, blank lines and #-comments skipped) or an inline
// "key:value,key:value" string. Keys are reduced to base filenames and must
// be unique; typed interpretation of the values is left to the caller.
package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-img2pdf/internal/fileutil"
)

// Sentinel errors for mapping parsing.
var (
	ErrMalformedLine = errors.New("malformed mapping line")
	ErrDuplicateKey  = errors.New("duplicate mapping key")
	ErrReadMapping   = errors.New("failed to read mapping file")
)

// Entry is one parsed key/value pair. Line is the 1-based source line for
// file sources, or the 1-based pair position for inline sources.
type Entry struct {
	Key   string
	Value string
	Line  int
}

// Parse reads a mapping source. If src names an existing file it is parsed
// line by line; otherwise it is treated as an inline mapping string. An empty
// source yields no entries.
func Parse(src string) ([]Entry, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	if fileutil.FileExists(src) {
		return parseFile(src)
	}
	return parseInline(src)
}

func parseFile(path string) ([]Entry, error) {
	f, err := os.Open(path) // #nosec G304 -- mapping path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMapping, err)
	}
	defer f.Close()

	var entries []Entry
	seen := make(map[string]int)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, err := splitPair(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %q", ErrMalformedLine, path, lineNo, line)
		}
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q at %s line %d (first at line %d)", ErrDuplicateKey, key, path, lineNo, first)
		}
		seen[key] = lineNo
		entries = append(entries, Entry{Key: key, Value: value, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMapping, err)
	}
	return entries, nil
}

func parseInline(src string) ([]Entry, error) {
	var entries []Entry
	seen := make(map[string]int)
	pos := 0
	for _, pair := range strings.Split(src, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		pos++
		// Inline pairs must use ':'; the ',' form is reserved for files
		// because it is also the pair separator here.
		key, value, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("%w: pair %d: %q", ErrMalformedLine, pos, pair)
		}
		key = filepath.Base(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" || key == "." || value == "" {
			return nil, fmt.Errorf("%w: pair %d: %q", ErrMalformedLine, pos, pair)
		}
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q at pair %d (first at pair %d)", ErrDuplicateKey, key, pos, first)
		}
		seen[key] = pos
		entries = append(entries, Entry{Key: key, Value: value, Line: pos})
	}
	return entries, nil
}

// splitPair splits a file line on the first ':' or, failing that, the first
// ','. Both separators are accepted in files to match common CSV exports.
func splitPair(line string) (key, value string, err error) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		key, value, found = strings.Cut(line, ",")
	}
	if !found {
		return "", "", ErrMalformedLine
	}
	key = filepath.Base(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if key == "" || key == "." || value == "" {
		return "", "", ErrMalformedLine
	}
	return key, value, nil
}
