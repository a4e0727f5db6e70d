package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // IMG2PDF_CONFIG: config file name or path
	PageSize   string // IMG2PDF_PAGE_SIZE: named size or WIDTHxHEIGHT in mm
	DPI        int    // IMG2PDF_DPI: mm->pixel conversion factor
	Streaming  bool   // IMG2PDF_STREAMING: constant-memory writing
}

// knownEnvVars lists valid IMG2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"IMG2PDF_CONFIG":    true,
	"IMG2PDF_PAGE_SIZE": true,
	"IMG2PDF_DPI":       true,
	"IMG2PDF_STREAMING": true,
}

// loadEnvConfig reads the IMG2PDF_* environment variables. Unparsable values
// are ignored here; validation happens when the merged config is checked.
func loadEnvConfig() *envConfig {
	env := &envConfig{
		ConfigPath: os.Getenv("IMG2PDF_CONFIG"),
		PageSize:   os.Getenv("IMG2PDF_PAGE_SIZE"),
	}
	if v := os.Getenv("IMG2PDF_DPI"); v != "" {
		if dpi, err := strconv.Atoi(v); err == nil {
			env.DPI = dpi
		}
	}
	if v := os.Getenv("IMG2PDF_STREAMING"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			env.Streaming = b
		}
	}
	return env
}

// warnUnknownEnvVars logs IMG2PDF_* variables that are not recognized,
// catching typos like IMG2PDF_PAGESIZE.
func warnUnknownEnvVars(logger *log.Logger) {
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "IMG2PDF_") && !knownEnvVars[name] {
			logger.Warn("unknown environment variable", "name", name)
		}
	}
}
