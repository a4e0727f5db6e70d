// Package config loads CLI configuration files for go-img2pdf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-img2pdf/internal/fileutil"
	"github.com/alnah/go-img2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds file-based defaults for conversion runs. Zero values mean
// "unset": the CLI falls back to the library defaults, and flags override
// everything. Unknown fields are rejected.
type Config struct {
	Page   PageConfig   `yaml:"page"`
	Layout LayoutConfig `yaml:"layout"`
	Images ImagesConfig `yaml:"images"`
	Output OutputConfig `yaml:"output"`
	Maps   MapsConfig   `yaml:"maps"`
}

// PageConfig defines default page geometry.
type PageConfig struct {
	Size   string `yaml:"size"`   // named size or WIDTHxHEIGHT in mm
	Margin string `yaml:"margin"` // 1, 2 or 4 mm values ('x' or ',' separated)
	DPI    int    `yaml:"dpi"`    // mm->pixel conversion factor
}

// LayoutConfig defines default placement options.
type LayoutConfig struct {
	Scaling    string `yaml:"scaling"`    // fit, fill, stretch, original
	AlignH     string `yaml:"alignH"`     // left, center, right
	AlignV     string `yaml:"alignV"`     // top, center, bottom
	AutoOrient bool   `yaml:"autoOrient"` // match page orientation to image
}

// ImagesConfig defines input handling options.
type ImagesConfig struct {
	AutoRotate bool `yaml:"autoRotate"` // apply EXIF orientation
	Sort       bool `yaml:"sort"`       // sort input list alphabetically
}

// OutputConfig defines output options.
type OutputConfig struct {
	Streaming   bool `yaml:"streaming"`   // constant-memory writing
	JPEGQuality int  `yaml:"jpegQuality"` // re-encode quality (1-100)
}

// MapsConfig points at per-image override mapping sources (CSV path or
// inline "key:value,key:value" string).
type MapsConfig struct {
	Sizes     string `yaml:"sizes"`
	Margins   string `yaml:"margins"`
	Rotations string `yaml:"rotations"`
}

// DefaultConfig returns a neutral configuration with everything unset.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-img2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-img2pdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
