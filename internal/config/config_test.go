package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `page:
  size: LETTER
  margin: "15"
  dpi: 150
layout:
  scaling: fill
  alignH: left
  alignV: top
  autoOrient: true
images:
  autoRotate: true
  sort: true
output:
  streaming: true
  jpegQuality: 80
maps:
  rotations: "scan2.jpg:90"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Page.Size != "LETTER" {
		t.Errorf("Page.Size = %q, want LETTER", cfg.Page.Size)
	}
	if cfg.Page.Margin != "15" {
		t.Errorf("Page.Margin = %q, want 15", cfg.Page.Margin)
	}
	if cfg.Page.DPI != 150 {
		t.Errorf("Page.DPI = %d, want 150", cfg.Page.DPI)
	}
	if cfg.Layout.Scaling != "fill" || cfg.Layout.AlignH != "left" || cfg.Layout.AlignV != "top" {
		t.Errorf("Layout = %+v", cfg.Layout)
	}
	if !cfg.Layout.AutoOrient || !cfg.Images.AutoRotate || !cfg.Images.Sort {
		t.Error("boolean fields not loaded")
	}
	if !cfg.Output.Streaming || cfg.Output.JPEGQuality != 80 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Maps.Rotations != "scan2.jpg:90" {
		t.Errorf("Maps.Rotations = %q", cfg.Maps.Rotations)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, "page:\n  dpi: 600\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Page.DPI != 600 {
		t.Errorf("Page.DPI = %d, want 600", cfg.Page.DPI)
	}
	if cfg.Page.Size != "" || cfg.Output.Streaming {
		t.Error("unset fields must stay zero")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name       string
		nameOrPath string
		wantErr    error
	}{
		{name: "empty name", nameOrPath: "", wantErr: ErrEmptyConfigName},
		{name: "missing file path", nameOrPath: "./does-not-exist.yaml", wantErr: ErrConfigNotFound},
		{name: "missing name", nameOrPath: "no-such-config-name", wantErr: ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(tt.nameOrPath); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.nameOrPath, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "page:\n  sise: A4\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig error = %v, want ErrConfigParse", err)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := writeConfig(t, "page: [unclosed\n")

	if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("LoadConfig error = %v, want ErrConfigParse", err)
	}
}

func TestDefaultConfigIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	if *cfg != (Config{}) {
		t.Errorf("DefaultConfig() = %+v, want all zero values", cfg)
	}
}
