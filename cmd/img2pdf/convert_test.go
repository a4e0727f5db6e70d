package main

import (
	"bytes"
	"errors"
	"testing"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
)

func parseForTest(t *testing.T, args ...string) *convertFlags {
	t.Helper()
	var errOut bytes.Buffer
	flags, _, err := parseConvertFlags(args, &errOut)
	if err != nil {
		t.Fatalf("parseConvertFlags: %v", err)
	}
	return flags
}

func TestBuildSettingsDefaults(t *testing.T) {
	flags := parseForTest(t)

	settings, err := buildSettings(flags, config.DefaultConfig(), &envConfig{})
	if err != nil {
		t.Fatalf("buildSettings: %v", err)
	}

	if settings.conv.PageSize != (img2pdf.PageSize{WidthMM: 210, HeightMM: 297}) {
		t.Errorf("page size = %+v, want A4", settings.conv.PageSize)
	}
	if settings.conv.DPI != 300 {
		t.Errorf("dpi = %d, want 300", settings.conv.DPI)
	}
	if settings.conv.Scaling != img2pdf.ScaleFit {
		t.Errorf("scaling = %q, want fit", settings.conv.Scaling)
	}
	if settings.jpegQuality != 90 {
		t.Errorf("jpeg quality = %d, want 90", settings.jpegQuality)
	}
	if settings.overrides != nil {
		t.Errorf("overrides = %+v, want nil", settings.overrides)
	}
}

func TestBuildSettingsFileConfigApplies(t *testing.T) {
	flags := parseForTest(t)
	fileCfg := &config.Config{}
	fileCfg.Page.Size = "A5"
	fileCfg.Page.DPI = 150
	fileCfg.Layout.Scaling = "stretch"
	fileCfg.Output.Streaming = true

	settings, err := buildSettings(flags, fileCfg, &envConfig{})
	if err != nil {
		t.Fatalf("buildSettings: %v", err)
	}

	if settings.conv.PageSize.WidthMM != 148 {
		t.Errorf("page size = %+v, want A5", settings.conv.PageSize)
	}
	if settings.conv.DPI != 150 {
		t.Errorf("dpi = %d, want 150", settings.conv.DPI)
	}
	if settings.conv.Scaling != img2pdf.ScaleStretch {
		t.Errorf("scaling = %q, want stretch", settings.conv.Scaling)
	}
	if !settings.conv.Streaming {
		t.Error("streaming should come from the config file")
	}
}

func TestBuildSettingsEnvOverridesFile(t *testing.T) {
	flags := parseForTest(t)
	fileCfg := &config.Config{}
	fileCfg.Page.Size = "A5"
	fileCfg.Page.DPI = 150

	env := &envConfig{PageSize: "LETTER", DPI: 600}

	settings, err := buildSettings(flags, fileCfg, env)
	if err != nil {
		t.Fatalf("buildSettings: %v", err)
	}
	if settings.conv.PageSize.WidthMM != 216 {
		t.Errorf("page size = %+v, want LETTER from env", settings.conv.PageSize)
	}
	if settings.conv.DPI != 600 {
		t.Errorf("dpi = %d, want 600 from env", settings.conv.DPI)
	}
}

func TestBuildSettingsFlagsWin(t *testing.T) {
	flags := parseForTest(t, "-P", "100x200", "-d", "72", "-s", "original")
	fileCfg := &config.Config{}
	fileCfg.Page.Size = "A5"
	env := &envConfig{PageSize: "LETTER", DPI: 600}

	settings, err := buildSettings(flags, fileCfg, env)
	if err != nil {
		t.Fatalf("buildSettings: %v", err)
	}
	if settings.conv.PageSize != (img2pdf.PageSize{WidthMM: 100, HeightMM: 200}) {
		t.Errorf("page size = %+v, want 100x200 from flags", settings.conv.PageSize)
	}
	if settings.conv.DPI != 72 {
		t.Errorf("dpi = %d, want 72 from flags", settings.conv.DPI)
	}
	if settings.conv.Scaling != img2pdf.ScaleOriginal {
		t.Errorf("scaling = %q, want original from flags", settings.conv.Scaling)
	}
}

func TestBuildSettingsUnchangedFlagDefaultsDoNotOverride(t *testing.T) {
	// The flag default (A4, 300 DPI) must not clobber file config when the
	// flag was not explicitly set.
	flags := parseForTest(t)
	fileCfg := &config.Config{}
	fileCfg.Page.DPI = 150

	settings, err := buildSettings(flags, fileCfg, &envConfig{})
	if err != nil {
		t.Fatalf("buildSettings: %v", err)
	}
	if settings.conv.DPI != 150 {
		t.Errorf("dpi = %d, want 150 from file config", settings.conv.DPI)
	}
}

func TestBuildSettingsOverridesFromFlags(t *testing.T) {
	flags := parseForTest(t, "--per-image-rotation", "scan2.jpg:90")

	settings, err := buildSettings(flags, config.DefaultConfig(), &envConfig{})
	if err != nil {
		t.Fatalf("buildSettings: %v", err)
	}
	if settings.overrides == nil {
		t.Fatal("expected overrides")
	}
	if settings.overrides.Rotations["scan2.jpg"] != img2pdf.Rotate90 {
		t.Errorf("rotations = %+v", settings.overrides.Rotations)
	}
}

func TestBuildSettingsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "bad page size", args: []string{"-P", "HUGE"}, wantErr: img2pdf.ErrInvalidPageSize},
		{name: "bad margin", args: []string{"-m", "-5"}, wantErr: img2pdf.ErrInvalidMargin},
		{name: "bad scaling", args: []string{"-s", "cover"}, wantErr: img2pdf.ErrInvalidScalingMode},
		{name: "bad dpi", args: []string{"-d", "0"}, wantErr: img2pdf.ErrInvalidDPI},
		{name: "bad rotation map", args: []string{"--per-image-rotation", "a.jpg:45"}, wantErr: img2pdf.ErrInvalidRotation},
		{name: "bad jpeg quality", args: []string{"--jpeg-quality", "101"}, wantErr: ErrInvalidFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := parseForTest(t, tt.args...)
			if _, err := buildSettings(flags, config.DefaultConfig(), &envConfig{}); !errors.Is(err, tt.wantErr) {
				t.Errorf("buildSettings error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
