package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
	"github.com/alnah/go-img2pdf/internal/mapping"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil is success", err: nil, want: ExitSuccess},
		{name: "unknown error is general", err: errors.New("boom"), want: ExitGeneral},

		{name: "decode failure", err: img2pdf.ErrDecodeImage, want: ExitConvert},
		{name: "empty content area", err: img2pdf.ErrContentAreaEmpty, want: ExitConvert},

		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission denied", err: os.ErrPermission, want: ExitIO},
		{name: "no images", err: img2pdf.ErrNoImages, want: ExitIO},
		{name: "write failure", err: img2pdf.ErrWritePDF, want: ExitIO},
		{name: "mapping read failure", err: mapping.ErrReadMapping, want: ExitIO},
		{name: "output create failure", err: ErrCreateOutput, want: ExitIO},
		{name: "merge failure", err: ErrMergePDF, want: ExitIO},
		{name: "decrypt failure", err: ErrDecryptPDF, want: ExitIO},

		{name: "no command", err: ErrNoCommand, want: ExitUsage},
		{name: "unknown command", err: ErrUnknownCommand, want: ExitUsage},
		{name: "invalid flags", err: ErrInvalidFlags, want: ExitUsage},
		{name: "missing args", err: ErrMissingArgs, want: ExitUsage},
		{name: "missing password", err: ErrMissingPassword, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse failure", err: config.ErrConfigParse, want: ExitUsage},
		{name: "malformed mapping", err: mapping.ErrMalformedLine, want: ExitUsage},
		{name: "duplicate mapping key", err: mapping.ErrDuplicateKey, want: ExitUsage},
		{name: "invalid page size", err: img2pdf.ErrInvalidPageSize, want: ExitUsage},
		{name: "invalid margin", err: img2pdf.ErrInvalidMargin, want: ExitUsage},
		{name: "invalid rotation", err: img2pdf.ErrInvalidRotation, want: ExitUsage},
		{name: "invalid scaling mode", err: img2pdf.ErrInvalidScalingMode, want: ExitUsage},
		{name: "invalid alignment", err: img2pdf.ErrInvalidAlignment, want: ExitUsage},
		{name: "invalid dpi", err: img2pdf.ErrInvalidDPI, want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("converting page 3: %w", img2pdf.ErrDecodeImage)
	if got := exitCodeFor(wrapped); got != ExitConvert {
		t.Errorf("exitCodeFor(wrapped decode error) = %d, want %d", got, ExitConvert)
	}

	doubleWrapped := fmt.Errorf("run failed: %w", fmt.Errorf("loading config: %w", config.ErrConfigNotFound))
	if got := exitCodeFor(doubleWrapped); got != ExitUsage {
		t.Errorf("exitCodeFor(double wrapped config error) = %d, want %d", got, ExitUsage)
	}
}
