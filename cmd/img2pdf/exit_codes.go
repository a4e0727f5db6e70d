package main

import (
	"errors"
	"os"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
	"github.com/alnah/go-img2pdf/internal/mapping"
)

// Exit codes for the img2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, mappings, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitConvert = 4 // Decode or layout failure on a specific image
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Per-image conversion errors (exit 4)
	if errors.Is(err, img2pdf.ErrDecodeImage) ||
		errors.Is(err, img2pdf.ErrContentAreaEmpty) {
		return ExitConvert
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, img2pdf.ErrNoImages) ||
		errors.Is(err, img2pdf.ErrWritePDF) ||
		errors.Is(err, mapping.ErrReadMapping) ||
		errors.Is(err, ErrCreateOutput) ||
		errors.Is(err, ErrMergePDF) ||
		errors.Is(err, ErrDecryptPDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrMissingArgs) ||
		errors.Is(err, ErrMissingPassword) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, mapping.ErrMalformedLine) ||
		errors.Is(err, mapping.ErrDuplicateKey) ||
		errors.Is(err, img2pdf.ErrInvalidPageSize) ||
		errors.Is(err, img2pdf.ErrInvalidMargin) ||
		errors.Is(err, img2pdf.ErrInvalidRotation) ||
		errors.Is(err, img2pdf.ErrInvalidScalingMode) ||
		errors.Is(err, img2pdf.ErrInvalidAlignment) ||
		errors.Is(err, img2pdf.ErrInvalidDPI) {
		return ExitUsage
	}

	return ExitGeneral
}
