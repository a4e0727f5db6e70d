package img2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors, detected before any page is written.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidMargin      = errors.New("invalid margin")
	ErrInvalidRotation    = errors.New("invalid rotation")
	ErrInvalidScalingMode = errors.New("invalid scaling mode")
	ErrInvalidAlignment   = errors.New("invalid alignment")
	ErrInvalidDPI         = errors.New("invalid dpi")

	// Input errors.
	ErrNilConfig = errors.New("config cannot be nil")
	ErrNoImages  = errors.New("no images to convert")
	ErrNilOutput = errors.New("output writer cannot be nil")

	// Per-item errors; the run aborts at the failing item.
	ErrContentAreaEmpty = errors.New("margins leave no content area")
	ErrDecodeImage      = errors.New("failed to decode image")

	// Output errors, always fatal.
	ErrWritePDF = errors.New("failed to write PDF")
)
