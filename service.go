package img2pdf

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
)

// JPEG quality bounds for re-encoded images and composited pages.
const (
	MinJPEGQuality     = 1
	MaxJPEGQuality     = 100
	DefaultJPEGQuality = 90
)

// ProgressFunc receives (current, total) after each completed item. It is a
// side-channel observer: it runs on the conversion goroutine and must not
// block; panics inside it are recovered and ignored.
type ProgressFunc func(current, total int)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	progress    ProgressFunc
	jpegQuality int
}

// WithProgress installs a progress sink invoked once per completed image.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Service) {
		s.cfg.progress = fn
	}
}

// WithJPEGQuality sets the quality used when images or pages are re-encoded
// as JPEG. Panics if q is out of range (programmer error, similar to
// time.NewTicker).
func WithJPEGQuality(q int) Option {
	if q < MinJPEGQuality || q > MaxJPEGQuality {
		panic("img2pdf: WithJPEGQuality value must be between 1 and 100")
	}
	return func(s *Service) {
		s.cfg.jpegQuality = q
	}
}

// Input contains conversion parameters for one run.
type Input struct {
	Sources   []string   // ordered image paths, one page each (required)
	Output    io.Writer  // destination PDF stream (required)
	Config    *Config    // conversion defaults (nil = DefaultConfig)
	Overrides *Overrides // per-image overrides (optional)
}

// Service converts ordered image lists into paginated PDF documents.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{cfg: serviceConfig{jpegQuality: DefaultJPEGQuality}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert lays out and writes one page per source image, strictly in order.
// Configuration problems are reported before any page is written. A per-item
// failure aborts the run: in streaming mode the pages already completed are
// still emitted, in in-memory mode the whole document is discarded. The
// context is only observed between items.
func (s *Service) Convert(ctx context.Context, input Input) error {
	cfg := input.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if input.Output == nil {
		return ErrNilOutput
	}
	total := len(input.Sources)
	if total == 0 {
		return ErrNoImages
	}

	var writer pageWriter
	if cfg.Streaming {
		writer = newStreamWriter(input.Output, s.cfg.jpegQuality)
	} else {
		writer = newMemoryWriter(input.Output, cfg.DPI, s.cfg.jpegQuality)
	}

	for i, path := range input.Sources {
		if err := ctx.Err(); err != nil {
			return s.abort(writer, cfg.Streaming, err)
		}

		name := filepath.Base(path)
		rotation := input.Overrides.RotationFor(name, Rotate0)

		// Streaming passes undisturbed JPEG/PNG bytes straight through;
		// everything else needs the pixels.
		needPixels := !cfg.Streaming || cfg.AutoRotate || rotation != Rotate0

		src, err := decodeSource(path, cfg.AutoRotate, needPixels)
		if err != nil {
			return s.abort(writer, cfg.Streaming, err)
		}

		plan, err := planLayout(name, src.widthPx, src.heightPx, cfg, input.Overrides)
		if err != nil {
			return s.abort(writer, cfg.Streaming, err)
		}

		if err := writer.WritePage(plan, src); err != nil {
			return s.abort(writer, cfg.Streaming, err)
		}
		src.release()

		s.reportProgress(i+1, total)
	}

	return writer.Close()
}

// abort ends the run after a per-item failure. The streaming writer finalizes
// the pages already written; the in-memory writer's buffered pages are simply
// dropped.
func (s *Service) abort(writer pageWriter, streaming bool, err error) error {
	if streaming {
		if closeErr := writer.Close(); closeErr != nil {
			return fmt.Errorf("%w (and finalizing partial document: %v)", err, closeErr)
		}
	}
	return err
}

// reportProgress notifies the sink, shielding the run from sink failures.
func (s *Service) reportProgress(current, total int) {
	if s.cfg.progress == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	s.cfg.progress(current, total)
}
