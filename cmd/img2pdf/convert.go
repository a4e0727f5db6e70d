package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	img2pdf "github.com/alnah/go-img2pdf"
	"github.com/alnah/go-img2pdf/internal/config"
)

// Sentinel errors for the convert command.
var (
	ErrCreateOutput = errors.New("failed to create output file")
)

// runSettings is the fully merged conversion setup: library defaults, then
// config file, then environment, then explicitly set flags.
type runSettings struct {
	conv        *img2pdf.Config
	overrides   *img2pdf.Overrides
	jpegQuality int
	sortList    bool
	progress    bool
	quiet       bool
}

// runConvert orchestrates an image-to-PDF conversion run.
func runConvert(args []string, stdout, stderr *os.File) error {
	flags, positional, err := parseConvertFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, flags.common.verbose, flags.common.quiet)

	env := loadEnvConfig()
	warnUnknownEnvVars(logger)

	// Load configuration (flag wins over environment)
	fileCfg := config.DefaultConfig()
	configPath := flags.common.config
	if configPath == "" {
		configPath = env.ConfigPath
	}
	if configPath != "" {
		fileCfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	if len(positional) < 2 {
		return fmt.Errorf("%w: usage: img2pdf convert [flags] <input> <output.pdf>", ErrMissingArgs)
	}
	inputPath, outputPath := positional[0], positional[1]

	settings, err := buildSettings(flags, fileCfg, env)
	if err != nil {
		return err
	}

	sources, err := discoverImages(inputPath, settings.sortList)
	if err != nil {
		return err
	}
	logger.Debug("discovered images", "count", len(sources), "input", inputPath)

	out, err := os.Create(outputPath) // #nosec G304 -- output path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}
	defer out.Close()

	opts := []img2pdf.Option{img2pdf.WithJPEGQuality(settings.jpegQuality)}
	if settings.progress {
		opts = append(opts, img2pdf.WithProgress(func(current, total int) {
			logger.Info("page written", "page", current, "of", total)
		}))
	}

	svc := img2pdf.New(opts...)
	if err := svc.Convert(context.Background(), img2pdf.Input{
		Sources:   sources,
		Output:    out,
		Config:    settings.conv,
		Overrides: settings.overrides,
	}); err != nil {
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}

	if !settings.quiet {
		fmt.Fprintf(stdout, "Created %s (%d pages)\n", outputPath, len(sources))
	}
	return nil
}

// buildSettings merges the configuration layers into one immutable setup.
func buildSettings(flags *convertFlags, fileCfg *config.Config, env *envConfig) (*runSettings, error) {
	conv := img2pdf.DefaultConfig()

	// Layer 1: config file (zero values mean unset)
	if err := applyFileConfig(conv, fileCfg); err != nil {
		return nil, err
	}

	// Layer 2: environment
	if err := applyEnvConfig(conv, env); err != nil {
		return nil, err
	}

	// Layer 3: explicitly set flags win
	if err := applyFlagConfig(conv, flags); err != nil {
		return nil, err
	}

	if err := conv.Validate(); err != nil {
		return nil, err
	}

	overrides, err := buildOverrides(flags, fileCfg)
	if err != nil {
		return nil, err
	}

	quality := fileCfg.Output.JPEGQuality
	if quality == 0 || flags.fs.Changed("jpeg-quality") {
		quality = flags.output.jpegQuality
	}
	if quality < img2pdf.MinJPEGQuality || quality > img2pdf.MaxJPEGQuality {
		return nil, fmt.Errorf("%w: --jpeg-quality %d (must be between 1 and 100)", ErrInvalidFlags, quality)
	}

	return &runSettings{
		conv:        conv,
		overrides:   overrides,
		jpegQuality: quality,
		sortList:    fileCfg.Images.Sort || flags.images.sort,
		progress:    flags.output.progress,
		quiet:       flags.common.quiet,
	}, nil
}

func applyFileConfig(conv *img2pdf.Config, cfg *config.Config) error {
	var err error
	if cfg.Page.Size != "" {
		if conv.PageSize, err = img2pdf.ParsePageSize(cfg.Page.Size); err != nil {
			return err
		}
	}
	if cfg.Page.Margin != "" {
		if conv.Margins, err = img2pdf.ParseMargins(cfg.Page.Margin); err != nil {
			return err
		}
	}
	if cfg.Page.DPI != 0 {
		conv.DPI = cfg.Page.DPI
	}
	if cfg.Layout.Scaling != "" {
		if conv.Scaling, err = img2pdf.ParseScalingMode(cfg.Layout.Scaling); err != nil {
			return err
		}
	}
	if cfg.Layout.AlignH != "" {
		if conv.AlignH, err = img2pdf.ParseHorizontalAlign(cfg.Layout.AlignH); err != nil {
			return err
		}
	}
	if cfg.Layout.AlignV != "" {
		if conv.AlignV, err = img2pdf.ParseVerticalAlign(cfg.Layout.AlignV); err != nil {
			return err
		}
	}
	conv.AutoOrient = conv.AutoOrient || cfg.Layout.AutoOrient
	conv.AutoRotate = conv.AutoRotate || cfg.Images.AutoRotate
	conv.Streaming = conv.Streaming || cfg.Output.Streaming
	return nil
}

func applyEnvConfig(conv *img2pdf.Config, env *envConfig) error {
	var err error
	if env.PageSize != "" {
		if conv.PageSize, err = img2pdf.ParsePageSize(env.PageSize); err != nil {
			return err
		}
	}
	if env.DPI != 0 {
		conv.DPI = env.DPI
	}
	if env.Streaming {
		conv.Streaming = true
	}
	return nil
}

func applyFlagConfig(conv *img2pdf.Config, flags *convertFlags) error {
	var err error
	fs := flags.fs
	if fs.Changed("page-size") {
		if conv.PageSize, err = img2pdf.ParsePageSize(flags.page.size); err != nil {
			return err
		}
	}
	if fs.Changed("margin") {
		if conv.Margins, err = img2pdf.ParseMargins(flags.page.margin); err != nil {
			return err
		}
	}
	if fs.Changed("dpi") {
		conv.DPI = flags.page.dpi
	}
	if fs.Changed("scaling") {
		if conv.Scaling, err = img2pdf.ParseScalingMode(flags.layout.scaling); err != nil {
			return err
		}
	}
	if fs.Changed("align-h") {
		if conv.AlignH, err = img2pdf.ParseHorizontalAlign(flags.layout.alignH); err != nil {
			return err
		}
	}
	if fs.Changed("align-v") {
		if conv.AlignV, err = img2pdf.ParseVerticalAlign(flags.layout.alignV); err != nil {
			return err
		}
	}
	if fs.Changed("auto-orient") {
		conv.AutoOrient = flags.layout.autoOrient
	}
	if fs.Changed("autorotate") {
		conv.AutoRotate = flags.images.autoRotate
	}
	if fs.Changed("streaming") {
		conv.Streaming = flags.output.streaming
	}
	return nil
}

// buildOverrides constructs the per-image override tables. Flag-provided
// mapping sources win over config file ones.
func buildOverrides(flags *convertFlags, cfg *config.Config) (*img2pdf.Overrides, error) {
	sizesSrc := firstNonEmpty(flags.maps.sizes, cfg.Maps.Sizes)
	marginsSrc := firstNonEmpty(flags.maps.margins, cfg.Maps.Margins)
	rotationsSrc := firstNonEmpty(flags.maps.rotations, cfg.Maps.Rotations)

	if sizesSrc == "" && marginsSrc == "" && rotationsSrc == "" {
		return nil, nil
	}

	sizes, err := img2pdf.ParsePageSizeMap(sizesSrc)
	if err != nil {
		return nil, fmt.Errorf("per-page sizes: %w", err)
	}
	margins, err := img2pdf.ParseMarginsMap(marginsSrc)
	if err != nil {
		return nil, fmt.Errorf("per-image margins: %w", err)
	}
	rotations, err := img2pdf.ParseRotationMap(rotationsSrc)
	if err != nil {
		return nil, fmt.Errorf("per-image rotation: %w", err)
	}

	return &img2pdf.Overrides{Sizes: sizes, Margins: margins, Rotations: rotations}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
