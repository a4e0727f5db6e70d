package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for argument handling.
var (
	ErrNoCommand       = errors.New("no command given")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidFlags    = errors.New("invalid flags")
	ErrMissingArgs     = errors.New("missing arguments")
	ErrMissingPassword = errors.New("missing password")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds default page geometry flags.
type pageFlags struct {
	size   string
	margin string
	dpi    int
}

// layoutFlags holds placement flags.
type layoutFlags struct {
	scaling    string
	alignH     string
	alignV     string
	autoOrient bool
}

// imageFlags holds input handling flags.
type imageFlags struct {
	autoRotate bool
	sort       bool
}

// mapFlags holds per-image override mapping sources.
type mapFlags struct {
	sizes     string
	margins   string
	rotations string
}

// outputFlags holds output mode flags.
type outputFlags struct {
	streaming   bool
	progress    bool
	jpegQuality int
}

// convertFlags holds all flags for the convert command. The FlagSet is kept
// so merge logic can ask which flags were explicitly set.
type convertFlags struct {
	common commonFlags
	page   pageFlags
	layout layoutFlags
	images imageFlags
	maps   mapFlags
	output outputFlags
	fs     *flag.FlagSet
}

// parseConvertFlags parses convert command arguments. It returns the flags
// and the remaining positional arguments (input and output paths).
func parseConvertFlags(args []string, errOut io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "suppress non-error output")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "enable debug logging")

	fs.StringVarP(&f.page.size, "page-size", "P", "A4", "page size name (A4, LETTER, A3, A5) or WIDTHxHEIGHT in mm")
	fs.StringVarP(&f.page.margin, "margin", "m", "10", "default margin in mm (1, 2 or 4 values, 'x'-separated)")
	fs.IntVarP(&f.page.dpi, "dpi", "d", 300, "DPI used for mm->pixel conversion")

	fs.StringVarP(&f.layout.scaling, "scaling", "s", "fit", "scaling mode: fit, fill, stretch, original")
	fs.StringVar(&f.layout.alignH, "align-h", "center", "horizontal alignment: left, center, right")
	fs.StringVar(&f.layout.alignV, "align-v", "center", "vertical alignment: top, center, bottom")
	fs.BoolVar(&f.layout.autoOrient, "auto-orient", false, "choose page orientation per image")

	fs.BoolVar(&f.images.autoRotate, "autorotate", false, "apply EXIF orientation before placing")
	fs.BoolVar(&f.images.sort, "sort", false, "sort the input list alphabetically")

	fs.StringVar(&f.maps.sizes, "per-page-sizes", "", "per-image page sizes (CSV path or inline mapping)")
	fs.StringVar(&f.maps.margins, "per-image-margins", "", "per-image margins (CSV path or inline mapping)")
	fs.StringVar(&f.maps.rotations, "per-image-rotation", "", "per-image rotation (CSV path or inline mapping)")

	fs.BoolVar(&f.output.streaming, "streaming", false, "constant-memory PDF writing")
	fs.BoolVar(&f.output.progress, "progress", false, "report progress per image")
	fs.IntVar(&f.output.jpegQuality, "jpeg-quality", 90, "JPEG quality for re-encoded images (1-100)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	f.fs = fs
	return f, fs.Args(), nil
}
