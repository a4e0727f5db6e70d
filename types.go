package img2pdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Named page sizes in millimeters (width, height), portrait.
var namedPageSizes = map[string]PageSize{
	"A4":     {WidthMM: 210, HeightMM: 297},
	"LETTER": {WidthMM: 216, HeightMM: 279},
	"A3":     {WidthMM: 297, HeightMM: 420},
	"A5":     {WidthMM: 148, HeightMM: 210},
}

// PageSize is a resolved page size in millimeters.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// Landscape reports whether the page is wider than tall.
func (p PageSize) Landscape() bool {
	return p.WidthMM > p.HeightMM
}

// Swapped returns the page size with width and height exchanged.
func (p PageSize) Swapped() PageSize {
	return PageSize{WidthMM: p.HeightMM, HeightMM: p.WidthMM}
}

// ParsePageSize resolves a named size (A4, LETTER, A3, A5, case-insensitive)
// or an explicit "WIDTHxHEIGHT" in millimeters.
func ParsePageSize(s string) (PageSize, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if v == "" {
		return PageSize{}, fmt.Errorf("%w: empty", ErrInvalidPageSize)
	}
	if ps, ok := namedPageSizes[v]; ok {
		return ps, nil
	}
	parts := strings.Split(v, "X")
	if len(parts) != 2 {
		return PageSize{}, fmt.Errorf("%w: %q", ErrInvalidPageSize, s)
	}
	w, errW := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errW != nil || errH != nil {
		return PageSize{}, fmt.Errorf("%w: bad numbers in %q", ErrInvalidPageSize, s)
	}
	ps := PageSize{WidthMM: w, HeightMM: h}
	if err := ps.Validate(); err != nil {
		return PageSize{}, err
	}
	return ps, nil
}

// Validate checks that both dimensions are positive and finite.
func (p PageSize) Validate() error {
	if !isFinitePositive(p.WidthMM) || !isFinitePositive(p.HeightMM) {
		return fmt.Errorf("%w: %gx%g mm", ErrInvalidPageSize, p.WidthMM, p.HeightMM)
	}
	return nil
}

// Margins are per-side page margins in millimeters.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargins returns margins with the same value on all sides.
func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Right: mm, Bottom: mm, Left: mm}
}

// ParseMargins parses 1, 2 or 4 millimeter values separated by 'x' or ','.
// One value applies to all sides; two values are vertical,horizontal; four
// values are top,right,bottom,left.
func ParseMargins(s string) (Margins, error) {
	raw := strings.TrimSpace(s)
	var parts []string
	switch {
	case strings.ContainsAny(raw, "xX"):
		parts = strings.FieldsFunc(raw, func(r rune) bool { return r == 'x' || r == 'X' })
	case strings.Contains(raw, ","):
		parts = strings.Split(raw, ",")
	default:
		parts = []string{raw}
	}
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Margins{}, fmt.Errorf("%w: %q", ErrInvalidMargin, p)
		}
		vals = append(vals, v)
	}
	var m Margins
	switch len(vals) {
	case 1:
		m = UniformMargins(vals[0])
	case 2:
		m = Margins{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}
	case 4:
		m = Margins{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
	default:
		return Margins{}, fmt.Errorf("%w: need 1, 2 or 4 values, got %d", ErrInvalidMargin, len(vals))
	}
	if err := m.Validate(); err != nil {
		return Margins{}, err
	}
	return m, nil
}

// Validate checks that no margin is negative.
func (m Margins) Validate() error {
	for _, v := range []float64{m.Top, m.Right, m.Bottom, m.Left} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %g mm", ErrInvalidMargin, v)
		}
	}
	return nil
}

// Rotation is a clockwise rotation applied to the source image before
// placement.
type Rotation int

// Valid rotations.
const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// ParseRotation parses integer degrees. Any multiple of 90 is accepted and
// normalized into [0, 360).
func ParseRotation(s string) (Rotation, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRotation, s)
	}
	if v%90 != 0 {
		return 0, fmt.Errorf("%w: %d (must be a multiple of 90)", ErrInvalidRotation, v)
	}
	v %= 360
	if v < 0 {
		v += 360
	}
	return Rotation(v), nil
}

// Validate checks that the rotation is one of 0, 90, 180, 270.
func (r Rotation) Validate() error {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidRotation, int(r))
}

// swapsDimensions reports whether the rotation exchanges width and height.
func (r Rotation) swapsDimensions() bool {
	return r == Rotate90 || r == Rotate270
}

// ScalingMode selects how an image is sized within the content area.
type ScalingMode string

// Scaling modes.
const (
	ScaleFit      ScalingMode = "fit"
	ScaleFill     ScalingMode = "fill"
	ScaleStretch  ScalingMode = "stretch"
	ScaleOriginal ScalingMode = "original"
)

// ParseScalingMode parses a scaling mode name (case-insensitive).
func ParseScalingMode(s string) (ScalingMode, error) {
	m := ScalingMode(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks that the mode is one of the fixed set.
func (m ScalingMode) Validate() error {
	switch m {
	case ScaleFit, ScaleFill, ScaleStretch, ScaleOriginal:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidScalingMode, string(m))
}

// HorizontalAlign positions the placed image inside the content area.
type HorizontalAlign string

// VerticalAlign positions the placed image inside the content area.
type VerticalAlign string

// Alignment values.
const (
	AlignLeft   HorizontalAlign = "left"
	AlignCenter HorizontalAlign = "center"
	AlignRight  HorizontalAlign = "right"

	AlignTop    VerticalAlign = "top"
	AlignMiddle VerticalAlign = "center"
	AlignBottom VerticalAlign = "bottom"
)

// ParseHorizontalAlign parses a horizontal alignment name (case-insensitive).
func ParseHorizontalAlign(s string) (HorizontalAlign, error) {
	a := HorizontalAlign(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return a, nil
	}
	return "", fmt.Errorf("%w: horizontal %q", ErrInvalidAlignment, s)
}

// ParseVerticalAlign parses a vertical alignment name (case-insensitive).
func ParseVerticalAlign(s string) (VerticalAlign, error) {
	a := VerticalAlign(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AlignTop, AlignMiddle, AlignBottom:
		return a, nil
	}
	return "", fmt.Errorf("%w: vertical %q", ErrInvalidAlignment, s)
}

// DPI bounds. The upper bound guards against pixel-page allocations that
// cannot succeed.
const (
	MinDPI     = 1
	MaxDPI     = 2400
	DefaultDPI = 300
)

// DefaultMarginMM is the default margin applied to all sides.
const DefaultMarginMM = 10.0

// Config holds process-wide conversion defaults. It is constructed once,
// validated eagerly, and treated as read-only for the lifetime of a run.
type Config struct {
	PageSize   PageSize        // default page size
	Margins    Margins         // default per-side margins
	DPI        int             // mm->pixel conversion factor
	Scaling    ScalingMode     // default scaling mode
	AlignH     HorizontalAlign // horizontal placement in content area
	AlignV     VerticalAlign   // vertical placement in content area
	AutoRotate bool            // apply EXIF orientation before layout
	AutoOrient bool            // choose page orientation per image
	Streaming  bool            // constant-memory page writing
}

// DefaultConfig returns the conversion defaults: A4, 10mm margins, 300 DPI,
// fit scaling, centered placement, in-memory writing.
func DefaultConfig() *Config {
	return &Config{
		PageSize: namedPageSizes["A4"],
		Margins:  UniformMargins(DefaultMarginMM),
		DPI:      DefaultDPI,
		Scaling:  ScaleFit,
		AlignH:   AlignCenter,
		AlignV:   AlignMiddle,
	}
}

// Validate checks every field eagerly, before any image is processed.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if err := c.PageSize.Validate(); err != nil {
		return err
	}
	if err := c.Margins.Validate(); err != nil {
		return err
	}
	if c.DPI < MinDPI || c.DPI > MaxDPI {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidDPI, c.DPI, MinDPI, MaxDPI)
	}
	if err := c.Scaling.Validate(); err != nil {
		return err
	}
	if _, err := ParseHorizontalAlign(string(c.AlignH)); err != nil {
		return err
	}
	if _, err := ParseVerticalAlign(string(c.AlignV)); err != nil {
		return err
	}
	return nil
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
