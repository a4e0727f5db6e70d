package img2pdf

import "fmt"

// Rect is a rectangle in points with a top-left origin, matching the PDF
// writer's coordinate system.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// LayoutPlan is the resolved placement for one source image on one page.
// All lengths are in points. A plan is computed fresh per item, consumed
// immediately by the page writer, and never retained.
type LayoutPlan struct {
	Name     string      // base filename of the source image
	PageW    float64     // final page width
	PageH    float64     // final page height
	Content  Rect        // page inset by the resolved margins
	Image    Rect        // placement rectangle (pre-clip for fill mode)
	Rotation Rotation    // clockwise rotation the writer applies to pixels
	Mode     ScalingMode // effective scaling mode
}

// planLayout computes the layout plan for one image. imgWPx and imgHPx are
// the intrinsic pixel dimensions with any EXIF orientation already applied;
// the rotation override's dimension swap happens here, the pixel rotation
// itself is the writer's job.
func planLayout(name string, imgWPx, imgHPx int, cfg *Config, ov *Overrides) (*LayoutPlan, error) {
	page := ov.PageSizeFor(name, cfg.PageSize)
	margins := ov.MarginsFor(name, cfg.Margins)
	rotation := ov.RotationFor(name, Rotate0)
	if err := rotation.Validate(); err != nil {
		return nil, fmt.Errorf("%w (image %q)", err, name)
	}

	wPx, hPx := imgWPx, imgHPx
	if rotation.swapsDimensions() {
		wPx, hPx = hPx, wPx
	}

	if cfg.AutoOrient {
		page = selectOrientation(wPx, hPx, page)
	}

	pageW := MMToPoints(page.WidthMM)
	pageH := MMToPoints(page.HeightMM)

	content := Rect{
		X: MMToPoints(margins.Left),
		Y: MMToPoints(margins.Top),
		W: pageW - MMToPoints(margins.Left) - MMToPoints(margins.Right),
		H: pageH - MMToPoints(margins.Top) - MMToPoints(margins.Bottom),
	}
	if content.W <= 0 || content.H <= 0 {
		return nil, fmt.Errorf("%w: image %q on %gx%g mm page", ErrContentAreaEmpty, name, page.WidthMM, page.HeightMM)
	}

	imgW := PixelsToPoints(wPx, cfg.DPI)
	imgH := PixelsToPoints(hPx, cfg.DPI)
	placedW, placedH := placeSize(imgW, imgH, content.W, content.H, cfg.Scaling)

	var x float64
	switch cfg.AlignH {
	case AlignLeft:
		x = content.X
	case AlignRight:
		x = content.X + content.W - placedW
	default:
		x = content.X + (content.W-placedW)/2
	}

	var y float64
	switch cfg.AlignV {
	case AlignTop:
		y = content.Y
	case AlignBottom:
		y = content.Y + content.H - placedH
	default:
		y = content.Y + (content.H-placedH)/2
	}

	// Original-size images may exceed the content area but must stay inside
	// the page; pull the origin back to the near edge and let the far edge
	// overflow when the image is larger than the page itself.
	if cfg.Scaling == ScaleOriginal {
		x = clampOrigin(x, placedW, pageW)
		y = clampOrigin(y, placedH, pageH)
	}

	return &LayoutPlan{
		Name:     name,
		PageW:    pageW,
		PageH:    pageH,
		Content:  content,
		Image:    Rect{X: x, Y: y, W: placedW, H: placedH},
		Rotation: rotation,
		Mode:     cfg.Scaling,
	}, nil
}

func clampOrigin(origin, size, page float64) float64 {
	if origin+size > page {
		origin = page - size
	}
	if origin < 0 {
		origin = 0
	}
	return origin
}
