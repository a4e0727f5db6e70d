package img2pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// memoryWriter composites every page as a pixel image at the configured DPI
// and buffers the whole document, trading memory for simplicity. The document
// is emitted in one piece at Close; a mid-run failure discards all of it.
// Page geometry is identical to the streaming writer's: both consume the same
// layout plans.
type memoryWriter struct {
	out     io.Writer
	dpi     int
	quality int
	pages   []memoryPage
}

type memoryPage struct {
	widthPt  float64
	heightPt float64
	canvas   *image.NRGBA
}

func newMemoryWriter(out io.Writer, dpi, jpegQuality int) *memoryWriter {
	return &memoryWriter{out: out, dpi: dpi, quality: jpegQuality}
}

func (w *memoryWriter) WritePage(plan *LayoutPlan, src *sourceImage) error {
	pageW := pointsToPixels(plan.PageW, w.dpi)
	pageH := pointsToPixels(plan.PageH, w.dpi)
	canvas := imaging.New(pageW, pageH, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	img := rotatePixels(src.pixels, plan.Rotation)

	x := pointsToPixels(plan.Image.X, w.dpi)
	y := pointsToPixels(plan.Image.Y, w.dpi)
	if plan.Mode != ScaleOriginal {
		targetW := max(1, pointsToPixels(plan.Image.W, w.dpi))
		targetH := max(1, pointsToPixels(plan.Image.H, w.dpi))
		img = imaging.Resize(img, targetW, targetH, imaging.Lanczos)
	}

	if plan.Mode == ScaleFill {
		// Crop the resized image to the content rectangle, the same region
		// the streaming writer clips to.
		cx := pointsToPixels(plan.Content.X, w.dpi)
		cy := pointsToPixels(plan.Content.Y, w.dpi)
		cw := pointsToPixels(plan.Content.W, w.dpi)
		ch := pointsToPixels(plan.Content.H, w.dpi)
		img = imaging.Crop(img, image.Rect(cx-x, cy-y, cx-x+cw, cy-y+ch))
		x, y = cx, cy
	}

	w.pages = append(w.pages, memoryPage{
		widthPt:  plan.PageW,
		heightPt: plan.PageH,
		canvas:   imaging.Paste(canvas, img, image.Pt(x, y)),
	})
	return nil
}

func (w *memoryWriter) Close() error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	for i, page := range w.pages {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, page.canvas, imaging.JPEG, imaging.JPEGQuality(w.quality)); err != nil {
			return fmt.Errorf("%w: page %d: %v", ErrWritePDF, i+1, err)
		}
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: page.widthPt, Ht: page.heightPt})
		name := fmt.Sprintf("page%04d", i)
		opts := gofpdf.ImageOptions{ImageType: "JPG", ReadDpi: false}
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.ImageOptions(name, 0, 0, page.widthPt, page.heightPt, false, opts, 0, "")
		if pdf.Err() {
			return fmt.Errorf("%w: page %d: %v", ErrWritePDF, i+1, pdf.Error())
		}
	}

	if err := pdf.Output(w.out); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
