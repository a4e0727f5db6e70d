package img2pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
)

// pageWriter turns layout plans into PDF pages. WritePage draws exactly one
// image on one page; a page is either fully drawn or not emitted at all.
// Close finalizes the document on the output stream.
type pageWriter interface {
	WritePage(plan *LayoutPlan, src *sourceImage) error
	Close() error
}

// streamWriter appends one finished page per image to a shared PDF document,
// holding at most one decoded image at a time. A mid-run failure leaves the
// pages already written intact; Close emits them.
type streamWriter struct {
	pdf     *gofpdf.Fpdf
	out     io.Writer
	quality int
	pages   int
}

func newStreamWriter(out io.Writer, jpegQuality int) *streamWriter {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &streamWriter{pdf: pdf, out: out, quality: jpegQuality}
}

func (w *streamWriter) WritePage(plan *LayoutPlan, src *sourceImage) error {
	w.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: plan.PageW, Ht: plan.PageH})

	reader, imageType, err := encodedReader(src, plan.Rotation, w.quality)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWritePDF, plan.Name, err)
	}

	name := fmt.Sprintf("img%04d", w.pages)
	opts := gofpdf.ImageOptions{ImageType: imageType, ReadDpi: false}
	w.pdf.RegisterImageOptionsReader(name, opts, reader)

	// Fill mode covers the content area and crops the overflow at draw time.
	clip := plan.Mode == ScaleFill
	if clip {
		w.pdf.ClipRect(plan.Content.X, plan.Content.Y, plan.Content.W, plan.Content.H, false)
	}
	w.pdf.ImageOptions(name, plan.Image.X, plan.Image.Y, plan.Image.W, plan.Image.H, false, opts, 0, "")
	if clip {
		w.pdf.ClipEnd()
	}

	if w.pdf.Err() {
		return fmt.Errorf("%w: %s: %v", ErrWritePDF, plan.Name, w.pdf.Error())
	}
	w.pages++
	return nil
}

func (w *streamWriter) Close() error {
	if err := w.pdf.Output(w.out); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// encodedReader returns an image stream the PDF writer can embed. Raw JPEG
// and PNG bytes pass through untouched when no rotation is pending; decoded
// pixels are rotated and re-encoded as JPEG.
func encodedReader(src *sourceImage, rotation Rotation, quality int) (io.Reader, string, error) {
	if src.raw != nil && rotation == Rotate0 {
		return bytes.NewReader(src.raw), src.imageType, nil
	}
	img := rotatePixels(src.pixels, rotation)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, "", err
	}
	return &buf, "JPG", nil
}
