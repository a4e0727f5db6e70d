package img2pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// sourceImage is one decoded (or raw) source, alive only for the iteration
// that produced it. Either raw or pixels is set, never both.
type sourceImage struct {
	name      string
	widthPx   int
	heightPx  int
	raw       []byte      // original encoded bytes, passthrough path only
	imageType string      // gofpdf type for raw ("JPG" or "PNG")
	pixels    image.Image // decoded pixels, all other paths
}

// release drops the image buffers so they can be collected before the next
// item is decoded.
func (s *sourceImage) release() {
	s.raw = nil
	s.pixels = nil
}

// decodeSource reads and decodes one source image. With needPixels false and
// an undisturbed JPEG or PNG, only the header is decoded and the raw bytes
// pass straight through to the PDF writer; every other case decodes the full
// image, applying EXIF orientation when autoRotate is set. The reported
// dimensions always have EXIF orientation baked in.
func decodeSource(path string, autoRotate, needPixels bool) (*sourceImage, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- image path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, path, err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, path, err)
	}

	src := &sourceImage{name: path}

	// gofpdf embeds JPEG and PNG streams directly; everything else must be
	// decoded and re-encoded anyway.
	if !needPixels && (format == "jpeg" || format == "png") {
		src.raw = data
		src.imageType = "PNG"
		if format == "jpeg" {
			src.imageType = "JPG"
		}
		src.widthPx = cfg.Width
		src.heightPx = cfg.Height
		return src, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(autoRotate))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, path, err)
	}
	src.pixels = img
	src.widthPx = img.Bounds().Dx()
	src.heightPx = img.Bounds().Dy()
	return src, nil
}

// rotatePixels rotates the image clockwise by the given rotation. The imaging
// rotate helpers turn counter-clockwise, hence the inversion.
func rotatePixels(img image.Image, r Rotation) image.Image {
	switch r {
	case Rotate90:
		return imaging.Rotate270(img)
	case Rotate180:
		return imaging.Rotate180(img)
	case Rotate270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
