package img2pdf

import "math"

// Fixed conversion relations: 1 inch = 25.4 mm = 72 points = DPI pixels.
const (
	mmPerInch     = 25.4
	pointsPerInch = 72.0
)

// MMToPoints converts millimeters to PDF points.
// The ratio is constant (72/25.4) and independent of DPI.
func MMToPoints(mm float64) float64 {
	return mm * pointsPerInch / mmPerInch
}

// MMToPixels converts millimeters to pixels at the given DPI, rounded to the
// nearest pixel.
func MMToPixels(mm float64, dpi int) int {
	return int(math.Round(mm / mmPerInch * float64(dpi)))
}

// PixelsToPoints converts a pixel extent to points at the given DPI.
func PixelsToPoints(px int, dpi int) float64 {
	return float64(px) / float64(dpi) * pointsPerInch
}

// pointsToPixels is the inverse of PixelsToPoints, used when compositing
// pixel pages in the in-memory writer.
func pointsToPixels(pt float64, dpi int) int {
	return int(math.Round(pt / pointsPerInch * float64(dpi)))
}
