// Package img2pdf converts ordered collections of images into a single
// paginated PDF document under constant memory bounds.
//
// # Quick Start
//
// Create a service, convert a list of images, and write the result:
//
//	svc := img2pdf.New()
//
//	out, err := os.Create("scans.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer out.Close()
//
//	err = svc.Convert(ctx, img2pdf.Input{
//	    Sources: []string{"scan1.jpg", "scan2.jpg"},
//	    Output:  out,
//	    Config:  img2pdf.DefaultConfig(),
//	})
//
// Each image becomes one page. Page size, margins, scaling, alignment and
// rotation are controlled by Config and may be overridden per image via
// Overrides.
//
// # Layout Pipeline
//
// For every source image the service runs these stages:
//
//  1. Override resolution (per-image page size, margins, rotation)
//  2. Image decoding (optional EXIF auto-orientation, rotation override)
//  3. Geometry planning (auto-orientation, content area, scaling, alignment)
//  4. Page writing (one image drawn per page, then released)
//
// # Streaming
//
// With Config.Streaming enabled the writer holds at most one decoded image in
// memory at a time and appends finished pages to the document as it goes; a
// failure mid-run keeps the pages already completed. Without streaming, whole
// pixel pages are composited in memory first and the document is emitted in
// one piece at the end; a failure discards everything. Both modes produce
// identical page geometry.
//
// # Per-Image Overrides
//
// Overrides are exact-match tables keyed by base filename:
//
//	ov := &img2pdf.Overrides{
//	    Rotations: map[string]img2pdf.Rotation{"scan2.jpg": img2pdf.Rotate90},
//	}
//
// Tables can be built from CSV files or inline "key:value,key:value" strings
// with ParsePageSizeMap, ParseMarginsMap and ParseRotationMap.
//
// # Scaling Modes
//
// Four modes govern how an image fills the content area (page minus margins):
// ScaleFit (largest size that fits, aspect preserved), ScaleFill (smallest
// size that covers, overflow cropped), ScaleStretch (exact content size,
// aspect ignored) and ScaleOriginal (intrinsic size at the configured DPI).
package img2pdf
