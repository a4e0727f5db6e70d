package img2pdf

// placeSize computes the placed image dimensions in points for a content area
// of contentW x contentH points. imgW and imgH are the (already rotated)
// image dimensions in points at the configured DPI.
//
// fit scales uniformly so the image never exceeds the content area; fill
// scales uniformly so the image covers it (the overflow is cropped at draw
// time, not trimmed here); stretch ignores aspect ratio; original keeps the
// image's intrinsic size.
func placeSize(imgW, imgH, contentW, contentH float64, mode ScalingMode) (placedW, placedH float64) {
	switch mode {
	case ScaleStretch:
		return contentW, contentH
	case ScaleOriginal:
		return imgW, imgH
	case ScaleFill:
		scale := max(contentW/imgW, contentH/imgH)
		return imgW * scale, imgH * scale
	default: // ScaleFit; unknown modes are rejected by Config.Validate
		scale := min(contentW/imgW, contentH/imgH)
		return imgW * scale, imgH * scale
	}
}
