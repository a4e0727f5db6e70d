package img2pdf

// selectOrientation matches the page orientation to the image. When the image
// is wider than tall but the requested page is taller than wide (or the other
// way around), the page's width and height are swapped so scaling always sees
// agreeing orientations. A square image (aspect ratio exactly 1) leaves the
// page unchanged.
func selectOrientation(imgWPx, imgHPx int, page PageSize) PageSize {
	if imgWPx <= 0 || imgHPx <= 0 {
		return page
	}
	imgRatio := float64(imgWPx) / float64(imgHPx)
	pageRatio := page.WidthMM / page.HeightMM
	if (imgRatio > 1 && pageRatio < 1) || (imgRatio < 1 && pageRatio > 1) {
		return page.Swapped()
	}
	return page
}
