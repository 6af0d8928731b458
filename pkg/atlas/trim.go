package atlas

import "image"

// trimRect returns the tight bounding box of pixels with non-zero
// alpha, relative to the image origin. A fully transparent image
// yields a 1x1 rect at the origin so the frame keeps a drawable
// placeholder.
func trimRect(img image.Image) Rect {
	b := img.Bounds()

	top := b.Min.Y
	for top < b.Max.Y && rowTransparent(img, top, b.Min.X, b.Max.X) {
		top++
	}
	if top == b.Max.Y {
		// Nothing opaque anywhere.
		return Rect{Width: 1, Height: 1}
	}

	bottom := b.Max.Y - 1
	for bottom > top && rowTransparent(img, bottom, b.Min.X, b.Max.X) {
		bottom--
	}

	left := b.Min.X
	for left < b.Max.X && colTransparent(img, left, top, bottom+1) {
		left++
	}

	right := b.Max.X - 1
	for right > left && colTransparent(img, right, top, bottom+1) {
		right--
	}

	return Rect{
		X:      left - b.Min.X,
		Y:      top - b.Min.Y,
		Width:  right - left + 1,
		Height: bottom - top + 1,
	}
}

// rowTransparent reports whether every pixel of row y in [x0, x1) has
// zero alpha.
func rowTransparent(img image.Image, y, x0, x1 int) bool {
	for x := x0; x < x1; x++ {
		if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
			return false
		}
	}
	return true
}

// colTransparent reports whether every pixel of column x in [y0, y1)
// has zero alpha.
func colTransparent(img image.Image, x, y0, y1 int) bool {
	for y := y0; y < y1; y++ {
		if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
			return false
		}
	}
	return true
}
