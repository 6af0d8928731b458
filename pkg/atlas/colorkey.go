package atlas

import "image"

// IsMagentaKey checks whether an RGB triple matches the magenta
// transparency key. A small tolerance absorbs codec rounding
// (R >= 250, G <= 10, B >= 250).
func IsMagentaKey(r, g, b uint8) bool {
	return r >= 250 && g <= 10 && b >= 250
}

// ApplyMagentaKey makes magenta pixels fully transparent in place.
// RGB is zeroed on keyed pixels so they cannot bleed into neighbors
// when the atlas is sampled with filtering.
func ApplyMagentaKey(img *image.RGBA) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := img.PixOffset(x, y)
			r, g, b := img.Pix[i], img.Pix[i+1], img.Pix[i+2]
			if IsMagentaKey(r, g, b) {
				img.Pix[i] = 0
				img.Pix[i+1] = 0
				img.Pix[i+2] = 0
				img.Pix[i+3] = 0
			}
		}
	}
}
