package atlas

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Atlas is the assembled output: the composited RGBA sheet and the
// frames it contains.
type Atlas struct {
	Image  *image.RGBA
	Frames []Frame
}

// Export composites every packed frame into a single RGBA image. The
// atlas is sized to the tight extent of the committed footprints, so
// free space to the right of and below the content is not emitted.
// Pixels covered by no frame stay fully transparent.
func (p *Packer) Export() (*Atlas, error) {
	if len(p.frames) == 0 {
		return nil, ErrEmptyAtlas
	}

	w, h := p.extent()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	bounds := Rect{Width: w, Height: h}

	for _, f := range p.frames {
		// A frame escaping the computed extent means the placer
		// broke its own bookkeeping.
		if !f.Rect.In(bounds) {
			return nil, fmt.Errorf("%w: frame %q at %v", ErrFrameOutOfBounds, f.Name, f.Rect)
		}
		min := f.img.Bounds().Min
		sp := image.Pt(min.X+f.Source.X, min.Y+f.Source.Y)
		r := image.Rect(f.Rect.X, f.Rect.Y, f.Rect.Right(), f.Rect.Bottom())
		draw.Draw(dst, r, f.img, sp, draw.Src)
	}

	return &Atlas{Image: dst, Frames: p.Frames()}, nil
}

// Manifest builds the frame lookup table for the atlas.
func (a *Atlas) Manifest() *Manifest {
	m := &Manifest{Frames: make(map[string]Rect, len(a.Frames))}
	for _, f := range a.Frames {
		m.Frames[f.Name] = f.Rect
	}
	return m
}

// EncodePNG writes the atlas image as PNG.
func (a *Atlas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, a.Image); err != nil {
		return fmt.Errorf("encoding atlas PNG: %w", err)
	}
	return nil
}
