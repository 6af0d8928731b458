// Package atlas packs images into a single texture atlas using
// skyline bottom-left bin packing, and emits the composited sheet
// together with a JSON manifest mapping frame names to pixel
// rectangles.
package atlas

import (
	"fmt"
	"image"
)

// Frame is one packed image: where it landed in the atlas and which
// part of the source it carries.
type Frame struct {
	// Name identifies the frame in the manifest.
	Name string
	// Rect is the frame's pixel rectangle in the atlas, excluding
	// any border padding.
	Rect Rect
	// Source is the region of the original image the frame holds:
	// the whole image, or the opaque extent when trimming removed
	// transparent edges.
	Source Rect
	// Trimmed reports whether trimming shrank the source region.
	Trimmed bool

	img image.Image
}

// Packer places images into an atlas one at a time. Placement is
// deterministic: packing the same images in the same order with the
// same configuration always produces the same layout.
type Packer struct {
	cfg    Config
	sky    *skyline
	frames []Frame
	names  map[string]struct{}
	used   int // total area of committed padded footprints
}

// NewPacker returns a Packer for the given configuration.
func NewPacker(cfg Config) (*Packer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.AllowRotation = false
	return &Packer{
		cfg:   cfg,
		sky:   newSkyline(cfg.MaxWidth, cfg.MaxHeight),
		names: make(map[string]struct{}),
	}, nil
}

// Config returns the configuration the packer was built with.
func (p *Packer) Config() Config { return p.cfg }

// Pack places one image and returns its frame. The pixels are copied
// out later by Export; Pack only records the placement. Fails with
// ErrOutOfSpace when no position can hold the image within the atlas
// bounds, leaving the packer unchanged.
func (p *Packer) Pack(name string, img image.Image) (Frame, error) {
	if _, dup := p.names[name]; dup {
		return Frame{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return Frame{}, fmt.Errorf("%w: %q is %dx%d", ErrInvalidImageSize, name, bounds.Dx(), bounds.Dy())
	}

	src := Rect{Width: bounds.Dx(), Height: bounds.Dy()}
	trimmed := false
	if p.cfg.Trim {
		src = trimRect(img)
		trimmed = src.Width != bounds.Dx() || src.Height != bounds.Dy()
	}

	// The footprint reserves the padding border on all sides; the
	// frame rect excludes it again below.
	pad := p.cfg.BorderPadding
	fw := src.Width + 2*pad
	fh := src.Height + 2*pad

	i, y, ok := p.sky.bestFit(fw, fh)
	if !ok {
		return Frame{}, fmt.Errorf("%w: %q needs %dx%d", ErrOutOfSpace, name, fw, fh)
	}
	x := p.sky.segments[i].x
	p.sky.add(i, y, fw, fh)
	p.used += fw * fh

	frame := Frame{
		Name:    name,
		Rect:    Rect{X: x + pad, Y: y + pad, Width: src.Width, Height: src.Height},
		Source:  src,
		Trimmed: trimmed,
		img:     img,
	}
	p.frames = append(p.frames, frame)
	p.names[name] = struct{}{}
	return frame, nil
}

// Frames returns the packed frames in insertion order.
func (p *Packer) Frames() []Frame {
	out := make([]Frame, len(p.frames))
	copy(out, p.frames)
	return out
}

// Len returns the number of packed frames.
func (p *Packer) Len() int { return len(p.frames) }

// UsedArea returns the total area in pixels of all committed
// footprints, padding included.
func (p *Packer) UsedArea() int { return p.used }

// Utilization returns the fraction of the exported extent occupied
// by frame footprints, in [0, 1]. An empty packer reports zero.
func (p *Packer) Utilization() float64 {
	w, h := p.extent()
	if w == 0 || h == 0 {
		return 0
	}
	return float64(p.used) / float64(w*h)
}

// extent returns the tight atlas dimensions covering every committed
// footprint, padding included.
func (p *Packer) extent() (w, h int) {
	pad := p.cfg.BorderPadding
	for _, f := range p.frames {
		if r := f.Rect.Right() + pad; r > w {
			w = r
		}
		if b := f.Rect.Bottom() + pad; b > h {
			h = b
		}
	}
	return w, h
}
