package atlas

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewPacker_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{MaxWidth: 0, MaxHeight: 64}},
		{"negative height", Config{MaxWidth: 64, MaxHeight: -1}},
		{"negative padding", Config{MaxWidth: 64, MaxHeight: 64, BorderPadding: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPacker(tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewPacker_RotationForcedOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowRotation = true

	p, err := NewPacker(cfg)
	if err != nil {
		t.Fatalf("NewPacker failed: %v", err)
	}
	if p.Config().AllowRotation {
		t.Error("expected AllowRotation to be forced off")
	}
}

func TestPacker_TwoSquares(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())

	a, err := p.Pack("a", solidImage(16, 16))
	if err != nil {
		t.Fatalf("packing a failed: %v", err)
	}
	b, err := p.Pack("b", solidImage(16, 16))
	if err != nil {
		t.Fatalf("packing b failed: %v", err)
	}

	if want := (Rect{X: 0, Y: 0, Width: 16, Height: 16}); a.Rect != want {
		t.Errorf("frame a: expected %v, got %v", want, a.Rect)
	}
	if want := (Rect{X: 16, Y: 0, Width: 16, Height: 16}); b.Rect != want {
		t.Errorf("frame b: expected %v, got %v", want, b.Rect)
	}
}

func TestPacker_SinglePixel(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())

	f, err := p.Pack("dot", solidImage(1, 1))
	if err != nil {
		t.Fatalf("packing failed: %v", err)
	}
	if want := (Rect{Width: 1, Height: 1}); f.Rect != want {
		t.Errorf("expected %v, got %v", want, f.Rect)
	}
}

func TestPacker_LowestPlacementWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWidth = 32
	p := newTestPacker(t, cfg)

	mustPack(t, p, "wide", solidImage(24, 8))
	f := mustPack(t, p, "small", solidImage(8, 8))

	// The gap right of the wide frame is at ground level; stacking
	// on top would be higher.
	if want := (Rect{X: 24, Y: 0, Width: 8, Height: 8}); f.Rect != want {
		t.Errorf("expected %v, got %v", want, f.Rect)
	}
}

func TestPacker_OutOfSpace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWidth = 8
	cfg.MaxHeight = 64
	p := newTestPacker(t, cfg)

	_, err := p.Pack("big", solidImage(16, 16))
	if !errors.Is(err, ErrOutOfSpace) {
		t.Fatalf("expected ErrOutOfSpace, got %v", err)
	}

	// A failed pack must leave the packer untouched.
	if p.Len() != 0 {
		t.Errorf("expected no frames after failed pack, got %d", p.Len())
	}
	f := mustPack(t, p, "small", solidImage(8, 8))
	if want := (Rect{Width: 8, Height: 8}); f.Rect != want {
		t.Errorf("expected %v after failed pack, got %v", want, f.Rect)
	}
}

func TestPacker_PaddingCountsAgainstSpace(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWidth = 16
	cfg.MaxHeight = 16
	cfg.BorderPadding = 1
	p := newTestPacker(t, cfg)

	// 16x16 fits exactly without padding but not with a 1px border.
	_, err := p.Pack("snug", solidImage(16, 16))
	if !errors.Is(err, ErrOutOfSpace) {
		t.Errorf("expected ErrOutOfSpace with padding, got %v", err)
	}

	if _, err := p.Pack("fits", solidImage(14, 14)); err != nil {
		t.Errorf("expected 14x14 to fit with padding, got %v", err)
	}
}

func TestPacker_DuplicateName(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())

	mustPack(t, p, "hero", solidImage(4, 4))
	_, err := p.Pack("hero", solidImage(4, 4))
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
	if p.Len() != 1 {
		t.Errorf("expected 1 frame after duplicate rejection, got %d", p.Len())
	}
}

func TestPacker_EmptyImage(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())

	_, err := p.Pack("empty", image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !errors.Is(err, ErrInvalidImageSize) {
		t.Errorf("expected ErrInvalidImageSize, got %v", err)
	}
}

func TestPacker_BorderPadding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BorderPadding = 3
	p := newTestPacker(t, cfg)

	a := mustPack(t, p, "a", solidImage(10, 10))
	b := mustPack(t, p, "b", solidImage(10, 10))

	if want := (Rect{X: 3, Y: 3, Width: 10, Height: 10}); a.Rect != want {
		t.Errorf("frame a: expected %v, got %v", want, a.Rect)
	}
	// The second footprint starts where the first 16-wide one ends.
	if want := (Rect{X: 19, Y: 3, Width: 10, Height: 10}); b.Rect != want {
		t.Errorf("frame b: expected %v, got %v", want, b.Rect)
	}
}

func TestPacker_PaddedFootprintsDisjoint(t *testing.T) {
	cfg := Config{MaxWidth: 128, MaxHeight: 128, BorderPadding: 2}
	p := newTestPacker(t, cfg)

	sizes := []struct{ w, h int }{
		{30, 30}, {20, 40}, {40, 20}, {10, 10}, {25, 15},
		{15, 25}, {8, 8}, {12, 60}, {60, 12}, {5, 5},
	}
	for i, sz := range sizes {
		mustPack(t, p, string(rune('a'+i)), solidImage(sz.w, sz.h))
	}

	frames := p.Frames()
	bounds := Rect{Width: cfg.MaxWidth, Height: cfg.MaxHeight}
	padded := make([]Rect, len(frames))
	for i, f := range frames {
		padded[i] = Rect{
			X:      f.Rect.X - cfg.BorderPadding,
			Y:      f.Rect.Y - cfg.BorderPadding,
			Width:  f.Rect.Width + 2*cfg.BorderPadding,
			Height: f.Rect.Height + 2*cfg.BorderPadding,
		}
		if !padded[i].In(bounds) {
			t.Errorf("frame %q footprint %v escapes atlas bounds", f.Name, padded[i])
		}
	}
	for i := range padded {
		for j := i + 1; j < len(padded); j++ {
			if padded[i].Intersects(padded[j]) {
				t.Errorf("footprints %q %v and %q %v overlap",
					frames[i].Name, padded[i], frames[j].Name, padded[j])
			}
		}
	}
}

func TestPacker_Trim(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trim = true
	p := newTestPacker(t, cfg)

	// 12x12 sprite with an 8x8 opaque core inset by (2,2).
	f := mustPack(t, p, "hero", spriteImage(12, 12, Rect{X: 2, Y: 2, Width: 8, Height: 8}))

	if want := (Rect{Width: 8, Height: 8}); f.Rect != want {
		t.Errorf("expected trimmed frame %v, got %v", want, f.Rect)
	}
	if want := (Rect{X: 2, Y: 2, Width: 8, Height: 8}); f.Source != want {
		t.Errorf("expected source %v, got %v", want, f.Source)
	}
	if !f.Trimmed {
		t.Error("expected frame to report trimming")
	}
}

func TestPacker_TrimDisabled(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())

	f := mustPack(t, p, "hero", spriteImage(12, 12, Rect{X: 2, Y: 2, Width: 8, Height: 8}))

	if want := (Rect{Width: 12, Height: 12}); f.Rect != want {
		t.Errorf("expected untrimmed frame %v, got %v", want, f.Rect)
	}
	if f.Trimmed {
		t.Error("expected no trimming when disabled")
	}
}

func TestPacker_TrimFullyTransparent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trim = true
	p := newTestPacker(t, cfg)

	f := mustPack(t, p, "ghost", image.NewRGBA(image.Rect(0, 0, 9, 9)))

	if want := (Rect{Width: 1, Height: 1}); f.Rect != want {
		t.Errorf("expected 1x1 placeholder %v, got %v", want, f.Rect)
	}
	if !f.Trimmed {
		t.Error("expected fully transparent frame to report trimming")
	}
}

func TestPacker_Deterministic(t *testing.T) {
	sizes := []struct{ w, h int }{
		{16, 16}, {8, 24}, {24, 8}, {16, 16}, {4, 4}, {32, 12},
	}

	run := func() []Frame {
		p := newTestPacker(t, DefaultConfig())
		for i, sz := range sizes {
			mustPack(t, p, string(rune('a'+i)), solidImage(sz.w, sz.h))
		}
		return p.Frames()
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("frame counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		f, s := first[i], second[i]
		if f.Name != s.Name || f.Rect != s.Rect || f.Source != s.Source || f.Trimmed != s.Trimmed {
			t.Errorf("frame %d differs between runs: %+v vs %+v", i, f, s)
		}
	}
}

func TestPacker_Stats(t *testing.T) {
	p := newTestPacker(t, DefaultConfig())

	if p.Utilization() != 0 {
		t.Errorf("expected zero utilization when empty, got %f", p.Utilization())
	}

	mustPack(t, p, "a", solidImage(16, 16))
	mustPack(t, p, "b", solidImage(16, 16))

	if p.Len() != 2 {
		t.Errorf("expected 2 frames, got %d", p.Len())
	}
	if p.UsedArea() != 512 {
		t.Errorf("expected used area 512, got %d", p.UsedArea())
	}
	// Two flush squares fill the 32x16 extent completely.
	if p.Utilization() != 1.0 {
		t.Errorf("expected utilization 1.0, got %f", p.Utilization())
	}
}

// mustPack packs one image and fails the test on error.
func mustPack(t *testing.T, p *Packer, name string, img image.Image) Frame {
	t.Helper()
	f, err := p.Pack(name, img)
	if err != nil {
		t.Fatalf("packing %q failed: %v", name, err)
	}
	return f
}

// newTestPacker builds a Packer and fails the test on config errors.
func newTestPacker(t *testing.T, cfg Config) *Packer {
	t.Helper()
	p, err := NewPacker(cfg)
	if err != nil {
		t.Fatalf("NewPacker failed: %v", err)
	}
	return p
}

var (
	opaqueRed  = color.RGBA{R: 255, A: 255}
	faintPixel = color.RGBA{A: 1}
)

// solidImage builds a w x h image filled with opaque red.
func solidImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, opaqueRed)
		}
	}
	return img
}

// spriteImage builds a transparent w x h image with the given region
// filled opaque.
func spriteImage(w, h int, opaque Rect) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := opaque.Y; y < opaque.Bottom(); y++ {
		for x := opaque.X; x < opaque.Right(); x++ {
			img.SetRGBA(x, y, opaqueRed)
		}
	}
	return img
}
