package atlas

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// Source is a decoded input image ready for packing.
type Source struct {
	// Name is the file stem: the base name with its extension
	// removed.
	Name string
	// Image holds the decoded pixels converted to RGBA.
	Image *image.RGBA
}

// LoadSource reads and decodes one image file. The frame name is the
// file stem, so "sprites/hero.png" packs as "hero".
func LoadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	img, err := decodeImage(path, data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return &Source{Name: stem(path), Image: toRGBA(img)}, nil
}

// decodeImage picks a decoder for the file. TGA carries no magic bytes,
// so it is dispatched by extension instead of content sniffing.
func decodeImage(path string, data []byte) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// LoadSources loads every path in argument order. Two files sharing a
// stem cannot both name a frame, so duplicates fail here before any
// packing starts.
func LoadSources(paths []string) ([]*Source, error) {
	sources := make([]*Source, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		src, err := LoadSource(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[src.Name]; dup {
			return nil, fmt.Errorf("%w: %q from both %s and %s", ErrDuplicateName, src.Name, prev, path)
		}
		seen[src.Name] = path
		sources = append(sources, src)
	}
	return sources, nil
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// toRGBA converts a decoded image to RGBA without resampling.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
