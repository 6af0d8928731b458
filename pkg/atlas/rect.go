package atlas

import (
	"encoding/json"
	"fmt"
)

// Rect is an axis-aligned pixel rectangle with a top-left origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the first x coordinate past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first y coordinate past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the covered area in pixels.
func (r Rect) Area() int { return r.Width * r.Height }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersects reports whether r and s share at least one pixel.
func (r Rect) Intersects(s Rect) bool {
	return r.X < s.Right() && s.X < r.Right() && r.Y < s.Bottom() && s.Y < r.Bottom()
}

// In reports whether r lies entirely inside s.
func (r Rect) In(s Rect) bool {
	return r.X >= s.X && r.Y >= s.Y && r.Right() <= s.Right() && r.Bottom() <= s.Bottom()
}

// String returns the rectangle as "(x,y wxh)".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// UV holds normalized texture coordinates: (U1,V1) is the top-left
// corner and (U2,V2) the bottom-right, both in [0,1] with a top-left
// origin.
type UV struct {
	U1, V1, U2, V2 float32
}

// UV converts the rectangle to normalized coordinates within an atlas
// of the given pixel dimensions.
func (r Rect) UV(atlasWidth, atlasHeight int) UV {
	w := float32(atlasWidth)
	h := float32(atlasHeight)
	return UV{
		U1: float32(r.X) / w,
		V1: float32(r.Y) / h,
		U2: float32(r.Right()) / w,
		V2: float32(r.Bottom()) / h,
	}
}

// MarshalJSON encodes the rectangle as [x, y, width, height].
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{r.X, r.Y, r.Width, r.Height})
}

// UnmarshalJSON decodes a [x, y, width, height] array.
func (r *Rect) UnmarshalJSON(data []byte) error {
	var quad []int
	if err := json.Unmarshal(data, &quad); err != nil {
		return fmt.Errorf("%w: frame rect must be an integer array", ErrInvalidManifest)
	}
	if len(quad) != 4 {
		return fmt.Errorf("%w: frame rect has %d elements, expected 4", ErrInvalidManifest, len(quad))
	}
	r.X, r.Y, r.Width, r.Height = quad[0], quad[1], quad[2], quad[3]
	return nil
}
