package atlas

import "fmt"

// Config controls how a Packer lays out frames.
type Config struct {
	// MaxWidth and MaxHeight bound the atlas in pixels. The exported
	// atlas is cut down to the extent actually used.
	MaxWidth  int
	MaxHeight int
	// BorderPadding reserves this many transparent pixels on every
	// side of each frame.
	BorderPadding int
	// Trim strips fully transparent rows and columns from the edges
	// of each source image before packing.
	Trim bool
	// AllowRotation requests 90-degree rotation of frames to improve
	// fit. The skyline placer does not rotate, so NewPacker forces
	// this to false.
	AllowRotation bool
}

// DefaultConfig returns the packer defaults: a 1024x1024 atlas with
// no padding and no trimming.
func DefaultConfig() Config {
	return Config{
		MaxWidth:  1024,
		MaxHeight: 1024,
	}
}

// Validate checks that the configuration describes a packable atlas.
func (c Config) Validate() error {
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return fmt.Errorf("%w: atlas bounds %dx%d", ErrInvalidConfig, c.MaxWidth, c.MaxHeight)
	}
	if c.BorderPadding < 0 {
		return fmt.Errorf("%w: negative border padding %d", ErrInvalidConfig, c.BorderPadding)
	}
	return nil
}
