package atlas

import "errors"

// Packing and assembly errors.
var (
	ErrInvalidConfig    = errors.New("invalid packer configuration")
	ErrInvalidImageSize = errors.New("invalid image dimensions")
	ErrDuplicateName    = errors.New("duplicate frame name")
	ErrOutOfSpace       = errors.New("atlas out of space")
	ErrEmptyAtlas       = errors.New("no frames packed")
	ErrFrameOutOfBounds = errors.New("frame outside atlas bounds")
	ErrInvalidManifest  = errors.New("invalid manifest")
)
