package atlas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// Manifest maps frame names to their pixel rectangles in the atlas.
// The JSON form is {"frames": {"<name>": [x, y, width, height]}} with
// names in lexicographic order.
type Manifest struct {
	Frames map[string]Rect `json:"frames"`
}

// Frame looks up a frame rectangle by name.
func (m *Manifest) Frame(name string) (Rect, bool) {
	r, ok := m.Frames[name]
	return r, ok
}

// Names returns the frame names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Frames))
	for name := range m.Frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Encode writes the manifest as 2-space indented JSON with a trailing
// newline. Map keys serialize in sorted order, so the same frames
// always produce the same bytes.
func (m *Manifest) Encode(w io.Writer) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// DecodeManifest parses a manifest produced by Encode.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, ErrInvalidManifest) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Frames == nil {
		return nil, fmt.Errorf("%w: missing frames table", ErrInvalidManifest)
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()
	return DecodeManifest(f)
}
