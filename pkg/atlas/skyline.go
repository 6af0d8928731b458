package atlas

// segment is one horizontal run of the skyline: the span
// [x, x+width) whose tallest committed content ends at height y.
type segment struct {
	x     int
	y     int
	width int
}

// skyline tracks the top contour of every committed footprint. The
// segments are ordered by x, contiguous, and together cover exactly
// [0, width). New footprints rest their left edge on a segment start.
type skyline struct {
	width    int
	height   int
	segments []segment
}

func newSkyline(width, height int) *skyline {
	return &skyline{
		width:    width,
		height:   height,
		segments: []segment{{x: 0, y: 0, width: width}},
	}
}

// fit computes the resting height and wasted area for a w x h
// footprint whose left edge sits at the start of segments[i]. The
// resting height is the tallest segment under the footprint; the
// waste is the area trapped between the footprint's underside and the
// lower segments it spans. Reports false when the footprint overruns
// the atlas to the right or rises past the height limit.
func (s *skyline) fit(i, w, h int) (y, waste int, ok bool) {
	left := s.segments[i].x
	right := left + w
	if right > s.width {
		return 0, 0, false
	}

	for j := i; j < len(s.segments) && s.segments[j].x < right; j++ {
		if s.segments[j].y > y {
			y = s.segments[j].y
		}
	}
	if y+h > s.height {
		return 0, 0, false
	}

	for j := i; j < len(s.segments) && s.segments[j].x < right; j++ {
		seg := s.segments[j]
		overlap := min(seg.x+seg.width, right) - seg.x
		waste += (y - seg.y) * overlap
	}
	return y, waste, true
}

// bestFit scans every segment start for the position that keeps the
// skyline lowest: minimum resting height, then minimum wasted area,
// then leftmost x. Scanning in segment order makes the leftmost
// candidate win exact ties.
func (s *skyline) bestFit(w, h int) (int, int, bool) {
	bestI, bestY, bestWaste := -1, 0, 0
	for i := range s.segments {
		y, waste, ok := s.fit(i, w, h)
		if !ok {
			continue
		}
		if bestI < 0 || y < bestY || (y == bestY && waste < bestWaste) {
			bestI, bestY, bestWaste = i, y, waste
		}
	}
	if bestI < 0 {
		return 0, 0, false
	}
	return bestI, bestY, true
}

// add commits a w x h footprint resting at height y on the start of
// segments[i], then restores the skyline invariants: the new segment
// replaces the covered run and equal-height neighbors are merged.
func (s *skyline) add(i, y, w, h int) {
	left := s.segments[i].x
	right := left + w

	s.segments = append(s.segments, segment{})
	copy(s.segments[i+1:], s.segments[i:])
	s.segments[i] = segment{x: left, y: y + h, width: w}

	// Clip the covered run out of the old contour.
	for j := i + 1; j < len(s.segments); {
		cur := &s.segments[j]
		if cur.x >= right {
			break
		}
		if cur.x+cur.width > right {
			cur.width = cur.x + cur.width - right
			cur.x = right
			break
		}
		s.segments = append(s.segments[:j], s.segments[j+1:]...)
	}

	s.merge()
}

// merge joins adjacent segments of equal height.
func (s *skyline) merge() {
	for j := 0; j+1 < len(s.segments); {
		if s.segments[j].y == s.segments[j+1].y {
			s.segments[j].width += s.segments[j+1].width
			s.segments = append(s.segments[:j+1], s.segments[j+2:]...)
		} else {
			j++
		}
	}
}
