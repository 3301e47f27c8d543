package richtext

import "slices"

// Section is a block of styled text: an ordered list of runs bowing to
// a single layout, anchored at a screen position. Runs may differ in
// font, scale, and payload; the layout treats their concatenation as
// one text.
//
// Section is an immutable value. Builder methods return updated copies
// and never touch the receiver, so a section can be kept as a prefix
// and extended different ways.
//
// The zero value is usable but has zero bounds; NewSection and
// EmptySection return the conventional default (origin anchor,
// unbounded, default layout).
type Section[X Payload[X]] struct {
	// ScreenPosition anchors the section. How the text hangs off the
	// anchor depends on Layout alignment.
	ScreenPosition Point
	// Bounds is the box layout may fill, in pixels.
	Bounds Size
	// Layout configures wrapping and alignment.
	Layout Layout
	// Text is the ordered list of styled runs.
	Text []Text[X]
}

// NewSection returns an empty default-payload section: origin anchor,
// unbounded, default layout, no runs.
func NewSection() Section[Extra] {
	return EmptySection[Extra]()
}

// EmptySection is NewSection for any payload type.
func EmptySection[X Payload[X]]() Section[X] {
	return Section[X]{Bounds: Unbounded()}
}

// WithScreenPosition returns a copy anchored at (x, y).
func (s Section[X]) WithScreenPosition(x, y float32) Section[X] {
	s.ScreenPosition = Point{X: x, Y: y}
	return s
}

// WithBounds returns a copy bounded by w by h pixels.
func (s Section[X]) WithBounds(w, h float32) Section[X] {
	s.Bounds = Size{W: w, H: h}
	return s
}

// WithLayout returns a copy using l.
func (s Section[X]) WithLayout(l Layout) Section[X] {
	s.Layout = l
	return s
}

// AddText returns a copy with t appended to the run list. The copy
// gets its own backing array, so sections extended from a shared
// prefix never alias each other.
func (s Section[X]) AddText(t Text[X]) Section[X] {
	s.Text = append(slices.Clip(s.Text), t)
	return s
}

// WithText returns s with the run list replaced wholesale, possibly
// changing the payload type. All runs in a section share one payload
// type, so retyping replaces them all. Free function for the same
// reason as WithExtra.
func WithText[X Payload[X], Y Payload[Y]](s Section[X], text []Text[Y]) Section[Y] {
	return Section[Y]{
		ScreenPosition: s.ScreenPosition,
		Bounds:         s.Bounds,
		Layout:         s.Layout,
		Text:           text,
	}
}

// Geometry projects the positioning half of the section.
func (s *Section[X]) Geometry() SectionGeometry {
	return SectionGeometry{ScreenPosition: s.ScreenPosition, Bounds: s.Bounds}
}

// Equal reports structural equality: geometry and layout compare with
// ==, runs compare in order with Text.Equal. Hash agrees with Equal:
// equal sections always hash equal.
func (s *Section[X]) Equal(other *Section[X]) bool {
	if s.ScreenPosition != other.ScreenPosition ||
		s.Bounds != other.Bounds ||
		s.Layout != other.Layout ||
		len(s.Text) != len(other.Text) {
		return false
	}
	for i := range s.Text {
		if !s.Text[i].Equal(other.Text[i]) {
			return false
		}
	}
	return true
}

// Clone returns a section sharing no mutable state with the receiver:
// the run slice is fresh and every payload is cloned.
func (s Section[X]) Clone() Section[X] {
	if s.Text != nil {
		runs := make([]Text[X], len(s.Text))
		for i := range s.Text {
			runs[i] = s.Text[i].Clone()
		}
		s.Text = runs
	}
	return s
}

// CloneExtras returns an independent copy of just the run payloads, in
// run order. Callers restyling a cached layout use this to carry the
// new styling without laying out again.
func (s *Section[X]) CloneExtras() []X {
	if len(s.Text) == 0 {
		return nil
	}
	extras := make([]X, len(s.Text))
	for i := range s.Text {
		extras[i] = s.Text[i].Extra.Clone()
	}
	return extras
}
