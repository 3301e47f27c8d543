package richtext

// unknownStr is the String() fallback for out-of-range enum values.
const unknownStr = "Unknown"

// HAlign controls how lines sit horizontally relative to the screen
// position.
type HAlign int

const (
	// AlignLeft puts the leftmost glyph at the screen position.
	AlignLeft HAlign = iota
	// AlignCenter centers each line on the screen position.
	AlignCenter
	// AlignRight puts the rightmost glyph at the screen position.
	AlignRight
)

// String returns a human-readable name for the alignment.
func (a HAlign) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VAlign controls how lines sit vertically relative to the screen
// position.
type VAlign int

const (
	// AlignTop hangs the text below the screen position.
	AlignTop VAlign = iota
	// AlignMiddle centers the text block on the screen position.
	AlignMiddle
	// AlignBottom stacks the text above the screen position.
	AlignBottom
)

// String returns a human-readable name for the alignment.
func (a VAlign) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}

// LineBreak selects where wrapped sections may break lines.
type LineBreak int

const (
	// LineBreakUnicode breaks at Unicode line-break opportunities
	// (UAX #14). This is what readers expect for prose.
	LineBreakUnicode LineBreak = iota
	// LineBreakAnyChar breaks between any two characters.
	LineBreakAnyChar
)

// String returns a human-readable name for the strategy.
func (b LineBreak) String() string {
	switch b {
	case LineBreakUnicode:
		return "Unicode"
	case LineBreakAnyChar:
		return "AnyChar"
	default:
		return unknownStr
	}
}

// Layout configures how a section's runs are arranged: whether lines
// wrap at the bounds, how lines align to the screen position, and
// where breaks may fall.
//
// The zero value is the default layout: wrapping enabled, left and top
// alignment, Unicode line breaking.
type Layout struct {
	// SingleLine disables wrapping. The section is laid out on one
	// line regardless of bounds.
	SingleLine bool
	// HAlign is the horizontal alignment.
	HAlign HAlign
	// VAlign is the vertical alignment.
	VAlign VAlign
	// LineBreak is the wrapping strategy. Ignored when SingleLine is
	// set.
	LineBreak LineBreak
}

// DefaultLayout returns the zero Layout. It exists so call sites can
// spell the intent out.
func DefaultLayout() Layout {
	return Layout{}
}

// SingleLineLayout returns a non-wrapping layout with default
// alignment.
func SingleLineLayout() Layout {
	return Layout{SingleLine: true}
}

// WithHAlign returns a copy of l with the horizontal alignment set.
func (l Layout) WithHAlign(a HAlign) Layout {
	l.HAlign = a
	return l
}

// WithVAlign returns a copy of l with the vertical alignment set.
func (l Layout) WithVAlign(a VAlign) Layout {
	l.VAlign = a
	return l
}

// WithLineBreak returns a copy of l with the wrapping strategy set.
func (l Layout) WithLineBreak(b LineBreak) Layout {
	l.LineBreak = b
	return l
}

// WithSingleLine returns a copy of l with wrapping toggled.
func (l Layout) WithSingleLine(single bool) Layout {
	l.SingleLine = single
	return l
}

// appendHash folds the layout configuration into h.
func (l Layout) appendHash(h *Hasher) {
	h.AddBool(l.SingleLine)
	h.AddByte(byte(l.HAlign))
	h.AddByte(byte(l.VAlign))
	h.AddByte(byte(l.LineBreak))
}

// hash returns the layout configuration's standalone hash stream.
func (l Layout) hash() uint64 {
	h := NewHasher()
	l.appendHash(h)
	return h.Sum64()
}
