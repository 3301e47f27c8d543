package richtext

// DefaultScale is the uniform pixel scale runs start with.
const DefaultScale = 16

// PxScale is a font scale in pixels per em, held separately for the
// horizontal and vertical axes.
type PxScale struct {
	X, Y float32
}

// Scale returns a uniform PxScale.
func Scale(s float32) PxScale {
	return PxScale{X: s, Y: s}
}

// FontID identifies a font in a fontmap.Collection, or in whatever
// registry the renderer keeps. It is opaque here: runs carry it and
// hashes fold it, nothing validates it.
type FontID uint32

// Text is one styled run: a content string plus the styling it is
// shaped with. Text is an immutable value; the With* methods return
// updated copies and never touch the receiver.
type Text[X Payload[X]] struct {
	// Content is the run's UTF-8 text.
	Content string
	// Scale is the pixel scale the run is shaped at.
	Scale PxScale
	// Font selects a font from the renderer's collection.
	Font FontID
	// Extra is the renderer-defined styling payload.
	Extra X
}

// NewText returns a run with the default payload: DefaultScale pixels,
// font 0, opaque black fill. Options adjust the payload.
func NewText(content string, opts ...TextOption) Text[Extra] {
	t := Text[Extra]{
		Content: content,
		Scale:   Scale(DefaultScale),
		Extra:   DefaultExtra(),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewTextWith returns a run carrying a caller-supplied payload.
func NewTextWith[X Payload[X]](content string, extra X) Text[X] {
	return Text[X]{
		Content: content,
		Scale:   Scale(DefaultScale),
		Extra:   extra,
	}
}

// TextOption adjusts the default-payload run built by NewText.
type TextOption func(*Text[Extra])

// WithColor sets the fill color.
func WithColor(c Color) TextOption {
	return func(t *Text[Extra]) {
		t.Extra.Color = c
	}
}

// WithOutlineColor sets the outline color.
func WithOutlineColor(c Color) TextOption {
	return func(t *Text[Extra]) {
		t.Extra.OutlineColor = c
	}
}

// WithDepth sets the depth value.
func WithDepth(z float32) TextOption {
	return func(t *Text[Extra]) {
		t.Extra.Depth = z
	}
}

// WithContent returns a copy of t with different content.
func (t Text[X]) WithContent(content string) Text[X] {
	t.Content = content
	return t
}

// WithScale returns a copy of t at a uniform pixel scale.
func (t Text[X]) WithScale(s float32) Text[X] {
	t.Scale = Scale(s)
	return t
}

// WithScaleXY returns a copy of t with independent horizontal and
// vertical scales.
func (t Text[X]) WithScaleXY(x, y float32) Text[X] {
	t.Scale = PxScale{X: x, Y: y}
	return t
}

// WithFont returns a copy of t using a different font.
func (t Text[X]) WithFont(id FontID) Text[X] {
	t.Font = id
	return t
}

// WithExtra returns t carrying a different payload, possibly of a
// different type. It is a free function because Go methods cannot
// introduce type parameters.
func WithExtra[X Payload[X], Y Payload[Y]](t Text[X], extra Y) Text[Y] {
	return Text[Y]{
		Content: t.Content,
		Scale:   t.Scale,
		Font:    t.Font,
		Extra:   extra,
	}
}

// Equal reports structural equality. Content, scale, and font compare
// with ==; payloads compare with their own Equal.
func (t Text[X]) Equal(other Text[X]) bool {
	return t.Content == other.Content &&
		t.Scale == other.Scale &&
		t.Font == other.Font &&
		t.Extra.Equal(other.Extra)
}

// Clone returns a run whose payload shares no mutable state with the
// receiver.
func (t Text[X]) Clone() Text[X] {
	t.Extra = t.Extra.Clone()
	return t
}

// SectionText is a run stripped to what shaping needs: content, scale,
// and font. Layout engines take SectionText so they stay independent
// of the payload type.
type SectionText struct {
	Content string
	Scale   PxScale
	Font    FontID
}

// SectionText projects the run for a layout engine.
func (t Text[X]) SectionText() SectionText {
	return SectionText{Content: t.Content, Scale: t.Scale, Font: t.Font}
}

// appendHashNoExtra folds the payload-independent fields into h:
// content, font id, then canonical scale bits.
func (t *Text[X]) appendHashNoExtra(h *Hasher) {
	h.AddString(t.Content)
	h.AddUint32(uint32(t.Font))
	h.AddFloat32(t.Scale.X)
	h.AddFloat32(t.Scale.Y)
}
