package richtext

// Color is a straight-alpha RGBA color with float32 channels,
// conventionally in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA returns a Color with the given channels.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB returns an opaque Color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// appendHash folds the color into h channel by channel.
func (c Color) appendHash(h *Hasher) {
	h.AddFloat32(c.R)
	h.AddFloat32(c.G)
	h.AddFloat32(c.B)
	h.AddFloat32(c.A)
}

// Extra is the default per-run styling payload: a fill color, an
// outline color, and a depth value for ordering sections relative to
// each other. It satisfies Payload[Extra].
//
// Renderers needing different styling define their own payload type
// rather than extending Extra; see Payload.
type Extra struct {
	// Color fills the glyph interiors.
	Color Color
	// OutlineColor strokes the glyph outlines. The zero value (fully
	// transparent) disables outlining.
	OutlineColor Color
	// Depth orders sections relative to each other during rendering.
	Depth float32
}

// DefaultExtra returns the payload NewText starts from: opaque black
// fill, no outline, depth zero.
func DefaultExtra() Extra {
	return Extra{Color: Color{A: 1}}
}

// AppendHash implements Payload.
func (x Extra) AppendHash(h *Hasher) {
	x.Color.appendHash(h)
	x.OutlineColor.appendHash(h)
	h.AddFloat32(x.Depth)
}

// Equal implements Payload. Channels and depth compare with ordinary
// float equality.
func (x Extra) Equal(other Extra) bool {
	return x == other
}

// Clone implements Payload. Extra is a plain value, so the receiver is
// already a copy.
func (x Extra) Clone() Extra {
	return x
}

var _ Payload[Extra] = Extra{}
