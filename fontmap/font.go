// Package fontmap resolves richtext.FontID values to parsed fonts.
//
// A Collection assigns dense ids to fonts as they are added, so runs
// can reference fonts by value while renderers look the faces up at
// draw time. Parsing is pluggable: the default backend uses
// github.com/go-text/typesetting, an alternative uses
// golang.org/x/image/font/opentype, and custom backends register via
// RegisterParser.
package fontmap

// Metrics holds font-wide vertical metrics scaled to a pixel size.
// All values are in pixels; Ascent grows upward from the baseline and
// Descent downward, both positive.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Height returns the recommended baseline-to-baseline distance.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Font is a parsed font, the object a richtext.FontID resolves to.
//
// Implementations must be safe for concurrent use; layout and glyph
// caching layers query fonts from multiple goroutines.
type Font interface {
	// Name returns the font family name, or "" if the font carries
	// none.
	Name() string

	// UnitsPerEm returns the design units per em.
	UnitsPerEm() int

	// GlyphIndex returns the glyph id for r and whether the font
	// covers r. The id 0 (.notdef) is never a covered glyph.
	GlyphIndex(r rune) (uint16, bool)

	// GlyphAdvance returns the horizontal advance of a glyph in
	// pixels at the given pixels-per-em size.
	GlyphAdvance(glyphIndex uint16, ppem float64) float64

	// Metrics returns font-wide metrics scaled to the given
	// pixels-per-em size.
	Metrics(ppem float64) Metrics
}
