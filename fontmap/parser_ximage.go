package fontmap

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements Parser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements Parser.
func (p *ximageParser) Parse(data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &ximageFont{font: f}, nil
}

// ximageFont wraps *sfnt.Font. sfnt methods take a scratch buffer;
// allocating one per call keeps the font safe for concurrent use.
type ximageFont struct {
	font *sfnt.Font
}

// Name implements Font. Prefers the family name and falls back to the
// full name.
func (f *ximageFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(nil, sfnt.NameIDFull); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements Font.
func (f *ximageFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex implements Font. sfnt reports an uncovered rune as glyph
// 0 with no error.
func (f *ximageFont) GlyphIndex(r rune) (uint16, bool) {
	var buf sfnt.Buffer
	gi, err := f.font.GlyphIndex(&buf, r)
	if err != nil || gi == 0 {
		return 0, false
	}
	return uint16(gi), true
}

// GlyphAdvance implements Font.
func (f *ximageFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), fixed.Int26_6(ppem*64), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// Metrics implements Font. sfnt reports ascent and descent positive
// and folds the line gap into Height, so the gap is recovered by
// subtraction.
func (f *ximageFont) Metrics(ppem float64) Metrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, fixed.Int26_6(ppem*64), font.HintingFull)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: fixedToFloat64(m.Height) - ascent - descent,
	}
}

// fixedToFloat64 converts a fixed.Int26_6 to float64.
func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
