package fontmap

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements Parser using github.com/go-text/typesetting.
// This is the default backend.
type gotextParser struct{}

// Parse implements Parser.
func (p *gotextParser) Parse(data []byte) (Font, error) {
	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return newGotextFont(face), nil
}

// gotextFont wraps a typesetting face. The face keeps internal glyph
// caches and is not safe for concurrent use, so glyph queries hold a
// mutex. Name and upem are immutable and read lock-free.
type gotextFont struct {
	mu   sync.Mutex
	face *font.Face

	name string
	upem float64
}

func newGotextFont(face *font.Face) *gotextFont {
	return &gotextFont{
		face: face,
		name: face.Describe().Family,
		upem: float64(face.Upem()),
	}
}

// Name implements Font.
func (f *gotextFont) Name() string {
	return f.name
}

// UnitsPerEm implements Font.
func (f *gotextFont) UnitsPerEm() int {
	return int(f.upem)
}

// GlyphIndex implements Font.
func (f *gotextFont) GlyphIndex(r rune) (uint16, bool) {
	f.mu.Lock()
	gid, ok := f.face.NominalGlyph(r)
	f.mu.Unlock()
	if !ok || gid == 0 {
		return 0, false
	}
	return uint16(gid), true
}

// GlyphAdvance implements Font. Advances come back in font units and
// scale by ppem/upem.
func (f *gotextFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	f.mu.Lock()
	adv := f.face.HorizontalAdvance(font.GID(glyphIndex))
	f.mu.Unlock()
	return float64(adv) * ppem / f.upem
}

// Metrics implements Font. Extents come back in font units; the
// typesetting descender is negative (downward), flipped here to the
// positive-down convention.
func (f *gotextFont) Metrics(ppem float64) Metrics {
	f.mu.Lock()
	ext, ok := f.face.FontHExtents()
	f.mu.Unlock()
	if !ok {
		return Metrics{}
	}
	sc := ppem / f.upem
	return Metrics{
		Ascent:  float64(ext.Ascender) * sc,
		Descent: float64(-ext.Descender) * sc,
		LineGap: float64(ext.LineGap) * sc,
	}
}
