package fontmap

import "errors"

// Sentinel errors for fontmap package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontmap: empty font data")

	// ErrUnknownFont is returned when a FontID resolves to nothing.
	// Callers match it with errors.Is; the wrapped message carries the
	// offending id.
	ErrUnknownFont = errors.New("fontmap: unknown font")
)
