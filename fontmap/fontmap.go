package fontmap

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/gogpu/richtext"
)

// unknownFontName is used for fonts whose tables carry no usable name.
const unknownFontName = "Unknown Font"

// Collection assigns richtext.FontID values to fonts and resolves them
// back. Ids are dense and start at 0, so the zero FontID on a run means
// "the first font added".
//
// Collection is safe for concurrent use.
// Collection must not be copied after creation (enforced by copyCheck).
type Collection struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the Collection itself.
	addr *Collection

	mu       sync.RWMutex
	fonts    []Font
	byFamily map[string]richtext.FontID // folded family name, first id wins

	config collectionConfig
}

// NewCollection creates an empty Collection.
//
// Options select the parser backend used by Add and AddFile.
func NewCollection(opts ...CollectionOption) *Collection {
	config := defaultCollectionConfig()
	for _, opt := range opts {
		opt(&config)
	}

	c := &Collection{
		byFamily: make(map[string]richtext.FontID),
		config:   config,
	}
	c.addr = c // Self-reference for copy detection
	return c
}

// Add parses font data (TTF or OTF) and registers the font.
// The data slice is copied internally and can be reused after this call.
func (c *Collection) Add(data []byte) (richtext.FontID, error) {
	c.copyCheck()
	if len(data) == 0 {
		return 0, ErrEmptyFontData
	}

	// Parsers may retain the bytes, so parse a private copy.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parser := getParser(c.config.parserName)
	f, err := parser.Parse(dataCopy)
	if err != nil {
		return 0, err
	}
	return c.AddFont(f), nil
}

// AddFile loads and registers a font file.
func (c *Collection) AddFile(path string) (richtext.FontID, error) {
	c.copyCheck()
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("fontmap: failed to read font file: %w", err)
	}
	return c.Add(data)
}

// AddFont registers an already-parsed font and returns its id.
func (c *Collection) AddFont(f Font) richtext.FontID {
	c.copyCheck()

	name := f.Name()
	if name == "" {
		name = unknownFontName
	}
	folded := foldFamily(name)

	c.mu.Lock()
	id := richtext.FontID(len(c.fonts))
	c.fonts = append(c.fonts, f)
	if _, taken := c.byFamily[folded]; !taken {
		c.byFamily[folded] = id
	}
	c.mu.Unlock()

	richtext.Logger().Info("font registered", "id", uint32(id), "family", name)
	return id
}

// Font resolves an id. The error wraps ErrUnknownFont when the id was
// never assigned.
func (c *Collection) Font(id richtext.FontID) (Font, error) {
	c.copyCheck()
	c.mu.RLock()
	defer c.mu.RUnlock()
	if int(id) >= len(c.fonts) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFont, id)
	}
	return c.fonts[id], nil
}

// IDByFamily looks a font up by family name. Matching is Unicode
// caseless ("ROBOTO" finds "Roboto") and ignores surrounding space.
// When several fonts share a family, the first one added wins.
func (c *Collection) IDByFamily(family string) (richtext.FontID, bool) {
	c.copyCheck()
	folded := foldFamily(family)
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.byFamily[folded]
	return id, ok
}

// Len returns the number of registered fonts.
func (c *Collection) Len() int {
	c.copyCheck()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fonts)
}

// Fonts returns a snapshot of the registered fonts in id order.
func (c *Collection) Fonts() []Font {
	c.copyCheck()
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Font, len(c.fonts))
	copy(out, c.fonts)
	return out
}

// copyCheck panics if Collection was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (c *Collection) copyCheck() {
	if c.addr != c {
		panic("fontmap: Collection must not be copied by value")
	}
}

// foldFamily canonicalizes a family name for lookup. cases.Fold
// casers are stateful, so each call builds its own.
func foldFamily(family string) string {
	return cases.Fold().String(strings.TrimSpace(family))
}
