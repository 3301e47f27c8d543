package fontmap

// Parser is a font parsing backend. The abstraction exists so the
// parsing library can be swapped (typesetting vs x/image vs a custom
// implementation) without touching Collection.
type Parser interface {
	// Parse parses font data (TTF or OTF) and returns a Font.
	// Implementations may retain data.
	Parse(data []byte) (Font, error)
}

// parserRegistry holds registered font parsers.
var parserRegistry = map[string]Parser{
	"gotext": &gotextParser{},
	"ximage": &ximageParser{},
}

// defaultParserName is the backend used when none is configured.
const defaultParserName = "gotext"

// RegisterParser registers a custom font parser under name,
// replacing any previous registration. Register during package
// initialization; the registry is not synchronized against concurrent
// lookups.
func RegisterParser(name string, parser Parser) {
	parserRegistry[name] = parser
}

// getParser returns the parser by name, or the default if not found.
func getParser(name string) Parser {
	if p, ok := parserRegistry[name]; ok {
		return p
	}
	return parserRegistry[defaultParserName]
}
