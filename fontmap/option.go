package fontmap

// CollectionOption configures Collection creation.
type CollectionOption func(*collectionConfig)

// collectionConfig holds configuration for Collection.
type collectionConfig struct {
	parserName string
}

// defaultCollectionConfig returns the default collection configuration.
func defaultCollectionConfig() collectionConfig {
	return collectionConfig{
		parserName: defaultParserName, // Default parser (gotext)
	}
}

// WithParser specifies the font parser backend.
// The default is "gotext" which uses github.com/go-text/typesetting;
// "ximage" selects golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) CollectionOption {
	return func(c *collectionConfig) {
		c.parserName = name
	}
}
