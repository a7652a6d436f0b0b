package pagesum

// PageMetadata holds page-level fields reported by a secondary extractor.
type PageMetadata struct {
	Title       string
	Description string
	Image       string
	SiteName    string
}

// MetadataExtractor reads page-level metadata from raw HTML. It backs the
// optional enrichment layer that fills fields the engine left at their
// literal defaults; it never replaces engine output.
type MetadataExtractor interface {
	// Name identifies the extractor in logs.
	Name() string

	// Metadata processes raw HTML fetched from pageURL.
	Metadata(html string, pageURL string) (*PageMetadata, error)
}
