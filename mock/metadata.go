package mock

import "github.com/pranavarora99/pagesum"

var _ pagesum.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pagesum.MetadataExtractor.
type MetadataExtractor struct {
	NameFn     func() string
	MetadataFn func(html string, pageURL string) (*pagesum.PageMetadata, error)
}

func (e *MetadataExtractor) Name() string {
	return e.NameFn()
}

func (e *MetadataExtractor) Metadata(html string, pageURL string) (*pagesum.PageMetadata, error) {
	return e.MetadataFn(html, pageURL)
}
