// Package trafilatura reads page metadata with go-trafilatura. It backs
// the optional enrichment layer.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pranavarora99/pagesum"
)

var _ pagesum.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name identifies the extractor.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Metadata returns the title, description, image and site name found by
// trafilatura's metadata pass.
func (e *Extractor) Metadata(rawHTML string, pageURL string) (*pagesum.PageMetadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{EnableFallback: true}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil {
			return nil, pagesum.Errorf(pagesum.EINVALID, "invalid page URL: %v", err)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	m := result.Metadata
	return &pagesum.PageMetadata{
		Title:       strings.TrimSpace(m.Title),
		Description: strings.TrimSpace(m.Description),
		Image:       strings.TrimSpace(m.Image),
		SiteName:    strings.TrimSpace(m.Sitename),
	}, nil
}
