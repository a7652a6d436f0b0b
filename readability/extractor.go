// Package readability reads page metadata with go-readability. It backs
// the optional enrichment layer.
package readability

import (
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pranavarora99/pagesum"
)

var _ pagesum.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name identifies the extractor.
func (e *Extractor) Name() string {
	return "readability"
}

// Metadata returns the article title, excerpt, lead image and site name.
func (e *Extractor) Metadata(rawHTML string, pageURL string) (*pagesum.PageMetadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	var u *url.URL
	if pageURL != "" {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			return nil, pagesum.Errorf(pagesum.EINVALID, "invalid page URL: %v", err)
		}
		u = parsed
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}

	return &pagesum.PageMetadata{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
		Image:       strings.TrimSpace(article.Image),
		SiteName:    strings.TrimSpace(article.SiteName),
	}, nil
}
