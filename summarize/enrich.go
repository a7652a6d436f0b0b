package summarize

import (
	"net/url"
	"strings"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/extract"
)

// enrich fills fields the engine left at their literal defaults using the
// configured metadata extractors, in order. Values must pass the same
// checks the engine applies. Resolved fields are never replaced.
func (s *Service) enrich(summary *pagesum.PageSummary, html, pageURL string) {
	for _, e := range s.Enrichers {
		if !needsEnrichment(summary) {
			return
		}
		m, err := e.Metadata(html, pageURL)
		if err != nil || m == nil {
			continue
		}
		applyMetadata(summary, m, pageURL)
	}
}

func needsEnrichment(s *pagesum.PageSummary) bool {
	return s.Title == pagesum.DefaultTitle ||
		s.Description == pagesum.DefaultDescription ||
		len(s.Images) == 0
}

func applyMetadata(s *pagesum.PageSummary, m *pagesum.PageMetadata, pageURL string) {
	if s.Title == pagesum.DefaultTitle {
		if t := strings.Join(strings.Fields(m.Title), " "); extract.IsQualityText(t) {
			s.Title = t
		}
	}

	if s.Description == pagesum.DefaultDescription {
		if d, ok := extract.MetaDescription(m.Description); ok {
			s.Description = d
		}
	}

	if len(s.Images) == 0 && m.Image != "" {
		base, err := url.Parse(pageURL)
		if err != nil {
			return
		}
		if img, ok := extract.AbsoluteURL(base, m.Image); ok {
			s.Images = []string{img}
		}
	}
}
