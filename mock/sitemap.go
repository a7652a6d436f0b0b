package mock

import (
	"context"

	"github.com/pranavarora99/pagesum"
)

var _ pagesum.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pagesum.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string, filter *pagesum.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *pagesum.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL, filter)
}
