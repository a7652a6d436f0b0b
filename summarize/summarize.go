// Package summarize orchestrates page summarization around the extraction
// engine. It coordinates fetching, parsing, enrichment, caching and storage
// of summaries for single pages and for batches.
package summarize

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pranavarora99/pagesum"
)

// Service summarizes pages.
//
// Fetcher is only required by SummarizeURL and SummarizeAll. Summaries is
// optional: when set, stored records are reused for unchanged content and
// new records are persisted if Save is true.
type Service struct {
	Fetcher     pagesum.Fetcher
	Parser      pagesum.DocumentParser
	Summarizer  pagesum.Summarizer
	Summaries   pagesum.SummaryService
	Enrichers   []pagesum.MetadataExtractor
	RateLimiter pagesum.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	RetryLog    LogFunc
	Save        bool
}

// SummarizeHTML summarizes already fetched markup.
func (s *Service) SummarizeHTML(ctx context.Context, html string, pageURL string) (*pagesum.SummaryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := s.Parser.Parse(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	summary := s.Summarizer.Summarize(doc)
	s.enrich(&summary, html, pageURL)

	rec := &pagesum.SummaryRecord{
		URL:         pageURL,
		ContentHash: ContentHash(html),
		Summary:     summary,
	}

	if s.Save && s.Summaries != nil {
		if err := s.Summaries.CreateSummary(ctx, rec); err != nil {
			return nil, fmt.Errorf("save summary: %w", err)
		}
	}

	return rec, nil
}

// SummarizeURL fetches and summarizes the page at pageURL. When the newest
// stored record for the URL was built from identical content, that record
// is returned without re-running extraction.
func (s *Service) SummarizeURL(ctx context.Context, pageURL string) (*pagesum.SummaryRecord, error) {
	rec, _, err := s.summarizeURL(ctx, pageURL)
	return rec, err
}

func (s *Service) summarizeURL(ctx context.Context, pageURL string) (*pagesum.SummaryRecord, bool, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, domainOf(pageURL)); err != nil {
			return nil, false, err
		}
	}

	html, err := FetchWithRetryDelays(ctx, pageURL, s.Fetcher.Fetch, s.RetryLog, s.retryDelays())
	if err != nil {
		return nil, false, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	rec, err := s.cached(ctx, pageURL, ContentHash(html))
	if err != nil {
		return nil, false, err
	}
	if rec != nil {
		return rec, true, nil
	}

	rec, err = s.SummarizeHTML(ctx, html, pageURL)
	return rec, false, err
}

// cached returns the newest stored record for pageURL if its content hash
// matches, or nil.
func (s *Service) cached(ctx context.Context, pageURL, hash string) (*pagesum.SummaryRecord, error) {
	if s.Summaries == nil {
		return nil, nil
	}

	recs, err := s.Summaries.FindSummaries(ctx, pagesum.SummaryFilter{URL: &pageURL, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("find stored summary: %w", err)
	}
	if len(recs) == 0 || recs[0].ContentHash != hash {
		return nil, nil
	}
	return recs[0], nil
}

func (s *Service) retryDelays() []time.Duration {
	if s.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return s.RetryDelays
}

// domainOf returns the host of rawURL, or rawURL itself if it has none.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
