package main

import (
	"fmt"
	"regexp"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/summarize"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *pagesum.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &pagesum.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	var urls []string
	for _, u := range c.URLs {
		if urlFilter.Match(u) {
			urls = append(urls, u)
		}
	}

	if c.Sitemap != "" {
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, urlFilter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
			return err
		}
		urls = append(urls, discovered...)
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs to summarize. Pass URLs or use --sitemap.")
		return pagesum.Errorf(pagesum.EINVALID, "no URLs to summarize")
	}

	if c.Concurrency > 0 {
		deps.Service.Concurrency = c.Concurrency
	}

	progress := func(event summarize.ProgressEvent) {
		switch event.Type {
		case summarize.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Summarizing %d pages\n", event.Total)
		case summarize.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s\n", event.Completed, event.Total, summarize.TruncateURL(event.URL, 60))
		case summarize.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case summarize.ProgressFinished:
			// Summary printed after the batch completes
		}
	}

	results, err := deps.Service.SummarizeAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	var ok, cached int
	records := make([]*pagesum.SummaryRecord, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		ok++
		if r.Cached {
			cached++
		}
		records = append(records, r.Record)
	}

	if deps.Writer != nil {
		for _, rec := range records {
			if err := deps.Writer.WriteSummary(deps.Ctx, rec); err != nil {
				fmt.Fprintf(deps.Stderr, "  export %s: %v\n", rec.URL, err)
			}
		}
	}

	if c.JSON {
		if err := writeJSON(deps.Stdout, records); err != nil {
			return err
		}
	} else {
		for _, rec := range records {
			id := rec.ID
			if id == "" {
				id = "-"
			}
			fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", id, rec.URL, rec.Summary.Title)
		}
	}

	fmt.Fprintf(deps.Stderr, "Summarized %d of %d pages (%d unchanged)\n", ok, len(results), cached)
	return nil
}
