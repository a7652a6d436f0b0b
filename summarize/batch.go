package summarize

import (
	"context"
	"sync/atomic"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages summarized at once by
// SummarizeAll when Service.Concurrency is not set.
const DefaultConcurrency = 4

// dedupFalsePositiveRate bounds the chance that a distinct URL is dropped
// as a duplicate.
const dedupFalsePositiveRate = 0.0001

// Result holds the outcome for one URL of a batch.
type Result struct {
	URL    string
	Record *pagesum.SummaryRecord
	Cached bool
	Err    error
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type batchResult struct {
	position int
	Result
}

// SummarizeAll summarizes every distinct URL in urls. Duplicates, compared
// after canonicalization, are summarized once. Results are returned in
// input order of first appearance; a failure of one URL does not stop the
// others. The returned error is non-nil only if ctx ends the batch.
func (s *Service) SummarizeAll(ctx context.Context, urls []string, progress ProgressFunc) ([]Result, error) {
	unique := dedupe(urls)

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(unique)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan batchResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range unique {
			g.Go(func() error {
				rec, cached, err := s.summarizeURL(gctx, u)
				resultCh <- batchResult{
					position: i,
					Result:   Result{URL: u, Record: rec, Cached: cached, Err: err},
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]Result, total)
	var completed atomic.Int64
	for r := range resultCh {
		n := int(completed.Add(1))
		results[r.position] = r.Result

		if progress == nil {
			continue
		}
		if r.Err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: n,
				Total:     total,
				URL:       r.URL,
				Error:     r.Err,
			})
			continue
		}
		progress(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			URL:       r.URL,
		})
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: int(completed.Load()),
			Total:     total,
		})
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func dedupe(urls []string) []string {
	seen := bloom.NewFilter(uint(len(urls)), dedupFalsePositiveRate)
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" || seen.Seen(u) {
			continue
		}
		unique = append(unique, u)
	}
	return unique
}
