package mock

import (
	"context"

	"github.com/pranavarora99/pagesum"
)

var _ pagesum.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of pagesum.Summarizer.
type Summarizer struct {
	SummarizeFn func(doc pagesum.Document) pagesum.PageSummary
}

func (s *Summarizer) Summarize(doc pagesum.Document) pagesum.PageSummary {
	return s.SummarizeFn(doc)
}

var _ pagesum.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of pagesum.SummaryService.
type SummaryService struct {
	CreateSummaryFn   func(ctx context.Context, rec *pagesum.SummaryRecord) error
	FindSummaryByIDFn func(ctx context.Context, id string) (*pagesum.SummaryRecord, error)
	FindSummariesFn   func(ctx context.Context, filter pagesum.SummaryFilter) ([]*pagesum.SummaryRecord, error)
	DeleteSummaryFn   func(ctx context.Context, id string) error
}

func (s *SummaryService) CreateSummary(ctx context.Context, rec *pagesum.SummaryRecord) error {
	return s.CreateSummaryFn(ctx, rec)
}

func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*pagesum.SummaryRecord, error) {
	return s.FindSummaryByIDFn(ctx, id)
}

func (s *SummaryService) FindSummaries(ctx context.Context, filter pagesum.SummaryFilter) ([]*pagesum.SummaryRecord, error) {
	return s.FindSummariesFn(ctx, filter)
}

func (s *SummaryService) DeleteSummary(ctx context.Context, id string) error {
	return s.DeleteSummaryFn(ctx, id)
}

var _ pagesum.SummaryWriter = (*SummaryWriter)(nil)

// SummaryWriter is a mock implementation of pagesum.SummaryWriter.
type SummaryWriter struct {
	WriteSummaryFn func(ctx context.Context, rec *pagesum.SummaryRecord) error
}

func (w *SummaryWriter) WriteSummary(ctx context.Context, rec *pagesum.SummaryRecord) error {
	return w.WriteSummaryFn(ctx, rec)
}
