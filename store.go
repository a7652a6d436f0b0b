package pagesum

import (
	"context"
	"time"
)

// SummaryRecord is a stored summary of a page at one point in time.
type SummaryRecord struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	ContentHash string      `json:"contentHash"`
	Summary     PageSummary `json:"summary"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *SummaryRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "summary URL required")
	}
	return nil
}

// SummaryService represents a service for managing stored summaries.
type SummaryService interface {
	// CreateSummary stores a new summary record, assigning its ID and
	// creation time.
	CreateSummary(ctx context.Context, rec *SummaryRecord) error

	// FindSummaryByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindSummaryByID(ctx context.Context, id string) (*SummaryRecord, error)

	// FindSummaries retrieves records matching the filter, newest first.
	FindSummaries(ctx context.Context, filter SummaryFilter) ([]*SummaryRecord, error)

	// DeleteSummary permanently removes a record.
	// Returns ENOTFOUND if the record does not exist.
	DeleteSummary(ctx context.Context, id string) error
}

// SummaryFilter represents a filter for FindSummaries.
type SummaryFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// SummaryWriter exports summaries outside the database, for example as
// files for other tools to index.
type SummaryWriter interface {
	WriteSummary(ctx context.Context, rec *SummaryRecord) error
}
