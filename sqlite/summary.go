package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pranavarora99/pagesum"
)

// Compile-time interface verification.
var _ pagesum.SummaryService = (*SummaryService)(nil)

// SummaryService implements pagesum.SummaryService using SQLite. The
// summary itself is stored as JSON; url, title and content_hash are
// duplicated into columns for filtering and listing.
type SummaryService struct {
	db  *DB
	now func() time.Time
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(db *DB) *SummaryService {
	return &SummaryService{db: db, now: time.Now}
}

// CreateSummary stores rec, assigning a new ID and creation time.
func (s *SummaryService) CreateSummary(ctx context.Context, rec *pagesum.SummaryRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(rec.Summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	rec.ID = uuid.New().String()
	rec.CreatedAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO summaries (id, url, content_hash, title, degraded, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.URL, rec.ContentHash, rec.Summary.Title, rec.Summary.Degraded,
		string(payload), formatTime(rec.CreatedAt))
	return err
}

// FindSummaryByID retrieves a record by ID.
func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*pagesum.SummaryRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, content_hash, summary, created_at
		FROM summaries
		WHERE id = ?
	`, id)

	rec, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pagesum.Errorf(pagesum.ENOTFOUND, "summary not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindSummaries retrieves records matching the filter, newest first.
func (s *SummaryService) FindSummaries(ctx context.Context, filter pagesum.SummaryFilter) ([]*pagesum.SummaryRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, content_hash, summary, created_at FROM summaries WHERE 1=1")
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := []*pagesum.SummaryRecord{}
	for rows.Next() {
		rec, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// DeleteSummary permanently removes a record.
func (s *SummaryService) DeleteSummary(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pagesum.Errorf(pagesum.ENOTFOUND, "summary not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*pagesum.SummaryRecord, error) {
	var rec pagesum.SummaryRecord
	var payload, createdAt string

	if err := row.Scan(&rec.ID, &rec.URL, &rec.ContentHash, &payload, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), &rec.Summary); err != nil {
		return nil, fmt.Errorf("failed to decode summary %s: %w", rec.ID, err)
	}

	var err error
	if rec.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}
