// Package repository maps the record store's rows to the domain types.
// Every enum field passes through the codec tables on the way in and out.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shubh-37/inflections-studio/internal/airtable"
	"github.com/shubh-37/inflections-studio/internal/models"
)

// Store is the subset of the record store client the repositories use.
type Store interface {
	List(ctx context.Context, table string, q airtable.Query) ([]airtable.Record, error)
	Find(ctx context.Context, table, id string) (*airtable.Record, error)
	Create(ctx context.Context, table string, fields airtable.Fields) (*airtable.Record, error)
	Update(ctx context.Context, table, id string, fields airtable.Fields) (*airtable.Record, error)
	Delete(ctx context.Context, table, id string) error
}

// Tables names the record store tables.
type Tables struct {
	Brands   string
	Issues   string
	Articles string
	Posts    string
	Topics   string
}

func DefaultTables() Tables {
	return Tables{
		Brands:   "Brands",
		Issues:   "Issues",
		Articles: "Articles",
		Posts:    "LinkedIn Posts",
		Topics:   "Topics Bank",
	}
}

// find looks up one record. Absence is reported as a nil record, not an error.
func find(ctx context.Context, store Store, table, id string) (*airtable.Record, error) {
	rec, err := store.Find(ctx, table, id)
	if errors.Is(err, airtable.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// writeFailed wraps a failed update or delete. A record the store does not
// know becomes a NotFoundError for entity.
func writeFailed(err error, action, entity, id string) error {
	if errors.Is(err, airtable.ErrRecordNotFound) {
		return &models.NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("failed to %s %s: %w", action, id, err)
}

func asc(field string) airtable.Sort  { return airtable.Sort{Field: field, Direction: "asc"} }
func desc(field string) airtable.Sort { return airtable.Sort{Field: field, Direction: "desc"} }

// createdAt prefers the table's own created column and falls back to the
// record's creation time.
func createdAt(rec airtable.Record, field string) time.Time {
	if t := rec.Fields.Time(field); !t.IsZero() {
		return t
	}
	t, _ := time.Parse(time.RFC3339, rec.CreatedTime)
	return t
}

func invalidFilter(field, value string) error {
	return &models.ValidationError{Field: field, Message: fmt.Sprintf("unknown filter value %q", value)}
}
