package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/airtable"
	"github.com/shubh-37/inflections-studio/internal/codec"
	"github.com/shubh-37/inflections-studio/internal/models"
)

const (
	issueNumber           = "Issue Number"
	issueTitle            = "Issue Title"
	issuePublishDate      = "Publish Date"
	issueStatus           = "Status"
	issueThemeDescription = "Theme Description"
	issueNotes            = "Notes"
)

type IssueRepository struct {
	store  Store
	table  string
	logger *zap.Logger
}

func NewIssueRepository(store Store, table string, logger *zap.Logger) *IssueRepository {
	return &IssueRepository{store: store, table: table, logger: logger}
}

// List returns all issues, latest publish date first.
func (r *IssueRepository) List(ctx context.Context) ([]*models.Issue, error) {
	records, err := r.store.List(ctx, r.table, airtable.Query{
		Sort: []airtable.Sort{desc(issuePublishDate)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*models.Issue, 0, len(records))
	for _, rec := range records {
		issues = append(issues, decodeIssue(rec))
	}
	return issues, nil
}

func (r *IssueRepository) Get(ctx context.Context, id string) (*models.Issue, error) {
	rec, err := find(ctx, r.store, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue %s: %w", id, err)
	}
	if rec == nil {
		return nil, nil
	}
	return decodeIssue(*rec), nil
}

func (r *IssueRepository) Create(ctx context.Context, draft models.IssueDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	status := draft.Status
	if status == "" {
		status = models.IssuePlanning
	}

	fields := airtable.Fields{
		issueNumber: draft.IssueNumber,
		issueTitle:  draft.Title,
		issueStatus: codec.IssueStatus.Encode(status),
	}
	fields.SetIf(issuePublishDate, draft.PublishDate)
	fields.SetIf(issueThemeDescription, draft.ThemeDescription)
	fields.SetIf(issueNotes, draft.Notes)

	rec, err := r.store.Create(ctx, r.table, fields)
	if err != nil {
		return "", fmt.Errorf("failed to create issue: %w", err)
	}
	return rec.ID, nil
}

func (r *IssueRepository) Update(ctx context.Context, id string, u models.IssueUpdate) error {
	if id == "" {
		return models.Required("id")
	}
	if err := u.Validate(); err != nil {
		return err
	}

	fields := airtable.Fields{}
	fields.PutInt(issueNumber, u.IssueNumber)
	fields.PutString(issueTitle, u.Title)
	fields.PutString(issuePublishDate, u.PublishDate)
	if u.Status != nil {
		fields[issueStatus] = codec.IssueStatus.Encode(*u.Status)
	}
	fields.PutString(issueThemeDescription, u.ThemeDescription)
	fields.PutString(issueNotes, u.Notes)

	if len(fields) == 0 {
		return nil
	}
	if _, err := r.store.Update(ctx, r.table, id, fields); err != nil {
		return writeFailed(err, "update issue", "Issue", id)
	}
	return nil
}

func decodeIssue(rec airtable.Record) *models.Issue {
	f := rec.Fields
	return &models.Issue{
		ID:               rec.ID,
		IssueNumber:      f.Int(issueNumber),
		Title:            f.String(issueTitle),
		PublishDate:      f.String(issuePublishDate),
		Status:           codec.IssueStatus.Decode(f.String(issueStatus)),
		ThemeDescription: f.String(issueThemeDescription),
		Notes:            f.String(issueNotes),
	}
}
