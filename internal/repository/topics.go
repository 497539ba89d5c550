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
	topicText          = "Topic"
	topicDescription   = "Description"
	topicSource        = "Source"
	topicSourceURL     = "Source URL"
	topicPrimaryFit    = "Primary Brand Fit"
	topicSecondaryFit  = "Secondary Brand Fit"
	topicPillar        = "Pillar"
	topicPriority      = "Priority"
	topicTimeliness    = "Timeliness"
	topicStatus        = "Status"
	topicAssignedIssue = "Assigned to Issue"
	topicNotes         = "Notes"
	topicCreated       = "Created"
)

type TopicFilter struct {
	Status   models.TopicStatus
	Priority models.Priority
	BrandID  string
	Pillar   models.Pillar
}

func (f TopicFilter) Validate() error {
	switch {
	case f.Status != "" && !f.Status.Valid():
		return invalidFilter("status", string(f.Status))
	case f.Priority != "" && !f.Priority.Valid():
		return invalidFilter("priority", string(f.Priority))
	case f.Pillar != "" && !f.Pillar.Valid():
		return invalidFilter("pillar", string(f.Pillar))
	}
	return nil
}

type TopicRepository struct {
	store  Store
	table  string
	logger *zap.Logger
}

func NewTopicRepository(store Store, table string, logger *zap.Logger) *TopicRepository {
	return &TopicRepository{store: store, table: table, logger: logger}
}

// List returns matching topics, newest first. BrandID matches the primary
// brand fit.
func (r *TopicRepository) List(ctx context.Context, filter TopicFilter) ([]*models.Topic, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var conds []string
	if filter.Status != "" {
		conds = append(conds, airtable.Eq(topicStatus, codec.TopicStatus.Encode(filter.Status)))
	}
	if filter.Priority != "" {
		conds = append(conds, airtable.Eq(topicPriority, codec.Priority.Encode(filter.Priority)))
	}
	if filter.BrandID != "" {
		conds = append(conds, airtable.LinkContains(topicPrimaryFit, filter.BrandID))
	}
	if filter.Pillar != "" {
		conds = append(conds, airtable.Eq(topicPillar, codec.Pillar.Encode(filter.Pillar)))
	}

	records, err := r.store.List(ctx, r.table, airtable.Query{
		Formula: airtable.And(conds...),
		Sort:    []airtable.Sort{desc(topicCreated)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	topics := make([]*models.Topic, 0, len(records))
	for _, rec := range records {
		topics = append(topics, decodeTopic(rec))
	}
	return topics, nil
}

func (r *TopicRepository) Get(ctx context.Context, id string) (*models.Topic, error) {
	rec, err := find(ctx, r.store, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get topic %s: %w", id, err)
	}
	if rec == nil {
		return nil, nil
	}
	return decodeTopic(*rec), nil
}

func (r *TopicRepository) Create(ctx context.Context, draft models.TopicDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}

	fields := airtable.Fields{
		topicText:       draft.Topic,
		topicSource:     codec.TopicSource.Encode(orDefault(draft.Source, codec.TopicSource.Default())),
		topicPriority:   codec.Priority.Encode(orDefault(draft.Priority, codec.Priority.Default())),
		topicTimeliness: codec.Timeliness.Encode(orDefault(draft.Timeliness, codec.Timeliness.Default())),
		topicStatus:     codec.TopicStatus.Encode(orDefault(draft.Status, codec.TopicStatus.Default())),
	}
	fields.SetIf(topicDescription, draft.Description)
	fields.SetIf(topicSourceURL, draft.SourceURL)
	if draft.PrimaryBrandID != "" {
		fields[topicPrimaryFit] = []string{draft.PrimaryBrandID}
	}
	if len(draft.SecondaryBrandIDs) > 0 {
		fields.PutLinks(topicSecondaryFit, &draft.SecondaryBrandIDs)
	}
	if draft.Pillar != "" {
		fields[topicPillar] = codec.Pillar.Encode(draft.Pillar)
	}
	if draft.AssignedIssueID != "" {
		fields[topicAssignedIssue] = []string{draft.AssignedIssueID}
	}
	fields.SetIf(topicNotes, draft.Notes)

	rec, err := r.store.Create(ctx, r.table, fields)
	if err != nil {
		return "", fmt.Errorf("failed to create topic: %w", err)
	}
	return rec.ID, nil
}

func (r *TopicRepository) Update(ctx context.Context, id string, u models.TopicUpdate) error {
	if id == "" {
		return models.Required("id")
	}
	if err := u.Validate(); err != nil {
		return err
	}

	fields := airtable.Fields{}
	fields.PutString(topicText, u.Topic)
	fields.PutString(topicDescription, u.Description)
	if u.Source != nil {
		fields[topicSource] = codec.TopicSource.Encode(*u.Source)
	}
	fields.PutString(topicSourceURL, u.SourceURL)
	fields.PutLink(topicPrimaryFit, u.PrimaryBrandID)
	fields.PutLinks(topicSecondaryFit, u.SecondaryBrandIDs)
	if u.Pillar != nil {
		if *u.Pillar == "" {
			fields[topicPillar] = nil
		} else {
			fields[topicPillar] = codec.Pillar.Encode(*u.Pillar)
		}
	}
	if u.Priority != nil {
		fields[topicPriority] = codec.Priority.Encode(*u.Priority)
	}
	if u.Timeliness != nil {
		fields[topicTimeliness] = codec.Timeliness.Encode(*u.Timeliness)
	}
	if u.Status != nil {
		fields[topicStatus] = codec.TopicStatus.Encode(*u.Status)
	}
	fields.PutLink(topicAssignedIssue, u.AssignedIssueID)
	fields.PutString(topicNotes, u.Notes)

	if len(fields) == 0 {
		return nil
	}
	if _, err := r.store.Update(ctx, r.table, id, fields); err != nil {
		return writeFailed(err, "update topic", "Topic", id)
	}
	return nil
}

// Delete removes a topic permanently.
func (r *TopicRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return models.Required("id")
	}
	if err := r.store.Delete(ctx, r.table, id); err != nil {
		return writeFailed(err, "delete topic", "Topic", id)
	}
	return nil
}

func decodeTopic(rec airtable.Record) *models.Topic {
	f := rec.Fields
	t := &models.Topic{
		ID:                rec.ID,
		Topic:             f.String(topicText),
		Description:       f.String(topicDescription),
		Source:            codec.TopicSource.Decode(f.String(topicSource)),
		SourceURL:         f.String(topicSourceURL),
		PrimaryBrandID:    f.Link(topicPrimaryFit),
		SecondaryBrandIDs: f.Strings(topicSecondaryFit),
		Priority:          codec.Priority.Decode(f.String(topicPriority)),
		Timeliness:        codec.Timeliness.Decode(f.String(topicTimeliness)),
		Status:            codec.TopicStatus.Decode(f.String(topicStatus)),
		AssignedIssueID:   f.Link(topicAssignedIssue),
		Notes:             f.String(topicNotes),
		CreatedAt:         createdAt(rec, topicCreated),
	}
	// pillar is optional on topics, so an empty cell stays empty
	if raw := f.String(topicPillar); raw != "" {
		t.Pillar = codec.Pillar.Decode(raw)
	}
	return t
}

func orDefault[T ~string](v, fallback T) T {
	if v == "" {
		return fallback
	}
	return v
}
