package models

import "time"

// Topic is an entry in the topics bank.
type Topic struct {
	ID                string      `json:"id"`
	Topic             string      `json:"topic"`
	Description       string      `json:"description,omitempty"`
	Source            TopicSource `json:"source"`
	SourceURL         string      `json:"sourceUrl,omitempty"`
	PrimaryBrandID    string      `json:"primaryBrandId,omitempty"`
	SecondaryBrandIDs []string    `json:"secondaryBrandIds"`
	Pillar            Pillar      `json:"pillar,omitempty"`
	Priority          Priority    `json:"priority"`
	Timeliness        Timeliness  `json:"timeliness"`
	Status            TopicStatus `json:"status"`
	AssignedIssueID   string      `json:"assignedIssueId,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type TopicDraft struct {
	Topic             string      `json:"topic"`
	Description       string      `json:"description,omitempty"`
	Source            TopicSource `json:"source,omitempty"`
	SourceURL         string      `json:"sourceUrl,omitempty"`
	PrimaryBrandID    string      `json:"primaryBrandId,omitempty"`
	SecondaryBrandIDs []string    `json:"secondaryBrandIds,omitempty"`
	Pillar            Pillar      `json:"pillar,omitempty"`
	Priority          Priority    `json:"priority,omitempty"`
	Timeliness        Timeliness  `json:"timeliness,omitempty"`
	Status            TopicStatus `json:"status,omitempty"`
	AssignedIssueID   string      `json:"assignedIssueId,omitempty"`
	Notes             string      `json:"notes,omitempty"`
}

func (d TopicDraft) Validate() error {
	if d.Topic == "" {
		return Required("topic")
	}
	switch {
	case d.Source != "" && !d.Source.Valid():
		return invalid("source", string(d.Source))
	case d.Pillar != "" && !d.Pillar.Valid():
		return invalid("pillar", string(d.Pillar))
	case d.Priority != "" && !d.Priority.Valid():
		return invalid("priority", string(d.Priority))
	case d.Timeliness != "" && !d.Timeliness.Valid():
		return invalid("timeliness", string(d.Timeliness))
	case d.Status != "" && !d.Status.Valid():
		return invalid("status", string(d.Status))
	}
	return nil
}

// TopicUpdate is a partial update. Pillar may be cleared with a pointer to "".
type TopicUpdate struct {
	Topic             *string      `json:"topic,omitempty"`
	Description       *string      `json:"description,omitempty"`
	Source            *TopicSource `json:"source,omitempty"`
	SourceURL         *string      `json:"sourceUrl,omitempty"`
	PrimaryBrandID    *string      `json:"primaryBrandId,omitempty"`
	SecondaryBrandIDs *[]string    `json:"secondaryBrandIds,omitempty"`
	Pillar            *Pillar      `json:"pillar,omitempty"`
	Priority          *Priority    `json:"priority,omitempty"`
	Timeliness        *Timeliness  `json:"timeliness,omitempty"`
	Status            *TopicStatus `json:"status,omitempty"`
	AssignedIssueID   *string      `json:"assignedIssueId,omitempty"`
	Notes             *string      `json:"notes,omitempty"`
}

func (u TopicUpdate) Validate() error {
	switch {
	case u.Topic != nil && *u.Topic == "":
		return &ValidationError{Field: "topic", Message: "cannot be cleared"}
	case u.Source != nil && !u.Source.Valid():
		return invalid("source", string(*u.Source))
	case u.Pillar != nil && *u.Pillar != "" && !u.Pillar.Valid():
		return invalid("pillar", string(*u.Pillar))
	case u.Priority != nil && !u.Priority.Valid():
		return invalid("priority", string(*u.Priority))
	case u.Timeliness != nil && !u.Timeliness.Valid():
		return invalid("timeliness", string(*u.Timeliness))
	case u.Status != nil && !u.Status.Valid():
		return invalid("status", string(*u.Status))
	}
	return nil
}
