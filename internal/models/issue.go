package models

// Issue is one numbered edition of the publication.
type Issue struct {
	ID               string      `json:"id"`
	IssueNumber      int         `json:"issueNumber"`
	Title            string      `json:"title"`
	PublishDate      string      `json:"publishDate,omitempty"`
	Status           IssueStatus `json:"status"`
	ThemeDescription string      `json:"themeDescription,omitempty"`
	Notes            string      `json:"notes,omitempty"`
}

// IssueDraft carries the fields of a new issue. The caller assigns the number.
type IssueDraft struct {
	IssueNumber      int         `json:"issueNumber"`
	Title            string      `json:"title"`
	PublishDate      string      `json:"publishDate,omitempty"`
	Status           IssueStatus `json:"status,omitempty"`
	ThemeDescription string      `json:"themeDescription,omitempty"`
	Notes            string      `json:"notes,omitempty"`
}

func (d IssueDraft) Validate() error {
	if d.IssueNumber <= 0 {
		return Required("issueNumber")
	}
	if d.Title == "" {
		return Required("title")
	}
	if d.Status != "" && !d.Status.Valid() {
		return invalid("status", string(d.Status))
	}
	return nil
}

// IssueUpdate is a partial update. A nil field is left untouched, a pointer to
// the zero value clears the stored field.
type IssueUpdate struct {
	IssueNumber      *int         `json:"issueNumber,omitempty"`
	Title            *string      `json:"title,omitempty"`
	PublishDate      *string      `json:"publishDate,omitempty"`
	Status           *IssueStatus `json:"status,omitempty"`
	ThemeDescription *string      `json:"themeDescription,omitempty"`
	Notes            *string      `json:"notes,omitempty"`
}

func (u IssueUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return &ValidationError{Field: "title", Message: "cannot be cleared"}
	}
	if u.Status != nil && !u.Status.Valid() {
		return invalid("status", string(*u.Status))
	}
	return nil
}
