package models

import "unicode/utf8"

// LinkedInPost is a social post, usually derived from an article.
// CharacterCount is derived from Content and never stored.
type LinkedInPost struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	SourceArticleID string     `json:"sourceArticleId,omitempty"`
	PostType        PostType   `json:"postType"`
	BrandID         string     `json:"brandId"`
	Content         string     `json:"content"`
	CharacterCount  int        `json:"characterCount"`
	Hashtags        string     `json:"hashtags,omitempty"`
	LinkURL         string     `json:"linkUrl,omitempty"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	Status          PostStatus `json:"status"`
	ScheduledDate   string     `json:"scheduledDate,omitempty"`
	ScheduledTime   string     `json:"scheduledTime,omitempty"`
	PostedDate      string     `json:"postedDate,omitempty"`
	PostURL         string     `json:"postUrl,omitempty"`
}

// CountCharacters is the character count shown for post content.
func CountCharacters(content string) int {
	return utf8.RuneCountInString(content)
}

// PostDraft carries the fields of a new post.
type PostDraft struct {
	Title           string     `json:"title"`
	SourceArticleID string     `json:"sourceArticleId,omitempty"`
	PostType        PostType   `json:"postType"`
	BrandID         string     `json:"brandId"`
	Content         string     `json:"content"`
	Hashtags        string     `json:"hashtags,omitempty"`
	LinkURL         string     `json:"linkUrl,omitempty"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	Status          PostStatus `json:"status,omitempty"`
	ScheduledDate   string     `json:"scheduledDate,omitempty"`
	ScheduledTime   string     `json:"scheduledTime,omitempty"`
}

func (d PostDraft) Validate() error {
	if d.BrandID == "" {
		return Required("brandId")
	}
	if d.Content == "" {
		return Required("content")
	}
	if !d.PostType.Valid() {
		return invalid("postType", string(d.PostType))
	}
	if d.Status != "" && !d.Status.Valid() {
		return invalid("status", string(d.Status))
	}
	return nil
}

// PostUpdate is a partial update. Setting ScheduledDate to "" un-schedules
// the post; leaving it nil does not touch the stored date.
type PostUpdate struct {
	Title           *string     `json:"title,omitempty"`
	SourceArticleID *string     `json:"sourceArticleId,omitempty"`
	PostType        *PostType   `json:"postType,omitempty"`
	BrandID         *string     `json:"brandId,omitempty"`
	Content         *string     `json:"content,omitempty"`
	Hashtags        *string     `json:"hashtags,omitempty"`
	LinkURL         *string     `json:"linkUrl,omitempty"`
	ImageURL        *string     `json:"imageUrl,omitempty"`
	Status          *PostStatus `json:"status,omitempty"`
	ScheduledDate   *string     `json:"scheduledDate,omitempty"`
	ScheduledTime   *string     `json:"scheduledTime,omitempty"`
	PostedDate      *string     `json:"postedDate,omitempty"`
	PostURL         *string     `json:"postUrl,omitempty"`
}

func (u PostUpdate) Validate() error {
	if u.BrandID != nil && *u.BrandID == "" {
		return &ValidationError{Field: "brandId", Message: "cannot be cleared"}
	}
	if u.PostType != nil && !u.PostType.Valid() {
		return invalid("postType", string(*u.PostType))
	}
	if u.Status != nil && !u.Status.Valid() {
		return invalid("status", string(*u.Status))
	}
	return nil
}
