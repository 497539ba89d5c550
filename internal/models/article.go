package models

import (
	"fmt"
	"time"
)

// Article is a long-form piece in the publication.
type Article struct {
	ID                  string        `json:"id"`
	Title               string        `json:"title"`
	IssueID             string        `json:"issueId,omitempty"`
	ContentType         ContentType   `json:"contentType"`
	PrimaryBrandID      string        `json:"primaryBrandId"`
	SecondaryBrandIDs   []string      `json:"secondaryBrandIds"`
	Pillar              Pillar        `json:"pillar"`
	Status              ArticleStatus `json:"status"`
	Author              string        `json:"author,omitempty"`
	Content             string        `json:"content"`
	Excerpt             string        `json:"excerpt,omitempty"`
	MetaDescription     string        `json:"metaDescription,omitempty"`
	TargetWordCount     int           `json:"targetWordCount,omitempty"`
	ActualWordCount     int           `json:"actualWordCount,omitempty"`
	FeaturedImageURL    string        `json:"featuredImageUrl,omitempty"`
	FeaturedImagePrompt string        `json:"featuredImagePrompt,omitempty"`
	PublishDate         string        `json:"publishDate,omitempty"`
	PublishedURL        string        `json:"publishedUrl,omitempty"`
	CreatedAt           time.Time     `json:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// ArticleDraft carries the fields of a new article.
type ArticleDraft struct {
	Title               string        `json:"title"`
	IssueID             string        `json:"issueId,omitempty"`
	ContentType         ContentType   `json:"contentType"`
	PrimaryBrandID      string        `json:"primaryBrandId"`
	SecondaryBrandIDs   []string      `json:"secondaryBrandIds,omitempty"`
	Pillar              Pillar        `json:"pillar"`
	Status              ArticleStatus `json:"status,omitempty"`
	Author              string        `json:"author,omitempty"`
	Content             string        `json:"content,omitempty"`
	Excerpt             string        `json:"excerpt,omitempty"`
	MetaDescription     string        `json:"metaDescription,omitempty"`
	TargetWordCount     int           `json:"targetWordCount,omitempty"`
	FeaturedImageURL    string        `json:"featuredImageUrl,omitempty"`
	FeaturedImagePrompt string        `json:"featuredImagePrompt,omitempty"`
	PublishDate         string        `json:"publishDate,omitempty"`
}

func (d ArticleDraft) Validate() error {
	if d.Title == "" {
		return Required("title")
	}
	if d.PrimaryBrandID == "" {
		return Required("primaryBrandId")
	}
	if !d.ContentType.Valid() {
		return invalid("contentType", string(d.ContentType))
	}
	if !d.Pillar.Valid() {
		return invalid("pillar", string(d.Pillar))
	}
	if d.Status != "" && !d.Status.Valid() {
		return invalid("status", string(d.Status))
	}
	return nil
}

// ArticleUpdate is a partial update. A nil field is omitted from the write;
// a pointer to "" (or an empty slice) clears the stored value.
type ArticleUpdate struct {
	Title               *string        `json:"title,omitempty"`
	IssueID             *string        `json:"issueId,omitempty"`
	ContentType         *ContentType   `json:"contentType,omitempty"`
	PrimaryBrandID      *string        `json:"primaryBrandId,omitempty"`
	SecondaryBrandIDs   *[]string      `json:"secondaryBrandIds,omitempty"`
	Pillar              *Pillar        `json:"pillar,omitempty"`
	Status              *ArticleStatus `json:"status,omitempty"`
	Author              *string        `json:"author,omitempty"`
	Content             *string        `json:"content,omitempty"`
	Excerpt             *string        `json:"excerpt,omitempty"`
	MetaDescription     *string        `json:"metaDescription,omitempty"`
	TargetWordCount     *int           `json:"targetWordCount,omitempty"`
	ActualWordCount     *int           `json:"actualWordCount,omitempty"`
	FeaturedImageURL    *string        `json:"featuredImageUrl,omitempty"`
	FeaturedImagePrompt *string        `json:"featuredImagePrompt,omitempty"`
	PublishDate         *string        `json:"publishDate,omitempty"`
	PublishedURL        *string        `json:"publishedUrl,omitempty"`
}

func (u ArticleUpdate) Validate() error {
	if u.Title != nil && *u.Title == "" {
		return &ValidationError{Field: "title", Message: "cannot be cleared"}
	}
	if u.PrimaryBrandID != nil && *u.PrimaryBrandID == "" {
		return &ValidationError{Field: "primaryBrandId", Message: "cannot be cleared"}
	}
	if u.ContentType != nil && !u.ContentType.Valid() {
		return invalid("contentType", string(*u.ContentType))
	}
	if u.Pillar != nil && !u.Pillar.Valid() {
		return invalid("pillar", string(*u.Pillar))
	}
	if u.Status != nil && !u.Status.Valid() {
		return invalid("status", string(*u.Status))
	}
	return nil
}

func invalid(field, value string) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("unknown value %q", value)}
}
