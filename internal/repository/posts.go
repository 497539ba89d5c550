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
	postTitle         = "Post Title"
	postSourceArticle = "Source Article"
	postType          = "Post Type"
	postBrandAccount  = "Brand Account"
	postContent       = "Content"
	postHashtags      = "Hashtags"
	postLinkURL       = "Link URL"
	postImageURL      = "Image URL"
	postStatus        = "Status"
	postScheduledDate = "Scheduled Date"
	postScheduledTime = "Scheduled Time"
	postPostedDate    = "Posted Date"
	postURL           = "Post URL"
)

type PostFilter struct {
	Status    models.PostStatus
	BrandID   string
	PostType  models.PostType
	ArticleID string
}

func (f PostFilter) Validate() error {
	switch {
	case f.Status != "" && !f.Status.Valid():
		return invalidFilter("status", string(f.Status))
	case f.PostType != "" && !f.PostType.Valid():
		return invalidFilter("postType", string(f.PostType))
	}
	return nil
}

type PostRepository struct {
	store  Store
	table  string
	logger *zap.Logger
}

func NewPostRepository(store Store, table string, logger *zap.Logger) *PostRepository {
	return &PostRepository{store: store, table: table, logger: logger}
}

// List returns matching posts ordered by scheduled date.
func (r *PostRepository) List(ctx context.Context, filter PostFilter) ([]*models.LinkedInPost, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var conds []string
	if filter.Status != "" {
		conds = append(conds, airtable.Eq(postStatus, codec.PostStatus.Encode(filter.Status)))
	}
	if filter.BrandID != "" {
		conds = append(conds, airtable.LinkContains(postBrandAccount, filter.BrandID))
	}
	if filter.PostType != "" {
		conds = append(conds, airtable.Eq(postType, codec.PostType.Encode(filter.PostType)))
	}
	if filter.ArticleID != "" {
		conds = append(conds, airtable.LinkContains(postSourceArticle, filter.ArticleID))
	}

	records, err := r.store.List(ctx, r.table, airtable.Query{
		Formula: airtable.And(conds...),
		Sort:    []airtable.Sort{asc(postScheduledDate)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]*models.LinkedInPost, 0, len(records))
	for _, rec := range records {
		posts = append(posts, decodePost(rec))
	}
	return posts, nil
}

// GetByStatus is List filtered on status only.
func (r *PostRepository) GetByStatus(ctx context.Context, status models.PostStatus) ([]*models.LinkedInPost, error) {
	return r.List(ctx, PostFilter{Status: status})
}

func (r *PostRepository) Get(ctx context.Context, id string) (*models.LinkedInPost, error) {
	rec, err := find(ctx, r.store, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	if rec == nil {
		return nil, nil
	}
	return decodePost(*rec), nil
}

func (r *PostRepository) Create(ctx context.Context, draft models.PostDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	status := draft.Status
	if status == "" {
		status = models.PostDrafted
	}

	fields := airtable.Fields{
		postType:         codec.PostType.Encode(draft.PostType),
		postBrandAccount: []string{draft.BrandID},
		postContent:      draft.Content,
		postStatus:       codec.PostStatus.Encode(status),
	}
	fields.SetIf(postTitle, draft.Title)
	if draft.SourceArticleID != "" {
		fields[postSourceArticle] = []string{draft.SourceArticleID}
	}
	fields.SetIf(postHashtags, draft.Hashtags)
	fields.SetIf(postLinkURL, draft.LinkURL)
	fields.SetIf(postImageURL, draft.ImageURL)
	fields.SetIf(postScheduledDate, draft.ScheduledDate)
	fields.SetIf(postScheduledTime, draft.ScheduledTime)

	rec, err := r.store.Create(ctx, r.table, fields)
	if err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}
	return rec.ID, nil
}

// Update writes only the fields set in u. Passing a pointer to "" for
// ScheduledDate clears it; an empty update makes no call.
func (r *PostRepository) Update(ctx context.Context, id string, u models.PostUpdate) error {
	if id == "" {
		return models.Required("id")
	}
	if err := u.Validate(); err != nil {
		return err
	}

	fields := airtable.Fields{}
	fields.PutString(postTitle, u.Title)
	fields.PutLink(postSourceArticle, u.SourceArticleID)
	if u.PostType != nil {
		fields[postType] = codec.PostType.Encode(*u.PostType)
	}
	fields.PutLink(postBrandAccount, u.BrandID)
	fields.PutString(postContent, u.Content)
	fields.PutString(postHashtags, u.Hashtags)
	fields.PutString(postLinkURL, u.LinkURL)
	fields.PutString(postImageURL, u.ImageURL)
	if u.Status != nil {
		fields[postStatus] = codec.PostStatus.Encode(*u.Status)
	}
	fields.PutString(postScheduledDate, u.ScheduledDate)
	fields.PutString(postScheduledTime, u.ScheduledTime)
	fields.PutString(postPostedDate, u.PostedDate)
	fields.PutString(postURL, u.PostURL)

	if len(fields) == 0 {
		return nil
	}
	if _, err := r.store.Update(ctx, r.table, id, fields); err != nil {
		return writeFailed(err, "update post", "LinkedIn post", id)
	}
	return nil
}

func decodePost(rec airtable.Record) *models.LinkedInPost {
	f := rec.Fields
	content := f.String(postContent)
	return &models.LinkedInPost{
		ID:              rec.ID,
		Title:           f.String(postTitle),
		SourceArticleID: f.Link(postSourceArticle),
		PostType:        codec.PostType.Decode(f.String(postType)),
		BrandID:         f.Link(postBrandAccount),
		Content:         content,
		CharacterCount:  models.CountCharacters(content),
		Hashtags:        f.String(postHashtags),
		LinkURL:         f.String(postLinkURL),
		ImageURL:        f.String(postImageURL),
		Status:          codec.PostStatus.Decode(f.String(postStatus)),
		ScheduledDate:   f.String(postScheduledDate),
		ScheduledTime:   f.String(postScheduledTime),
		PostedDate:      f.String(postPostedDate),
		PostURL:         f.String(postURL),
	}
}
