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
	articleTitle               = "Title"
	articleIssue               = "Issue"
	articleContentType         = "Content Type"
	articlePrimaryBrand        = "Primary Brand"
	articleSecondaryBrands     = "Secondary Brands"
	articlePillar              = "Pillar"
	articleStatus              = "Status"
	articleAuthor              = "Author"
	articleContent             = "Content"
	articleExcerpt             = "Excerpt"
	articleMetaDescription     = "Meta Description"
	articleTargetWordCount     = "Target Word Count"
	articleActualWordCount     = "Actual Word Count"
	articleFeaturedImageURL    = "Featured Image URL"
	articleFeaturedImagePrompt = "Featured Image Prompt"
	articlePublishDate         = "Publish Date"
	articlePublishedURL        = "Published URL"
	articleCreated             = "Created"
	articleLastModified        = "Last Modified"
)

// ArticleFilter holds optional equality predicates, combined with AND.
type ArticleFilter struct {
	Status      models.ArticleStatus
	BrandID     string
	Pillar      models.Pillar
	ContentType models.ContentType
	IssueID     string
}

type ArticleRepository struct {
	store  Store
	table  string
	logger *zap.Logger
}

func NewArticleRepository(store Store, table string, logger *zap.Logger) *ArticleRepository {
	return &ArticleRepository{store: store, table: table, logger: logger}
}

func (f ArticleFilter) Validate() error {
	switch {
	case f.Status != "" && !f.Status.Valid():
		return invalidFilter("status", string(f.Status))
	case f.Pillar != "" && !f.Pillar.Valid():
		return invalidFilter("pillar", string(f.Pillar))
	case f.ContentType != "" && !f.ContentType.Valid():
		return invalidFilter("contentType", string(f.ContentType))
	}
	return nil
}

// List returns matching articles, newest first.
func (r *ArticleRepository) List(ctx context.Context, filter ArticleFilter) ([]*models.Article, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var conds []string
	if filter.Status != "" {
		conds = append(conds, airtable.Eq(articleStatus, codec.ArticleStatus.Encode(filter.Status)))
	}
	if filter.BrandID != "" {
		conds = append(conds, airtable.LinkContains(articlePrimaryBrand, filter.BrandID))
	}
	if filter.Pillar != "" {
		conds = append(conds, airtable.Eq(articlePillar, codec.Pillar.Encode(filter.Pillar)))
	}
	if filter.ContentType != "" {
		conds = append(conds, airtable.Eq(articleContentType, codec.ContentType.Encode(filter.ContentType)))
	}
	if filter.IssueID != "" {
		conds = append(conds, airtable.LinkContains(articleIssue, filter.IssueID))
	}

	records, err := r.store.List(ctx, r.table, airtable.Query{
		Formula: airtable.And(conds...),
		Sort:    []airtable.Sort{desc(articleCreated)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}

	articles := make([]*models.Article, 0, len(records))
	for _, rec := range records {
		articles = append(articles, decodeArticle(rec))
	}
	return articles, nil
}

// Get returns nil when the article does not exist.
func (r *ArticleRepository) Get(ctx context.Context, id string) (*models.Article, error) {
	rec, err := find(ctx, r.store, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get article %s: %w", id, err)
	}
	if rec == nil {
		return nil, nil
	}
	return decodeArticle(*rec), nil
}

// Create stores a new article and returns its id. Optional fields are only
// sent when set. The store keeps a single secondary brand, so any brands
// after the first are dropped.
func (r *ArticleRepository) Create(ctx context.Context, draft models.ArticleDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	status := draft.Status
	if status == "" {
		status = models.ArticleDrafting
	}

	fields := airtable.Fields{
		articleTitle:        draft.Title,
		articleContentType:  codec.ContentType.Encode(draft.ContentType),
		articlePrimaryBrand: []string{draft.PrimaryBrandID},
		articlePillar:       codec.Pillar.Encode(draft.Pillar),
		articleStatus:       codec.ArticleStatus.Encode(status),
	}
	if draft.IssueID != "" {
		fields[articleIssue] = []string{draft.IssueID}
	}
	if secondary := r.secondaryBrands(draft.SecondaryBrandIDs); len(secondary) > 0 {
		fields[articleSecondaryBrands] = secondary
	}
	fields.SetIf(articleAuthor, draft.Author)
	fields.SetIf(articleContent, draft.Content)
	fields.SetIf(articleExcerpt, draft.Excerpt)
	fields.SetIf(articleMetaDescription, draft.MetaDescription)
	fields.SetIf(articleFeaturedImageURL, draft.FeaturedImageURL)
	fields.SetIf(articleFeaturedImagePrompt, draft.FeaturedImagePrompt)
	fields.SetIf(articlePublishDate, draft.PublishDate)
	if draft.TargetWordCount > 0 {
		fields[articleTargetWordCount] = draft.TargetWordCount
	}

	rec, err := r.store.Create(ctx, r.table, fields)
	if err != nil {
		return "", fmt.Errorf("failed to create article: %w", err)
	}
	return rec.ID, nil
}

// Update writes only the fields set in u. An empty update makes no call.
func (r *ArticleRepository) Update(ctx context.Context, id string, u models.ArticleUpdate) error {
	if id == "" {
		return models.Required("id")
	}
	if err := u.Validate(); err != nil {
		return err
	}

	fields := airtable.Fields{}
	fields.PutString(articleTitle, u.Title)
	fields.PutLink(articleIssue, u.IssueID)
	if u.ContentType != nil {
		fields[articleContentType] = codec.ContentType.Encode(*u.ContentType)
	}
	fields.PutLink(articlePrimaryBrand, u.PrimaryBrandID)
	if u.SecondaryBrandIDs != nil {
		secondary := r.secondaryBrands(*u.SecondaryBrandIDs)
		fields.PutLinks(articleSecondaryBrands, &secondary)
	}
	if u.Pillar != nil {
		fields[articlePillar] = codec.Pillar.Encode(*u.Pillar)
	}
	if u.Status != nil {
		fields[articleStatus] = codec.ArticleStatus.Encode(*u.Status)
	}
	fields.PutString(articleAuthor, u.Author)
	fields.PutString(articleContent, u.Content)
	fields.PutString(articleExcerpt, u.Excerpt)
	fields.PutString(articleMetaDescription, u.MetaDescription)
	fields.PutInt(articleTargetWordCount, u.TargetWordCount)
	fields.PutInt(articleActualWordCount, u.ActualWordCount)
	fields.PutString(articleFeaturedImageURL, u.FeaturedImageURL)
	fields.PutString(articleFeaturedImagePrompt, u.FeaturedImagePrompt)
	fields.PutString(articlePublishDate, u.PublishDate)
	fields.PutString(articlePublishedURL, u.PublishedURL)

	if len(fields) == 0 {
		return nil
	}
	if _, err := r.store.Update(ctx, r.table, id, fields); err != nil {
		return writeFailed(err, "update article", "Article", id)
	}
	return nil
}

func (r *ArticleRepository) secondaryBrands(ids []string) []string {
	kept := make([]string, 0, 1)
	for _, id := range ids {
		if id != "" {
			kept = append(kept, id)
		}
	}
	if len(kept) > 1 {
		r.logger.Warn("store keeps one secondary brand, dropping the rest",
			zap.String("kept", kept[0]),
			zap.Strings("dropped", kept[1:]),
		)
		kept = kept[:1]
	}
	return kept
}

func decodeArticle(rec airtable.Record) *models.Article {
	f := rec.Fields
	return &models.Article{
		ID:                  rec.ID,
		Title:               f.String(articleTitle),
		IssueID:             f.Link(articleIssue),
		ContentType:         codec.ContentType.Decode(f.String(articleContentType)),
		PrimaryBrandID:      f.Link(articlePrimaryBrand),
		SecondaryBrandIDs:   f.Strings(articleSecondaryBrands),
		Pillar:              codec.Pillar.Decode(f.String(articlePillar)),
		Status:              codec.ArticleStatus.Decode(f.String(articleStatus)),
		Author:              f.String(articleAuthor),
		Content:             f.String(articleContent),
		Excerpt:             f.String(articleExcerpt),
		MetaDescription:     f.String(articleMetaDescription),
		TargetWordCount:     f.Int(articleTargetWordCount),
		ActualWordCount:     f.Int(articleActualWordCount),
		FeaturedImageURL:    f.String(articleFeaturedImageURL),
		FeaturedImagePrompt: f.String(articleFeaturedImagePrompt),
		PublishDate:         f.String(articlePublishDate),
		PublishedURL:        f.String(articlePublishedURL),
		CreatedAt:           createdAt(rec, articleCreated),
		UpdatedAt:           f.Time(articleLastModified),
	}
}
