package agents

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

type ArticleCreator interface {
	Create(ctx context.Context, draft models.ArticleDraft) (string, error)
}

type PostCreator interface {
	Create(ctx context.Context, draft models.PostDraft) (string, error)
}

// Notifier announces completed pushes. Implementations must not block the
// push on delivery problems.
type Notifier interface {
	NotifyPush(ctx context.Context, article models.ArticleDraft, result *models.PushResult)
}

type Publisher struct {
	articles ArticleCreator
	posts    PostCreator
	notifier Notifier
	logger   *zap.Logger
}

// NewPublisher builds a publisher. notifier may be nil.
func NewPublisher(articles ArticleCreator, posts PostCreator, notifier Notifier, logger *zap.Logger) *Publisher {
	return &Publisher{
		articles: articles,
		posts:    posts,
		notifier: notifier,
		logger:   logger.Named("publisher"),
	}
}

// Push creates the article and then each post in request order, linked to
// the new article. A failed article aborts the push. A failed post is
// logged, reported in PushResult.Failed and the remaining posts continue.
func (p *Publisher) Push(ctx context.Context, req models.PushRequest) (*models.PushResult, error) {
	if err := req.Article.Validate(); err != nil {
		return nil, err
	}

	posts := make([]models.PostDraft, len(req.Posts))
	for i, post := range req.Posts {
		if post.BrandID == "" {
			post.BrandID = req.Article.PrimaryBrandID
		}
		if post.Title == "" {
			post.Title = req.Article.Title
		}
		if err := post.Validate(); err != nil {
			return nil, fmt.Errorf("posts[%d]: %w", i, err)
		}
		posts[i] = post
	}

	articleID, err := p.articles.Create(ctx, req.Article)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	p.logger.Info("article pushed", zap.String("article_id", articleID), zap.Int("posts", len(posts)))

	result := &models.PushResult{ArticleID: articleID, PostIDs: []string{}}
	for i, post := range posts {
		post.SourceArticleID = articleID

		id, err := p.posts.Create(ctx, post)
		if err != nil {
			p.logger.Error("failed to create post, continuing",
				zap.String("article_id", articleID),
				zap.Int("index", i),
				zap.Error(err),
			)
			result.Failed = append(result.Failed, models.PushFailure{Index: i, Error: err.Error()})
			continue
		}
		result.PostIDs = append(result.PostIDs, id)
	}

	if p.notifier != nil {
		p.notifier.NotifyPush(ctx, req.Article, result)
	}
	return result, nil
}
