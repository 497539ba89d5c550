package agents

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

const (
	defaultTopicCount = 5
	maxTopicCount     = 20
)

// BrandSource resolves a brand by id regardless of its active flag.
// A missing brand is (nil, nil).
type BrandSource interface {
	Get(ctx context.Context, id string) (*models.Brand, error)
}

// Recorder stores the outcome of generation runs.
type Recorder interface {
	RecordRun(ctx context.Context, run *models.GenerationRun) error
}

type Generator struct {
	completer Completer
	brands    BrandSource
	recorder  Recorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewGenerator wires the generation flows. recorder may be nil.
func NewGenerator(completer Completer, brands BrandSource, recorder Recorder, logger *zap.Logger) *Generator {
	return &Generator{
		completer: completer,
		brands:    brands,
		recorder:  recorder,
		logger:    logger.Named("generator"),
		now:       time.Now,
	}
}

func (g *Generator) GenerateArticle(ctx context.Context, req models.ArticleRequest) (*models.GeneratedArticle, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	brand, err := g.brand(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}

	run := models.NewGenerationRun(models.RunArticle, brand.ID, req.Topic, g.now())
	raw, err := g.completer.Complete(ctx, CompletionRequest{
		System:    buildArticleSystemPrompt(brand, req.ContentType, req.TargetWordCount),
		Prompt:    buildArticleUserPrompt(req),
		MaxTokens: articleMaxTokens,
	})
	if err != nil {
		g.finish(ctx, run, "", err)
		return nil, err
	}

	article, err := parseArticle(raw)
	g.finish(ctx, run, raw, err)
	if err != nil {
		return nil, err
	}

	g.logger.Info("article generated",
		zap.String("brand", brand.Name),
		zap.String("content_type", string(req.ContentType)),
		zap.Int("words", len(strings.Fields(article.Content))),
	)
	return article, nil
}

// GenerateLinkedInPosts returns the three derivative posts of an article
// ordered hot take, article share, quote graphic.
func (g *Generator) GenerateLinkedInPosts(ctx context.Context, req models.LinkedInRequest) ([]models.GeneratedPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	brand, err := g.brand(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}

	run := models.NewGenerationRun(models.RunLinkedIn, brand.ID, req.ArticleTitle, g.now())
	raw, err := g.completer.Complete(ctx, CompletionRequest{
		System:    buildLinkedInSystemPrompt(brand),
		Prompt:    buildLinkedInUserPrompt(req),
		MaxTokens: linkedInMaxTokens,
	})
	if err != nil {
		g.finish(ctx, run, "", err)
		return nil, err
	}

	posts, err := parseLinkedIn(raw)
	g.finish(ctx, run, raw, err)
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GenerateTopicIdeas asks for Count ideas. The reply may hold more or fewer.
func (g *Generator) GenerateTopicIdeas(ctx context.Context, req models.TopicIdeasRequest) ([]models.TopicIdea, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tc, err := g.topicContext(ctx, req)
	if err != nil {
		return nil, err
	}
	count := req.Count
	switch {
	case count == 0:
		count = defaultTopicCount
	case count > maxTopicCount:
		count = maxTopicCount
	}

	run := models.NewGenerationRun(models.RunTopics, req.BrandID, tc.BrandName+" / "+tc.Pillar, g.now())
	raw, err := g.completer.Complete(ctx, CompletionRequest{
		Prompt:    buildTopicsPrompt(tc, count, req.Theme, req.NewsURL),
		MaxTokens: topicsMaxTokens,
	})
	if err != nil {
		g.finish(ctx, run, "", err)
		return nil, err
	}

	ideas, err := parseTopics(raw)
	g.finish(ctx, run, raw, err)
	if err != nil {
		return nil, err
	}
	if len(ideas) != count {
		g.logger.Debug("topic count differs from request",
			zap.Int("requested", count),
			zap.Int("returned", len(ideas)),
		)
	}
	return ideas, nil
}

// RefineContent returns the model's revision of the content verbatim.
func (g *Generator) RefineContent(ctx context.Context, req models.RefineRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	brand, err := g.brand(ctx, req.BrandID)
	if err != nil {
		return "", err
	}

	run := models.NewGenerationRun(models.RunRefine, brand.ID, truncate(req.Instruction, 120), g.now())
	raw, err := g.completer.Complete(ctx, CompletionRequest{
		System:    buildRefineSystemPrompt(brand),
		Prompt:    buildRefineUserPrompt(req),
		MaxTokens: refineMaxTokens,
	})
	g.finish(ctx, run, raw, err)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

func (g *Generator) brand(ctx context.Context, id string) (*models.Brand, error) {
	brand, err := g.brands.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, &models.NotFoundError{Entity: "Brand", ID: id}
	}
	return brand, nil
}

// topicContext merges the looked-up brand with explicit request fields.
// Explicit fields win.
func (g *Generator) topicContext(ctx context.Context, req models.TopicIdeasRequest) (topicContext, error) {
	var tc topicContext
	if req.BrandID != "" {
		brand, err := g.brand(ctx, req.BrandID)
		if err != nil {
			return tc, err
		}
		tc.BrandName = brand.Name
		tc.BrandVoice = orString(brand.VoiceSummary, joinOr(brand.VoiceProfile.Tone, defaultTone))
		tc.TargetAudience = orString(brand.TargetAudience, defaultAudience)
	}

	tc.BrandName = orString(req.BrandName, tc.BrandName)
	tc.BrandVoice = orString(req.BrandVoice, orString(tc.BrandVoice, defaultTone))
	tc.TargetAudience = orString(req.TargetAudience, orString(tc.TargetAudience, defaultAudience))

	if req.Pillar != "" {
		tc.Pillar = pillarLabels[req.Pillar]
		tc.PillarDescription = orString(req.PillarDescription, PillarDescriptions[req.Pillar])
	} else {
		tc.Pillar = "all content pillars"
		tc.PillarDescription = orString(req.PillarDescription, "technology leadership, delivery, workforce and culture")
	}
	return tc, nil
}

func (g *Generator) finish(ctx context.Context, run *models.GenerationRun, raw string, err error) {
	run.DurationMS = g.now().Sub(run.CreatedAt).Milliseconds()

	var parseErr *models.ParseError
	switch {
	case errors.As(err, &parseErr):
		run.Outcome = models.OutcomeParse
		run.Error = parseErr.Reason
		run.RawReply = raw
		g.logger.Warn("unparseable generation response",
			zap.String("kind", string(run.Kind)),
			zap.String("reason", parseErr.Reason),
		)
	case err != nil:
		run.Outcome = models.OutcomeFailed
		run.Error = err.Error()
		g.logger.Error("generation failed", zap.String("kind", string(run.Kind)), zap.Error(err))
	}

	if g.recorder == nil {
		return
	}
	// history is best-effort and must not fail the request
	if rerr := g.recorder.RecordRun(context.WithoutCancel(ctx), run); rerr != nil {
		g.logger.Warn("failed to record generation run", zap.Error(rerr))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
