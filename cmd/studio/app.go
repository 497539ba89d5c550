package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/config"
	"github.com/shubh-37/inflections-studio/internal/agents"
	"github.com/shubh-37/inflections-studio/internal/airtable"
	"github.com/shubh-37/inflections-studio/internal/api"
	"github.com/shubh-37/inflections-studio/internal/database"
	"github.com/shubh-37/inflections-studio/internal/imagegen"
	"github.com/shubh-37/inflections-studio/internal/models"
	"github.com/shubh-37/inflections-studio/internal/repository"
	slackpkg "github.com/shubh-37/inflections-studio/internal/slack"
)

// history is implemented by the Postgres repository and by its no-op stand-in.
type history interface {
	agents.Recorder
	imagegen.JobStore
	ListRuns(ctx context.Context, kind models.RunKind, limit int) ([]*models.GenerationRun, error)
}

// app holds the wired components. Providers whose credentials are missing
// are still constructed; requests to them fail on the configuration check.
type app struct {
	db       *database.DB
	brands   *repository.BrandRepository
	articles *repository.ArticleRepository
	posts    *repository.PostRepository
	topics   *repository.TopicRepository
	issues   *repository.IssueRepository
	deps     api.Deps
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}

	var hist history = database.NopHistory{}
	var pinger api.Pinger
	if cfg.HistoryEnabled() {
		db, err := database.NewDB(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.CreateTables(ctx, db.Pool); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
		a.db = db
		hist = database.NewHistoryRepository(db.Pool)
		pinger = db
	} else {
		logger.Info("DATABASE_URL not set, generation history disabled")
	}

	store := airtable.NewClient(cfg.Airtable.APIURL, cfg.Airtable.Token, cfg.Airtable.BaseID, logger)
	repoLogger := logger.Named("repository")
	a.brands = repository.NewBrandRepository(store, cfg.Airtable.BrandsTable, repoLogger)
	a.articles = repository.NewArticleRepository(store, cfg.Airtable.ArticlesTable, repoLogger)
	a.posts = repository.NewPostRepository(store, cfg.Airtable.PostsTable, repoLogger)
	a.topics = repository.NewTopicRepository(store, cfg.Airtable.TopicsTable, repoLogger)
	a.issues = repository.NewIssueRepository(store, cfg.Airtable.IssuesTable, repoLogger)

	var notifier agents.Notifier
	if cfg.SlackEnabled() {
		notifier = slackpkg.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, "", logger)
	}

	completer := agents.NewClaudeCompleter(cfg.Anthropic.APIKey, cfg.Anthropic.BaseURL, cfg.Anthropic.Model, logger)
	replicate := imagegen.NewClient(cfg.Replicate.APIURL, cfg.Replicate.APIToken, cfg.Replicate.Model, logger)
	poller := imagegen.NewPoller(replicate, cfg.Replicate.PollInterval, cfg.Replicate.PollMaxAttempts, logger)

	a.deps = api.Deps{
		Config:    cfg,
		Articles:  a.articles,
		Posts:     a.posts,
		Topics:    a.topics,
		Issues:    a.issues,
		Brands:    a.brands,
		Generator: agents.NewGenerator(completer, a.brands, hist, logger),
		Publisher: agents.NewPublisher(a.articles, a.posts, notifier, logger),
		Scheduler: agents.NewSchedulerAgent(a.posts, logger),
		Images:    imagegen.NewService(replicate, poller, hist, logger),
		History:   hist,
		Database:  pinger,
		Logger:    logger,
	}

	logger.Info("components initialized",
		zap.Bool("history", cfg.HistoryEnabled()),
		zap.Bool("slack", cfg.SlackEnabled()),
		zap.Bool("anthropic", cfg.RequireAnthropic() == nil),
		zap.Bool("replicate", cfg.RequireReplicate() == nil),
	)
	return a, nil
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
