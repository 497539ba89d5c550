// Package api exposes the studio over JSON/HTTP.
package api

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/agents"
	"github.com/shubh-37/inflections-studio/internal/imagegen"
	"github.com/shubh-37/inflections-studio/internal/models"
	"github.com/shubh-37/inflections-studio/internal/repository"
)

type ArticleStore interface {
	List(ctx context.Context, filter repository.ArticleFilter) ([]*models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	Update(ctx context.Context, id string, u models.ArticleUpdate) error
}

type PostStore interface {
	List(ctx context.Context, filter repository.PostFilter) ([]*models.LinkedInPost, error)
	Get(ctx context.Context, id string) (*models.LinkedInPost, error)
	Create(ctx context.Context, draft models.PostDraft) (string, error)
	Update(ctx context.Context, id string, u models.PostUpdate) error
}

type TopicStore interface {
	List(ctx context.Context, filter repository.TopicFilter) ([]*models.Topic, error)
	Create(ctx context.Context, draft models.TopicDraft) (string, error)
	Update(ctx context.Context, id string, u models.TopicUpdate) error
	Delete(ctx context.Context, id string) error
}

type IssueStore interface {
	List(ctx context.Context) ([]*models.Issue, error)
	Create(ctx context.Context, draft models.IssueDraft) (string, error)
	Update(ctx context.Context, id string, u models.IssueUpdate) error
}

type BrandStore interface {
	List(ctx context.Context) ([]*models.Brand, error)
	Get(ctx context.Context, id string) (*models.Brand, error)
}

type Generator interface {
	GenerateArticle(ctx context.Context, req models.ArticleRequest) (*models.GeneratedArticle, error)
	GenerateLinkedInPosts(ctx context.Context, req models.LinkedInRequest) ([]models.GeneratedPost, error)
	GenerateTopicIdeas(ctx context.Context, req models.TopicIdeasRequest) ([]models.TopicIdea, error)
	RefineContent(ctx context.Context, req models.RefineRequest) (string, error)
}

type Publisher interface {
	Push(ctx context.Context, req models.PushRequest) (*models.PushResult, error)
}

type Scheduler interface {
	ScheduleApproved(ctx context.Context, cfg agents.ScheduleConfig) ([]agents.ScheduledPost, error)
	Unschedule(ctx context.Context, postID string) error
}

type ImageGenerator interface {
	Generate(ctx context.Context, req imagegen.Request) (*imagegen.Result, error)
	Check(ctx context.Context, id string) (*imagegen.Result, error)
}

type History interface {
	ListRuns(ctx context.Context, kind models.RunKind, limit int) ([]*models.GenerationRun, error)
}

// Pinger reports the health of an optional dependency.
type Pinger interface {
	Health(ctx context.Context) error
}

// Requirements reports missing provider credentials before a handler runs.
type Requirements interface {
	RequireAirtable() error
	RequireAnthropic() error
	RequireReplicate() error
}

// Deps holds everything the handlers call. Database may be nil.
type Deps struct {
	Config    Requirements
	Articles  ArticleStore
	Posts     PostStore
	Topics    TopicStore
	Issues    IssueStore
	Brands    BrandStore
	Generator Generator
	Publisher Publisher
	Scheduler Scheduler
	Images    ImageGenerator
	History   History
	Database  Pinger
	Logger    *zap.Logger
}

type Server struct {
	Deps
	logger *zap.Logger
}

func NewServer(deps Deps) *Server {
	return &Server{
		Deps:   deps,
		logger: deps.Logger.Named("api"),
	}
}

// Handler returns the routed handler wrapped in the standard middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	store := s.require(s.Config.RequireAirtable)
	claude := s.require(s.Config.RequireAnthropic, s.Config.RequireAirtable)
	replicate := s.require(s.Config.RequireReplicate)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.Handle("GET /dashboard", store(s.handleDashboard))

	mux.Handle("GET /articles", store(s.handleListArticles))
	mux.Handle("GET /articles/{id}", store(s.handleGetArticle))
	mux.Handle("PATCH /articles/{id}", store(s.handleUpdateArticle))

	mux.Handle("GET /topics", store(s.handleListTopics))
	mux.Handle("POST /topics", store(s.handleCreateTopic))
	mux.Handle("PATCH /topics", store(s.handleUpdateTopic))
	mux.Handle("DELETE /topics", store(s.handleDeleteTopic))

	mux.Handle("GET /issues", store(s.handleListIssues))
	mux.Handle("POST /issues", store(s.handleCreateIssue))
	mux.Handle("PATCH /issues", store(s.handleUpdateIssue))

	mux.Handle("GET /linkedin", store(s.handleListPosts))
	mux.Handle("POST /linkedin", store(s.handleCreatePost))
	mux.Handle("POST /linkedin/schedule", store(s.handleSchedulePosts))
	mux.Handle("GET /linkedin/{id}", store(s.handleGetPost))
	mux.Handle("PATCH /linkedin/{id}", store(s.handleUpdatePost))
	mux.Handle("DELETE /linkedin/{id}/schedule", store(s.handleUnschedulePost))

	mux.Handle("GET /brands", store(s.handleListBrands))
	mux.Handle("GET /brands/{id}", store(s.handleGetBrand))

	mux.Handle("POST /push", store(s.handlePush))

	mux.Handle("POST /generate/article", claude(s.handleGenerateArticle))
	mux.Handle("POST /generate/linkedin", claude(s.handleGenerateLinkedIn))
	mux.Handle("POST /generate/refine", claude(s.handleRefine))
	mux.Handle("POST /generate/topics", s.require(s.Config.RequireAnthropic)(s.handleGenerateTopics))
	mux.Handle("POST /generate/image", replicate(s.handleGenerateImage))
	mux.Handle("GET /generate/image", replicate(s.handleImageStatus))

	return Chain(
		RequestID,
		Logger(s.logger),
		Recovery(s.logger),
	)(mux)
}

// require wraps a handler so that it only runs when every check passes.
// A failing check answers with the configuration error.
func (s *Server) require(checks ...func() error) func(http.HandlerFunc) http.Handler {
	return func(next http.HandlerFunc) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, check := range checks {
				if err := check(); err != nil {
					s.respondError(w, r, "Service is not configured", err)
					return
				}
			}
			next(w, r)
		})
	}
}
