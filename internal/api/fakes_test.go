package api

import (
	"context"
	"sync"

	"github.com/shubh-37/inflections-studio/internal/agents"
	"github.com/shubh-37/inflections-studio/internal/imagegen"
	"github.com/shubh-37/inflections-studio/internal/models"
	"github.com/shubh-37/inflections-studio/internal/repository"
)

type fakeConfig struct {
	airtable, anthropic, replicate error
}

func (c fakeConfig) RequireAirtable() error  { return c.airtable }
func (c fakeConfig) RequireAnthropic() error { return c.anthropic }
func (c fakeConfig) RequireReplicate() error { return c.replicate }

type fakeArticles struct {
	mu       sync.Mutex
	articles []*models.Article
	err      error
	filter   repository.ArticleFilter
	updated  map[string]models.ArticleUpdate
}

func (f *fakeArticles) List(_ context.Context, filter repository.ArticleFilter) ([]*models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = filter
	return f.articles, f.err
}

func (f *fakeArticles) Get(_ context.Context, id string) (*models.Article, error) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, f.err
}

func (f *fakeArticles) Update(_ context.Context, id string, u models.ArticleUpdate) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if f.updated == nil {
		f.updated = map[string]models.ArticleUpdate{}
	}
	f.updated[id] = u
	return f.err
}

type fakePosts struct {
	posts   []*models.LinkedInPost
	err     error
	filter  repository.PostFilter
	created []models.PostDraft
	updated map[string]models.PostUpdate
}

func (f *fakePosts) List(_ context.Context, filter repository.PostFilter) ([]*models.LinkedInPost, error) {
	f.filter = filter
	return f.posts, f.err
}

func (f *fakePosts) Get(_ context.Context, id string) (*models.LinkedInPost, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, f.err
}

func (f *fakePosts) Create(_ context.Context, draft models.PostDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	f.created = append(f.created, draft)
	return "recPostNew", f.err
}

func (f *fakePosts) Update(_ context.Context, id string, u models.PostUpdate) error {
	if f.updated == nil {
		f.updated = map[string]models.PostUpdate{}
	}
	f.updated[id] = u
	return f.err
}

type fakeTopics struct {
	topics  []*models.Topic
	err     error
	filter  repository.TopicFilter
	created []models.TopicDraft
	updated map[string]models.TopicUpdate
	deleted []string
}

func (f *fakeTopics) List(_ context.Context, filter repository.TopicFilter) ([]*models.Topic, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	f.filter = filter
	return f.topics, f.err
}

func (f *fakeTopics) Create(_ context.Context, draft models.TopicDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	f.created = append(f.created, draft)
	return "recTopicNew", f.err
}

func (f *fakeTopics) Update(_ context.Context, id string, u models.TopicUpdate) error {
	if f.updated == nil {
		f.updated = map[string]models.TopicUpdate{}
	}
	f.updated[id] = u
	return f.err
}

func (f *fakeTopics) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeIssues struct {
	issues  []*models.Issue
	err     error
	created []models.IssueDraft
	updated map[string]models.IssueUpdate
}

func (f *fakeIssues) List(context.Context) ([]*models.Issue, error) { return f.issues, f.err }

func (f *fakeIssues) Create(_ context.Context, draft models.IssueDraft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	f.created = append(f.created, draft)
	return "recIssueNew", f.err
}

func (f *fakeIssues) Update(_ context.Context, id string, u models.IssueUpdate) error {
	if f.updated == nil {
		f.updated = map[string]models.IssueUpdate{}
	}
	f.updated[id] = u
	return f.err
}

type fakeBrands struct {
	brands []*models.Brand
	calls  int
}

func (f *fakeBrands) List(context.Context) ([]*models.Brand, error) {
	f.calls++
	return f.brands, nil
}

func (f *fakeBrands) Get(_ context.Context, id string) (*models.Brand, error) {
	f.calls++
	for _, b := range f.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

type fakeGenerator struct {
	article *models.GeneratedArticle
	posts   []models.GeneratedPost
	topics  []models.TopicIdea
	refined string
	err     error

	topicReq models.TopicIdeasRequest
}

func (f *fakeGenerator) GenerateArticle(context.Context, models.ArticleRequest) (*models.GeneratedArticle, error) {
	return f.article, f.err
}

func (f *fakeGenerator) GenerateLinkedInPosts(context.Context, models.LinkedInRequest) ([]models.GeneratedPost, error) {
	return f.posts, f.err
}

func (f *fakeGenerator) GenerateTopicIdeas(_ context.Context, req models.TopicIdeasRequest) ([]models.TopicIdea, error) {
	f.topicReq = req
	return f.topics, f.err
}

func (f *fakeGenerator) RefineContent(context.Context, models.RefineRequest) (string, error) {
	return f.refined, f.err
}

type fakePublisher struct {
	req    models.PushRequest
	result *models.PushResult
	err    error
}

func (f *fakePublisher) Push(_ context.Context, req models.PushRequest) (*models.PushResult, error) {
	f.req = req
	return f.result, f.err
}

type fakeScheduler struct {
	cfg         agents.ScheduleConfig
	scheduled   []agents.ScheduledPost
	unscheduled []string
	err         error
}

func (f *fakeScheduler) ScheduleApproved(_ context.Context, cfg agents.ScheduleConfig) ([]agents.ScheduledPost, error) {
	f.cfg = cfg
	return f.scheduled, f.err
}

func (f *fakeScheduler) Unschedule(_ context.Context, id string) error {
	f.unscheduled = append(f.unscheduled, id)
	return f.err
}

type fakeImages struct {
	req    imagegen.Request
	result *imagegen.Result
	err    error
}

func (f *fakeImages) Generate(_ context.Context, req imagegen.Request) (*imagegen.Result, error) {
	f.req = req
	return f.result, f.err
}

func (f *fakeImages) Check(context.Context, string) (*imagegen.Result, error) {
	return f.result, f.err
}

type fakeHistory struct {
	runs  []*models.GenerationRun
	kind  models.RunKind
	limit int
}

func (f *fakeHistory) ListRuns(_ context.Context, kind models.RunKind, limit int) ([]*models.GenerationRun, error) {
	f.kind, f.limit = kind, limit
	return f.runs, nil
}

type fakePinger struct{ err error }

func (f fakePinger) Health(context.Context) error { return f.err }
