package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/agents"
	"github.com/shubh-37/inflections-studio/internal/imagegen"
	"github.com/shubh-37/inflections-studio/internal/models"
)

type testEnv struct {
	config    fakeConfig
	articles  *fakeArticles
	posts     *fakePosts
	topics    *fakeTopics
	issues    *fakeIssues
	brands    *fakeBrands
	generator *fakeGenerator
	publisher *fakePublisher
	scheduler *fakeScheduler
	images    *fakeImages
	history   *fakeHistory
	database  Pinger
}

func newTestEnv() *testEnv {
	return &testEnv{
		articles:  &fakeArticles{},
		posts:     &fakePosts{},
		topics:    &fakeTopics{},
		issues:    &fakeIssues{},
		brands:    &fakeBrands{brands: []*models.Brand{{ID: "recBrand", Name: "Inflections"}}},
		generator: &fakeGenerator{},
		publisher: &fakePublisher{},
		scheduler: &fakeScheduler{},
		images:    &fakeImages{},
		history:   &fakeHistory{},
	}
}

func (e *testEnv) handler() http.Handler {
	return NewServer(Deps{
		Config:    e.config,
		Articles:  e.articles,
		Posts:     e.posts,
		Topics:    e.topics,
		Issues:    e.issues,
		Brands:    e.brands,
		Generator: e.generator,
		Publisher: e.publisher,
		Scheduler: e.scheduler,
		Images:    e.images,
		History:   e.history,
		Database:  e.database,
		Logger:    zap.NewNop(),
	}).Handler()
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestMissingConfigurationNeverReachesStore(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.config.airtable = &models.ConfigError{Setting: "AIRTABLE_PERSONAL_ACCESS_TOKEN"}

	rec := env.do(t, http.MethodGet, "/brands", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[errorResponse](t, rec)
	assert.Equal(t, "AIRTABLE_PERSONAL_ACCESS_TOKEN is not configured", body.Error)
	assert.Zero(t, env.brands.calls)
}

func TestMissingReplicateToken(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.config.replicate = &models.ConfigError{Setting: "REPLICATE_API_TOKEN"}

	rec := env.do(t, http.MethodPost, "/generate/image", `{"prompt":"a bridge"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "REPLICATE_API_TOKEN is not configured", decodeBody[errorResponse](t, rec).Error)
	assert.Empty(t, env.images.req.Description)
}

func TestListArticles_PassesFilterAndReturnsArray(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.articles.articles = []*models.Article{{ID: "recA", Title: "Why PMOs Stall", Status: models.ArticleDrafting}}

	rec := env.do(t, http.MethodGet, "/articles?status=drafting&brandId=recBrand&issueId=recIssue", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	articles := decodeBody[[]models.Article](t, rec)
	require.Len(t, articles, 1)
	assert.Equal(t, "recA", articles[0].ID)
	assert.Equal(t, models.ArticleDrafting, env.articles.filter.Status)
	assert.Equal(t, "recBrand", env.articles.filter.BrandID)
	assert.Equal(t, "recIssue", env.articles.filter.IssueID)
}

func TestGetArticle_NotFound(t *testing.T) {
	t.Parallel()

	rec := newTestEnv().do(t, http.MethodGet, "/articles/recMissing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Article not found", decodeBody[errorResponse](t, rec).Error)
}

func TestUpdateArticle(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	rec := env.do(t, http.MethodPatch, "/articles/recA", `{"status":"approved","excerpt":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[successResponse](t, rec).Success)

	u := env.articles.updated["recA"]
	require.NotNil(t, u.Status)
	assert.Equal(t, models.ArticleApproved, *u.Status)
	require.NotNil(t, u.Excerpt, "an explicit empty string clears the field")
	assert.Empty(t, *u.Excerpt)
	assert.Nil(t, u.Content, "absent fields are left untouched")
}

func TestUpdate_MissingRecordIs404(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.articles.err = &models.NotFoundError{Entity: "Article", ID: "recGone"}
	env.topics.err = &models.NotFoundError{Entity: "Topic", ID: "recGone"}

	rec := env.do(t, http.MethodPatch, "/articles/recGone", `{"status":"approved"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Article not found", decodeBody[errorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPatch, "/topics", `{"id":"recGone","status":"approved"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Topic not found", decodeBody[errorResponse](t, rec).Error)
}

func TestUpdateArticle_InvalidStatus(t *testing.T) {
	t.Parallel()

	rec := newTestEnv().do(t, http.MethodPatch, "/articles/recA", `{"status":"shipped"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Error, "status")
}

func TestMalformedBody(t *testing.T) {
	t.Parallel()

	rec := newTestEnv().do(t, http.MethodPost, "/topics", `{"topic":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Error, "invalid request body")
}

func TestTopics(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		rec := env.do(t, http.MethodPost, "/topics", `{"topic":"AI in the PMO","priority":"high"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[successResponse](t, rec)
		assert.True(t, body.Success)
		assert.Equal(t, "recTopicNew", body.ID)
		require.Len(t, env.topics.created, 1)
		assert.Equal(t, models.PriorityHigh, env.topics.created[0].Priority)
	})

	t.Run("update takes id from body", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		rec := env.do(t, http.MethodPatch, "/topics", `{"id":"recT","status":"approved","pillar":""}`)

		require.Equal(t, http.StatusOK, rec.Code)
		u, ok := env.topics.updated["recT"]
		require.True(t, ok)
		assert.Equal(t, models.TopicApproved, *u.Status)
		require.NotNil(t, u.Pillar)
		assert.Empty(t, *u.Pillar)
	})

	t.Run("update without id", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		rec := env.do(t, http.MethodPatch, "/topics", `{"status":"approved"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing topic ID", decodeBody[errorResponse](t, rec).Error)
		assert.Empty(t, env.topics.updated)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		rec := env.do(t, http.MethodDelete, "/topics?id=recT", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"recT"}, env.topics.deleted)
	})

	t.Run("delete without id", func(t *testing.T) {
		t.Parallel()

		rec := newTestEnv().do(t, http.MethodDelete, "/topics", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid filter", func(t *testing.T) {
		t.Parallel()

		rec := newTestEnv().do(t, http.MethodGet, "/topics?priority=urgent", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIssues(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	rec := env.do(t, http.MethodPost, "/issues", `{"issueNumber":12,"title":"Delivery"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "recIssueNew", decodeBody[successResponse](t, rec).ID)

	rec = env.do(t, http.MethodPost, "/issues", `{"title":"No number"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/issues", `{"title":"Renamed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing issue ID", decodeBody[errorResponse](t, rec).Error)

	rec = env.do(t, http.MethodPatch, "/issues", `{"id":"recI","status":"ready"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.IssueReady, *env.issues.updated["recI"].Status)
}

func TestPosts(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.posts.posts = []*models.LinkedInPost{{ID: "recP", Status: models.PostApproved}}

	rec := env.do(t, http.MethodGet, "/linkedin?postType=hot_take&articleId=recA", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.PostHotTake, env.posts.filter.PostType)
	assert.Equal(t, "recA", env.posts.filter.ArticleID)

	rec = env.do(t, http.MethodGet, "/linkedin/recP", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "recP", decodeBody[models.LinkedInPost](t, rec).ID)

	rec = env.do(t, http.MethodGet, "/linkedin/recNope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPatch, "/linkedin/recP", `{"scheduledDate":"2026-11-02"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-11-02", *env.posts.updated["recP"].ScheduledDate)
}

func TestSchedule(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.scheduler.scheduled = []agents.ScheduledPost{{PostID: "recP", Date: "2026-11-02", Time: "09:00"}}

	rec := env.do(t, http.MethodPost, "/linkedin/schedule", `{"postsPerDay":2,"timezone":"Europe/London"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[scheduleResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, env.scheduler.scheduled, body.Scheduled)
	assert.Equal(t, 2, env.scheduler.cfg.PostsPerDay)

	rec = env.do(t, http.MethodDelete, "/linkedin/recP/schedule", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"recP"}, env.scheduler.unscheduled)
}

func TestUnschedule_NotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.scheduler.err = &models.NotFoundError{Entity: "LinkedIn post", ID: "recNope"}

	rec := env.do(t, http.MethodDelete, "/linkedin/recNope/schedule", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LinkedIn post not found", decodeBody[errorResponse](t, rec).Error)
}

func TestBrands(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/brands", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]models.Brand](t, rec), 1)

	rec = env.do(t, http.MethodGet, "/brands/recOther", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Brand not found", decodeBody[errorResponse](t, rec).Error)
}

func TestPush_AcceptsLinkedInPostsAlias(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.publisher.result = &models.PushResult{ArticleID: "recA", PostIDs: []string{"recP1", "recP2"}}

	rec := env.do(t, http.MethodPost, "/push", `{
		"article": {"title":"Why PMOs Stall","primaryBrandId":"recBrand","contentType":"feature","pillar":"delivery_excellence"},
		"linkedInPosts": [
			{"postType":"hot_take","content":"Hot"},
			{"postType":"article_share","content":"Share"}
		]
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, env.publisher.req.Posts, 2)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "recA", body["articleId"])
	assert.Equal(t, []any{"recP1", "recP2"}, body["postIds"])
	assert.Equal(t, []any{"recP1", "recP2"}, body["linkedInPostIds"])
}

func TestGenerateArticle_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		details string
	}{
		{
			name:    "missing field",
			err:     models.Required("topic"),
			status:  http.StatusBadRequest,
			message: "topic: is required",
		},
		{
			name:    "unknown brand",
			err:     &models.NotFoundError{Entity: "Brand", ID: "recNope"},
			status:  http.StatusNotFound,
			message: "Brand not found",
		},
		{
			name:    "provider failure",
			err:     &models.UpstreamError{Service: "anthropic", Status: 529, Details: `{"type":"overloaded_error"}`},
			status:  http.StatusInternalServerError,
			message: "Failed to generate article",
			details: `{"type":"overloaded_error"}`,
		},
		{
			name:    "unparseable reply",
			err:     &models.ParseError{Flow: "article", Raw: "Sure! Here it is", Reason: "reply is not valid JSON"},
			status:  http.StatusInternalServerError,
			message: "Failed to generate article",
			details: "reply is not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			env.generator.err = tt.err

			rec := env.do(t, http.MethodPost, "/generate/article", `{"brandId":"recBrand"}`)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeBody[errorResponse](t, rec)
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, tt.details, body.Details)
		})
	}
}

func TestGenerateArticle_ParseErrorKeepsRawReply(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.generator.err = &models.ParseError{Flow: "article", Raw: "Sure! Here it is", Reason: "reply is not valid JSON"}

	rec := env.do(t, http.MethodPost, "/generate/article", `{}`)
	assert.Equal(t, "Sure! Here it is", decodeBody[errorResponse](t, rec).Raw)
}

func TestGenerateResponses(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.generator.article = &models.GeneratedArticle{Title: "Why PMOs Stall", SuggestedTags: []string{"pmo"}}
	env.generator.posts = []models.GeneratedPost{{Type: models.PostHotTake, Content: "Hot", Hashtags: []string{}}}
	env.generator.topics = []models.TopicIdea{{Topic: "AI in the PMO", Description: "d"}}
	env.generator.refined = "Tighter."

	rec := env.do(t, http.MethodPost, "/generate/article", `{"brandId":"recBrand"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Why PMOs Stall", decodeBody[models.GeneratedArticle](t, rec).Title)

	rec = env.do(t, http.MethodPost, "/generate/linkedin", `{"brandId":"recBrand"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[linkedInResponse](t, rec).Posts, 1)

	rec = env.do(t, http.MethodPost, "/generate/topics", `{"brandName":"Inflections","count":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[topicsResponse](t, rec).Topics, 1)
	assert.Equal(t, 3, env.generator.topicReq.Count)

	rec = env.do(t, http.MethodPost, "/generate/refine", `{"brandId":"recBrand"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tighter.", decodeBody[refineResponse](t, rec).Content)
}

func TestGenerateTopics_RecordStoreOnlyNeededForBrandLookup(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.config.airtable = &models.ConfigError{Setting: "AIRTABLE_BASE_ID"}
	env.generator.topics = []models.TopicIdea{}

	rec := env.do(t, http.MethodPost, "/generate/topics", `{"brandName":"Inflections"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/generate/topics", `{"brandId":"recBrand"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "AIRTABLE_BASE_ID is not configured", decodeBody[errorResponse](t, rec).Error)
}

func TestGenerateImage(t *testing.T) {
	t.Parallel()

	t.Run("succeeded", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		env.images.result = &imagegen.Result{
			Status:       models.ImageSucceeded,
			PredictionID: "p1",
			ImageURL:     "https://img/1.webp",
			Prompt:       "a bridge. editorial. No text or words in the image. High quality, 16:9 aspect ratio.",
		}

		rec := env.do(t, http.MethodPost, "/generate/image", `{"prompt":"a bridge","style":"editorial"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "https://img/1.webp", body["imageUrl"])
		assert.Equal(t, "a bridge", env.images.req.Description)
	})

	t.Run("pending", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		env.images.result = &imagegen.Result{
			Status:       models.ImageProcessing,
			PredictionID: "p1",
			GetURL:       "https://api.replicate.com/v1/predictions/p1",
		}

		rec := env.do(t, http.MethodPost, "/generate/image", `{"prompt":"a bridge"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "processing", body["status"])
		assert.Equal(t, "p1", body["predictionId"])
		assert.NotContains(t, body, "imageUrl")
	})

	t.Run("provider reports failure", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		env.images.err = &models.UpstreamError{
			Service: "replicate",
			Details: "NSFW content detected",
			Err:     fmt.Errorf("%w: failed", imagegen.ErrJobFailed),
		}

		rec := env.do(t, http.MethodPost, "/generate/image", `{"prompt":"a bridge"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody[errorResponse](t, rec)
		assert.Equal(t, "Image generation failed", body.Error)
		assert.Equal(t, "NSFW content detected", body.Details)
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		env.images.err = &models.UpstreamError{Service: "replicate", Err: errors.New("dial tcp: connection refused")}

		rec := env.do(t, http.MethodPost, "/generate/image", `{"prompt":"a bridge"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody[errorResponse](t, rec)
		assert.Equal(t, "Failed to generate image", body.Error)
		assert.Contains(t, body.Details, "connection refused")
	})

	t.Run("poll timeout", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		env.images.err = &models.TimeoutError{Operation: "image prediction p1", Attempts: 30}

		rec := env.do(t, http.MethodPost, "/generate/image", `{"prompt":"a bridge","wait":true}`)

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		assert.Contains(t, decodeBody[errorResponse](t, rec).Details, "30 attempts")
	})
}

func TestImageStatus(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	rec := env.do(t, http.MethodGet, "/generate/image", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing prediction ID", decodeBody[errorResponse](t, rec).Error)

	env.images.result = &imagegen.Result{Status: models.ImageProcessing, PredictionID: "p1"}
	rec = env.do(t, http.MethodGet, "/generate/image?id=p1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "processing", body["status"])
	assert.Contains(t, body, "imageUrl")
	assert.Nil(t, body["imageUrl"])
	assert.Nil(t, body["error"])
	assert.NotContains(t, body, "prompt")

	env.images.result = &imagegen.Result{Status: models.ImageSucceeded, PredictionID: "p1", ImageURL: "https://img/1.webp", Prompt: "a bridge. editorial"}
	rec = env.do(t, http.MethodGet, "/generate/image?id=p1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body = map[string]any{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "https://img/1.webp", body["imageUrl"])
	assert.Equal(t, "a bridge. editorial", body["prompt"])
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.articles.articles = []*models.Article{
		{ID: "a1", Status: models.ArticleDrafting},
		{ID: "a2", Status: models.ArticleDrafting},
		{ID: "a3", Status: models.ArticlePublished},
	}
	env.posts.posts = []*models.LinkedInPost{{ID: "p1", Status: models.PostApproved}}

	rec := env.do(t, http.MethodGet, "/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[dashboardResponse](t, rec)
	assert.Equal(t, 3, body.Articles.Total)
	assert.Equal(t, 2, body.Articles.ByStatus["drafting"])
	assert.Equal(t, 1, body.Posts.ByStatus["approved"])
	assert.Zero(t, body.Topics.Total)
}

func TestDashboard_FailsWhenAListFails(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.posts.err = &models.UpstreamError{Service: "airtable", Status: 503}

	rec := env.do(t, http.MethodGet, "/dashboard", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load dashboard", decodeBody[errorResponse](t, rec).Error)
}

func TestHistory(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	env.history.runs = []*models.GenerationRun{{ID: "run-1", Kind: models.RunTopics}}

	rec := env.do(t, http.MethodGet, "/history?kind=topics&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[historyResponse](t, rec).Runs, 1)
	assert.Equal(t, models.RunTopics, env.history.kind)
	assert.Equal(t, 5, env.history.limit)

	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/history?kind=poem", "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodGet, "/history?limit=-1", "").Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := newTestEnv().do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[healthResponse](t, rec)
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Checks)

	env := newTestEnv()
	env.database = fakePinger{err: errors.New("connection refused")}
	rec = env.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody[healthResponse](t, rec)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "connection refused", body.Checks["database"])
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := newTestEnv().do(t, http.MethodPut, "/articles", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
