package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shubh-37/inflections-studio/internal/models"
	"github.com/shubh-37/inflections-studio/internal/repository"
)

const healthTimeout = 2 * time.Second

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// handleHealth reports liveness. The database is checked only when configured
// and a failure there degrades the status without failing the health check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Timestamp: time.Now().UTC()}
	if s.Database != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		resp.Checks = map[string]string{"database": "ok"}
		if err := s.Database.Health(ctx); err != nil {
			resp.Status = "degraded"
			resp.Checks["database"] = err.Error()
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type historyResponse struct {
	Runs []*models.GenerationRun `json:"runs"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := models.RunKind(q.Get("kind"))
	if kind != "" && !kind.Valid() {
		writeError(w, http.StatusBadRequest, "kind: invalid value \""+string(kind)+"\"", "")
		return
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit: must be a non-negative integer", "")
			return
		}
		limit = n
	}

	runs, err := s.History.ListRuns(r.Context(), kind, limit)
	if err != nil {
		s.respondError(w, r, "Failed to fetch history", err)
		return
	}
	writeJSON(w, http.StatusOK, historyResponse{Runs: runs})
}

type statusCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

type dashboardResponse struct {
	Articles statusCounts `json:"articles"`
	Posts    statusCounts `json:"posts"`
	Topics   statusCounts `json:"topics"`
}

// handleDashboard counts articles, posts and topics by status. The three
// lists are fetched concurrently; the first failure cancels the rest.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var (
		articles []*models.Article
		posts    []*models.LinkedInPost
		topics   []*models.Topic
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		articles, err = s.Articles.List(ctx, repository.ArticleFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.Posts.List(ctx, repository.PostFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		topics, err = s.Topics.List(ctx, repository.TopicFilter{})
		return err
	})
	if err := g.Wait(); err != nil {
		s.respondError(w, r, "Failed to load dashboard", err)
		return
	}

	resp := dashboardResponse{
		Articles: newStatusCounts(len(articles)),
		Posts:    newStatusCounts(len(posts)),
		Topics:   newStatusCounts(len(topics)),
	}
	for _, a := range articles {
		resp.Articles.ByStatus[string(a.Status)]++
	}
	for _, p := range posts {
		resp.Posts.ByStatus[string(p.Status)]++
	}
	for _, t := range topics {
		resp.Topics.ByStatus[string(t.Status)]++
	}
	writeJSON(w, http.StatusOK, resp)
}

func newStatusCounts(total int) statusCounts {
	return statusCounts{Total: total, ByStatus: map[string]int{}}
}
