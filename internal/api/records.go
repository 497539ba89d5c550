package api

import (
	"net/http"

	"github.com/shubh-37/inflections-studio/internal/models"
	"github.com/shubh-37/inflections-studio/internal/repository"
)

func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	articles, err := s.Articles.List(r.Context(), repository.ArticleFilter{
		Status:      models.ArticleStatus(q.Get("status")),
		BrandID:     q.Get("brandId"),
		Pillar:      models.Pillar(q.Get("pillar")),
		ContentType: models.ContentType(q.Get("contentType")),
		IssueID:     q.Get("issueId"),
	})
	if err != nil {
		s.respondError(w, r, "Failed to fetch articles", err)
		return
	}
	writeJSON(w, http.StatusOK, articles)
}

func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	article, err := s.Articles.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, "Failed to fetch article", err)
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "Article not found", "")
		return
	}
	writeJSON(w, http.StatusOK, article)
}

func (s *Server) handleUpdateArticle(w http.ResponseWriter, r *http.Request) {
	var u models.ArticleUpdate
	if err := decodeJSON(w, r, &u); err != nil {
		s.respondError(w, r, "Failed to update article", err)
		return
	}
	if err := s.Articles.Update(r.Context(), r.PathValue("id"), u); err != nil {
		s.respondError(w, r, "Failed to update article", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	topics, err := s.Topics.List(r.Context(), repository.TopicFilter{
		Status:   models.TopicStatus(q.Get("status")),
		Priority: models.Priority(q.Get("priority")),
		BrandID:  q.Get("brandId"),
		Pillar:   models.Pillar(q.Get("pillar")),
	})
	if err != nil {
		s.respondError(w, r, "Failed to fetch topics", err)
		return
	}
	writeJSON(w, http.StatusOK, topics)
}

func (s *Server) handleCreateTopic(w http.ResponseWriter, r *http.Request) {
	var draft models.TopicDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		s.respondError(w, r, "Failed to create topic", err)
		return
	}
	id, err := s.Topics.Create(r.Context(), draft)
	if err != nil {
		s.respondError(w, r, "Failed to create topic", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, ID: id})
}

// handleUpdateTopic takes the topic id from the body alongside the changes.
func (s *Server) handleUpdateTopic(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
		models.TopicUpdate
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.respondError(w, r, "Failed to update topic", err)
		return
	}
	if body.ID == "" {
		writeError(w, http.StatusBadRequest, "Missing topic ID", "")
		return
	}
	if err := s.Topics.Update(r.Context(), body.ID, body.TopicUpdate); err != nil {
		s.respondError(w, r, "Failed to update topic", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleDeleteTopic(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing topic ID", "")
		return
	}
	if err := s.Topics.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, "Failed to delete topic", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleListIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := s.Issues.List(r.Context())
	if err != nil {
		s.respondError(w, r, "Failed to fetch issues", err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

func (s *Server) handleCreateIssue(w http.ResponseWriter, r *http.Request) {
	var draft models.IssueDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		s.respondError(w, r, "Failed to create issue", err)
		return
	}
	id, err := s.Issues.Create(r.Context(), draft)
	if err != nil {
		s.respondError(w, r, "Failed to create issue", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, ID: id})
}

func (s *Server) handleUpdateIssue(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
		models.IssueUpdate
	}
	if err := decodeJSON(w, r, &body); err != nil {
		s.respondError(w, r, "Failed to update issue", err)
		return
	}
	if body.ID == "" {
		writeError(w, http.StatusBadRequest, "Missing issue ID", "")
		return
	}
	if err := s.Issues.Update(r.Context(), body.ID, body.IssueUpdate); err != nil {
		s.respondError(w, r, "Failed to update issue", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	posts, err := s.Posts.List(r.Context(), repository.PostFilter{
		Status:    models.PostStatus(q.Get("status")),
		BrandID:   q.Get("brandId"),
		PostType:  models.PostType(q.Get("postType")),
		ArticleID: q.Get("articleId"),
	})
	if err != nil {
		s.respondError(w, r, "Failed to fetch LinkedIn posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	post, err := s.Posts.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, "Failed to fetch LinkedIn post", err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "LinkedIn post not found", "")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var draft models.PostDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		s.respondError(w, r, "Failed to create LinkedIn post", err)
		return
	}
	id, err := s.Posts.Create(r.Context(), draft)
	if err != nil {
		s.respondError(w, r, "Failed to create LinkedIn post", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true, ID: id})
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	var u models.PostUpdate
	if err := decodeJSON(w, r, &u); err != nil {
		s.respondError(w, r, "Failed to update LinkedIn post", err)
		return
	}
	if err := s.Posts.Update(r.Context(), r.PathValue("id"), u); err != nil {
		s.respondError(w, r, "Failed to update LinkedIn post", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := s.Brands.List(r.Context())
	if err != nil {
		s.respondError(w, r, "Failed to fetch brands", err)
		return
	}
	writeJSON(w, http.StatusOK, brands)
}

func (s *Server) handleGetBrand(w http.ResponseWriter, r *http.Request) {
	brand, err := s.Brands.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.respondError(w, r, "Failed to fetch brand", err)
		return
	}
	if brand == nil {
		writeError(w, http.StatusNotFound, "Brand not found", "")
		return
	}
	writeJSON(w, http.StatusOK, brand)
}
