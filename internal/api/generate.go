package api

import (
	"errors"
	"net/http"

	"github.com/shubh-37/inflections-studio/internal/agents"
	"github.com/shubh-37/inflections-studio/internal/imagegen"
	"github.com/shubh-37/inflections-studio/internal/models"
)

func (s *Server) handleGenerateArticle(w http.ResponseWriter, r *http.Request) {
	var req models.ArticleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, "Failed to generate article", err)
		return
	}
	article, err := s.Generator.GenerateArticle(r.Context(), req)
	if err != nil {
		s.respondError(w, r, "Failed to generate article", err)
		return
	}
	writeJSON(w, http.StatusOK, article)
}

type linkedInResponse struct {
	Posts []models.GeneratedPost `json:"posts"`
}

func (s *Server) handleGenerateLinkedIn(w http.ResponseWriter, r *http.Request) {
	var req models.LinkedInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, "Failed to generate LinkedIn posts", err)
		return
	}
	posts, err := s.Generator.GenerateLinkedInPosts(r.Context(), req)
	if err != nil {
		s.respondError(w, r, "Failed to generate LinkedIn posts", err)
		return
	}
	writeJSON(w, http.StatusOK, linkedInResponse{Posts: posts})
}

type topicsResponse struct {
	Topics []models.TopicIdea `json:"topics"`
}

// handleGenerateTopics only needs the record store when a brand is looked up.
func (s *Server) handleGenerateTopics(w http.ResponseWriter, r *http.Request) {
	var req models.TopicIdeasRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, "Failed to generate topics", err)
		return
	}
	if req.BrandID != "" {
		if err := s.Config.RequireAirtable(); err != nil {
			s.respondError(w, r, "Failed to generate topics", err)
			return
		}
	}
	topics, err := s.Generator.GenerateTopicIdeas(r.Context(), req)
	if err != nil {
		s.respondError(w, r, "Failed to generate topics", err)
		return
	}
	writeJSON(w, http.StatusOK, topicsResponse{Topics: topics})
}

type refineResponse struct {
	Content string `json:"content"`
}

func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	var req models.RefineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, "Failed to refine content", err)
		return
	}
	content, err := s.Generator.RefineContent(r.Context(), req)
	if err != nil {
		s.respondError(w, r, "Failed to refine content", err)
		return
	}
	writeJSON(w, http.StatusOK, refineResponse{Content: content})
}

type pushRequest struct {
	models.PushRequest
	// LinkedInPosts is accepted as an alias of Posts.
	LinkedInPosts []models.PostDraft `json:"linkedInPosts,omitempty"`
}

type pushResponse struct {
	Success bool `json:"success"`
	*models.PushResult
	LinkedInPostIDs []string `json:"linkedInPostIds"`
}

func (s *Server) handlePush(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, "Failed to push content", err)
		return
	}
	if len(req.Posts) == 0 {
		req.Posts = req.LinkedInPosts
	}

	result, err := s.Publisher.Push(r.Context(), req.PushRequest)
	if err != nil {
		s.respondError(w, r, "Failed to push content", err)
		return
	}
	writeJSON(w, http.StatusOK, pushResponse{
		Success:         true,
		PushResult:      result,
		LinkedInPostIDs: result.PostIDs,
	})
}

type scheduleResponse struct {
	Success   bool                   `json:"success"`
	Scheduled []agents.ScheduledPost `json:"scheduled"`
}

func (s *Server) handleSchedulePosts(w http.ResponseWriter, r *http.Request) {
	var cfg agents.ScheduleConfig
	if err := decodeJSON(w, r, &cfg); err != nil {
		s.respondError(w, r, "Failed to schedule posts", err)
		return
	}
	scheduled, err := s.Scheduler.ScheduleApproved(r.Context(), cfg)
	if err != nil {
		s.respondError(w, r, "Failed to schedule posts", err)
		return
	}
	writeJSON(w, http.StatusOK, scheduleResponse{Success: true, Scheduled: scheduled})
}

func (s *Server) handleUnschedulePost(w http.ResponseWriter, r *http.Request) {
	if err := s.Scheduler.Unschedule(r.Context(), r.PathValue("id")); err != nil {
		s.respondError(w, r, "Failed to unschedule post", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

type imageResponse struct {
	Success bool `json:"success"`
	*imagegen.Result
}

func (s *Server) handleGenerateImage(w http.ResponseWriter, r *http.Request) {
	var req imagegen.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, "Failed to generate image", err)
		return
	}
	result, err := s.Images.Generate(r.Context(), req)
	if err != nil {
		action := "Failed to generate image"
		if errors.Is(err, imagegen.ErrJobFailed) {
			action = "Image generation failed"
		}
		s.respondError(w, r, action, err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{Success: true, Result: result})
}

// imageStatusResponse always carries imageUrl and error, null when absent.
// prompt is only known for jobs submitted through this server.
type imageStatusResponse struct {
	Status   models.ImageJobStatus `json:"status"`
	ImageURL *string               `json:"imageUrl"`
	Error    *string               `json:"error"`
	Prompt   string                `json:"prompt,omitempty"`
}

func (s *Server) handleImageStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Missing prediction ID", "")
		return
	}
	result, err := s.Images.Check(r.Context(), id)
	if err != nil {
		s.respondError(w, r, "Failed to check image status", err)
		return
	}

	resp := imageStatusResponse{Status: result.Status, Prompt: result.Prompt}
	if result.ImageURL != "" {
		resp.ImageURL = &result.ImageURL
	}
	if result.Error != "" {
		resp.Error = &result.Error
	}
	writeJSON(w, http.StatusOK, resp)
}
