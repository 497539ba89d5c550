package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

// maxBodyBytes bounds request bodies. Refine requests carry whole articles.
const maxBodyBytes = 1 << 20

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}

// respondError maps the error taxonomy onto a status code. action names the
// failed operation ("Failed to fetch articles") and is used as the message
// when the error itself is not meant for the caller.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, action string, err error) {
	var (
		validationErr *models.ValidationError
		notFoundErr   *models.NotFoundError
		configErr     *models.ConfigError
		upstreamErr   *models.UpstreamError
		parseErr      *models.ParseError
		timeoutErr    *models.TimeoutError
	)

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error(), "")
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error(), "")
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found", err.Error())
	case errors.As(err, &configErr):
		writeError(w, http.StatusInternalServerError, configErr.Error(), "")
	case errors.As(err, &timeoutErr):
		s.logger.Warn(action, zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
		writeError(w, http.StatusGatewayTimeout, action, timeoutErr.Error())
	case errors.As(err, &parseErr):
		s.logger.Error(action, zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   action,
			Details: parseErr.Reason,
			Raw:     parseErr.Raw,
		})
	case errors.As(err, &upstreamErr):
		s.logger.Error(action, zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
		details := upstreamErr.Details
		if details == "" {
			details = upstreamErr.Error()
		}
		writeError(w, http.StatusInternalServerError, action, details)
	default:
		s.logger.Error(action, zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
		writeError(w, http.StatusInternalServerError, action, err.Error())
	}
}

// decodeJSON reads the request body into dst. Malformed bodies are
// validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &models.ValidationError{Message: "request body is empty"}
		}
		return &models.ValidationError{Message: fmt.Sprintf("invalid request body: %v", err)}
	}
	return nil
}
