package agents

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

func TestClaudeCompleter_Complete(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-20250514",` +
			`"content":[{"type":"text","text":"{\"ok\":true}"}],"stop_reason":"end_turn",` +
			`"usage":{"input_tokens":10,"output_tokens":5}}`))
	}))
	defer srv.Close()

	c := NewClaudeCompleter("test-key", srv.URL+"/", "claude-sonnet-4-20250514", zap.NewNop())
	text, err := c.Complete(context.Background(), CompletionRequest{
		System:    "be brief",
		Prompt:    "hello",
		MaxTokens: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, text)

	assert.Equal(t, "claude-sonnet-4-20250514", got["model"])
	assert.EqualValues(t, 42, got["max_tokens"])
	assert.NotNil(t, got["system"])
}

func TestClaudeCompleter_ErrorKeepsPayload(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"invalid_request_error","message":"max_tokens too large"}}`))
	}))
	defer srv.Close()

	c := NewClaudeCompleter("test-key", srv.URL+"/", "m", zap.NewNop())
	_, err := c.Complete(context.Background(), CompletionRequest{Prompt: "hi", MaxTokens: 1})
	require.ErrorIs(t, err, models.ErrUpstream)

	var uerr *models.UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "anthropic", uerr.Service)
	assert.Equal(t, http.StatusBadRequest, uerr.Status)
	assert.Contains(t, uerr.Details, "max_tokens too large")
	assert.EqualValues(t, 1, calls.Load())
}
