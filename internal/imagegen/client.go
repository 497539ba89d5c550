package imagegen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/replicate/replicate-go"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

const service = "replicate"

// Prediction is the provider's view of one image job.
type Prediction struct {
	ID     string
	Status models.ImageJobStatus
	Output any
	Error  any
	GetURL string
}

// ImageURL returns the first output URL. Output is either a list of URLs
// or a single URL depending on the model.
func (p *Prediction) ImageURL() string {
	switch out := p.Output.(type) {
	case string:
		return out
	case []string:
		if len(out) > 0 {
			return out[0]
		}
	case []any:
		if len(out) > 0 {
			s, _ := out[0].(string)
			return s
		}
	}
	return ""
}

// ErrorMessage is the provider's failure reason, if any.
func (p *Prediction) ErrorMessage() string {
	switch e := p.Error.(type) {
	case nil:
		return ""
	case string:
		return e
	default:
		b, _ := json.Marshal(e)
		return string(b)
	}
}

// Client submits image predictions for one model. model is either
// "owner/name", which runs the model's latest version, or
// "owner/name:version".
type Client struct {
	api    *replicate.Client
	apiErr error
	model  string
	logger *zap.Logger
}

func NewClient(baseURL, token, model string, logger *zap.Logger) *Client {
	opts := []replicate.ClientOption{replicate.WithToken(token)}
	if baseURL != "" {
		opts = append(opts, replicate.WithBaseURL(strings.TrimRight(baseURL, "/")))
	}
	api, err := replicate.NewClient(opts...)
	return &Client{
		api:    api,
		apiErr: err,
		model:  model,
		logger: logger.Named("replicate"),
	}
}

// Submit creates a prediction. The returned prediction is usually still
// starting.
func (c *Client) Submit(ctx context.Context, prompt string) (*Prediction, error) {
	if c.apiErr != nil {
		return nil, &models.ConfigError{Setting: "REPLICATE_API_TOKEN"}
	}

	input := replicate.PredictionInput{
		"prompt":         prompt,
		"num_outputs":    1,
		"aspect_ratio":   "16:9",
		"output_format":  "webp",
		"output_quality": 90,
	}

	var (
		pred *replicate.Prediction
		err  error
	)
	name, version, pinned := strings.Cut(c.model, ":")
	owner, model, named := strings.Cut(name, "/")
	switch {
	case pinned:
		pred, err = c.api.CreatePrediction(ctx, version, input, nil, false)
	case named:
		pred, err = c.api.CreatePredictionWithModel(ctx, owner, model, input, nil, false)
	default:
		pred, err = c.api.CreatePrediction(ctx, c.model, input, nil, false)
	}
	if err != nil {
		return nil, c.upstream(err)
	}

	c.logger.Info("prediction submitted", zap.String("id", pred.ID), zap.String("status", string(pred.Status)))
	return fromAPI(pred), nil
}

// Status performs a single status check.
func (c *Client) Status(ctx context.Context, id string) (*Prediction, error) {
	if c.apiErr != nil {
		return nil, &models.ConfigError{Setting: "REPLICATE_API_TOKEN"}
	}
	pred, err := c.api.GetPrediction(ctx, id)
	if err != nil {
		return nil, c.upstream(err)
	}
	return fromAPI(pred), nil
}

func fromAPI(pred *replicate.Prediction) *Prediction {
	return &Prediction{
		ID:     pred.ID,
		Status: models.ImageJobStatus(pred.Status),
		Output: pred.Output,
		Error:  pred.Error,
		GetURL: pred.URLs["get"],
	}
}

// upstream keeps the provider's status and detail when the API rejected the
// request. Transport failures carry no status.
func (c *Client) upstream(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *replicate.APIError
	if errors.As(err, &apiErr) {
		c.logger.Error("replicate API error",
			zap.Int("status", apiErr.Status),
			zap.String("detail", apiErr.Detail),
		)
		details := apiErr.Detail
		if details == "" {
			details = apiErr.Error()
		}
		return &models.UpstreamError{Service: service, Status: apiErr.Status, Details: details}
	}
	return &models.UpstreamError{Service: service, Err: fmt.Errorf("request failed: %w", err)}
}
