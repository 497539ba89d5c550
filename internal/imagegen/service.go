package imagegen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

// Submitter creates predictions.
type Submitter interface {
	Submit(ctx context.Context, prompt string) (*Prediction, error)
	StatusChecker
}

// JobStore keeps a record of image jobs. Failures are logged only.
type JobStore interface {
	SaveImageJob(ctx context.Context, job *models.ImageJob) error
	UpdateImageJob(ctx context.Context, job *models.ImageJob) error
	GetImageJob(ctx context.Context, id string) (*models.ImageJob, error)
}

// ErrJobFailed marks an upstream error for a job the provider accepted and
// then reported as failed or canceled.
var ErrJobFailed = errors.New("image generation failed")

// Result is the outcome of a submission or status check. A pending result
// carries PredictionID; a finished one carries ImageURL.
type Result struct {
	Status       models.ImageJobStatus `json:"status"`
	PredictionID string                `json:"predictionId,omitempty"`
	ImageURL     string                `json:"imageUrl,omitempty"`
	Prompt       string                `json:"prompt,omitempty"`
	GetURL       string                `json:"getUrl,omitempty"`
	Error        string                `json:"error,omitempty"`
}

type Service struct {
	client Submitter
	poller *Poller
	jobs   JobStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires image generation. jobs may be nil.
func NewService(client Submitter, poller *Poller, jobs JobStore, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		poller: poller,
		jobs:   jobs,
		logger: logger.Named("imagegen"),
		now:    time.Now,
	}
}

// Generate builds the prompt and submits the job. When req.Wait is set a
// pending job is polled until it finishes or the attempt budget runs out.
// A failed or canceled job is an upstream error carrying the provider's
// message.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	prompt, err := BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	pred, err := s.client.Submit(ctx, prompt)
	if err != nil {
		return nil, err
	}
	job := &models.ImageJob{
		ID:        pred.ID,
		Status:    pred.Status,
		Prompt:    prompt,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	s.save(ctx, job)

	if pred.Status.Pending() && req.Wait {
		pred, err = s.poller.Poll(ctx, pred.ID)
		if err != nil {
			var timeout *models.TimeoutError
			if errors.As(err, &timeout) {
				s.update(ctx, job, &Prediction{ID: job.ID, Status: models.ImageProcessing, Error: err.Error()})
			}
			return nil, err
		}
	}
	s.update(ctx, job, pred)

	switch {
	case pred.Status == models.ImageSucceeded:
		return &Result{Status: pred.Status, PredictionID: pred.ID, ImageURL: pred.ImageURL(), Prompt: prompt}, nil
	case pred.Status.Pending():
		return &Result{Status: models.ImageProcessing, PredictionID: pred.ID, Prompt: prompt, GetURL: pred.GetURL}, nil
	default:
		return nil, providerFailure(pred)
	}
}

// Check performs one status check and reports it without treating a failed
// job as an error. The prompt is filled in from the job store when the job
// was submitted through this service.
func (s *Service) Check(ctx context.Context, id string) (*Result, error) {
	if id == "" {
		return nil, models.Required("id")
	}
	pred, err := s.client.Status(ctx, id)
	if err != nil {
		return nil, err
	}

	job := s.load(ctx, id)
	if !pred.Status.Pending() {
		if job == nil {
			job = &models.ImageJob{ID: pred.ID}
		}
		s.update(ctx, job, pred)
	}

	res := &Result{Status: pred.Status, PredictionID: pred.ID, Error: pred.ErrorMessage()}
	if pred.Status == models.ImageSucceeded {
		res.ImageURL = pred.ImageURL()
	}
	if job != nil {
		res.Prompt = job.Prompt
	}
	return res, nil
}

func providerFailure(pred *Prediction) error {
	return &models.UpstreamError{
		Service: service,
		Details: pred.ErrorMessage(),
		Err:     fmt.Errorf("%w: %s", ErrJobFailed, pred.Status),
	}
}

func (s *Service) load(ctx context.Context, id string) *models.ImageJob {
	if s.jobs == nil {
		return nil
	}
	job, err := s.jobs.GetImageJob(ctx, id)
	if err != nil {
		s.logger.Warn("failed to load image job", zap.String("id", id), zap.Error(err))
		return nil
	}
	return job
}

func (s *Service) save(ctx context.Context, job *models.ImageJob) {
	if s.jobs == nil {
		return
	}
	if err := s.jobs.SaveImageJob(context.WithoutCancel(ctx), job); err != nil {
		s.logger.Warn("failed to save image job", zap.String("id", job.ID), zap.Error(err))
	}
}

func (s *Service) update(ctx context.Context, job *models.ImageJob, pred *Prediction) {
	if s.jobs == nil {
		return
	}
	job.Status = pred.Status
	job.ImageURL = pred.ImageURL()
	job.Error = pred.ErrorMessage()
	job.UpdatedAt = s.now()
	if err := s.jobs.UpdateImageJob(context.WithoutCancel(ctx), job); err != nil {
		s.logger.Warn("failed to update image job", zap.String("id", job.ID), zap.Error(err))
	}
}
