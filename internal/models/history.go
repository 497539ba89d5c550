package models

import "time"

type RunKind string

const (
	RunArticle  RunKind = "article"
	RunLinkedIn RunKind = "linkedin"
	RunTopics   RunKind = "topics"
	RunRefine   RunKind = "refine"
)

func (k RunKind) Valid() bool {
	switch k {
	case RunArticle, RunLinkedIn, RunTopics, RunRefine:
		return true
	}
	return false
}

type RunOutcome string

const (
	OutcomeSucceeded RunOutcome = "succeeded"
	OutcomeFailed    RunOutcome = "failed"
	OutcomeParse     RunOutcome = "parse_error"
)

// GenerationRun records one call to a generation provider.
type GenerationRun struct {
	ID         string     `json:"id"`
	Kind       RunKind    `json:"kind"`
	BrandID    string     `json:"brandId,omitempty"`
	Subject    string     `json:"subject"`
	Outcome    RunOutcome `json:"outcome"`
	Error      string     `json:"error,omitempty"`
	RawReply   string     `json:"rawReply,omitempty"`
	DurationMS int64      `json:"durationMs"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NewGenerationRun creates a run started at the given time.
func NewGenerationRun(kind RunKind, brandID, subject string, startedAt time.Time) *GenerationRun {
	return &GenerationRun{
		Kind:      kind,
		BrandID:   brandID,
		Subject:   subject,
		Outcome:   OutcomeSucceeded,
		CreatedAt: startedAt,
	}
}

type ImageJobStatus string

const (
	ImageStarting   ImageJobStatus = "starting"
	ImageProcessing ImageJobStatus = "processing"
	ImageSucceeded  ImageJobStatus = "succeeded"
	ImageFailed     ImageJobStatus = "failed"
	ImageCanceled   ImageJobStatus = "canceled"
)

// Pending reports whether the provider is still working on the job.
func (s ImageJobStatus) Pending() bool {
	return s == ImageStarting || s == ImageProcessing
}

// ImageJob is the state of one image prediction.
type ImageJob struct {
	ID        string         `json:"id"`
	Status    ImageJobStatus `json:"status"`
	Prompt    string         `json:"prompt"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
