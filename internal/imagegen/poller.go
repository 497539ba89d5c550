package imagegen

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

var errPending = errors.New("prediction still pending")

// StatusChecker performs one status check of a prediction.
type StatusChecker interface {
	Status(ctx context.Context, id string) (*Prediction, error)
}

// Poller waits for a prediction to leave the pending states. It checks at a
// fixed interval and gives up after maxAttempts checks.
type Poller struct {
	checker     StatusChecker
	interval    time.Duration
	maxAttempts int
	logger      *zap.Logger
}

func NewPoller(checker StatusChecker, interval time.Duration, maxAttempts int, logger *zap.Logger) *Poller {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Poller{
		checker:     checker,
		interval:    interval,
		maxAttempts: maxAttempts,
		logger:      logger.Named("poller"),
	}
}

// Poll returns the first non-pending prediction. Failed and canceled
// predictions are returned as-is and never re-checked. Running out of
// attempts yields a *models.TimeoutError; a cancelled ctx stops the loop
// with ctx.Err().
func (p *Poller) Poll(ctx context.Context, id string) (*Prediction, error) {
	var (
		attempts int
		last     *Prediction
	)

	backoff := retry.WithMaxRetries(uint64(p.maxAttempts-1), retry.NewConstant(p.interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		pred, err := p.checker.Status(ctx, id)
		if err != nil {
			return err
		}
		last = pred
		if pred.Status.Pending() {
			p.logger.Debug("prediction pending",
				zap.String("id", id),
				zap.Int("attempt", attempts),
				zap.String("status", string(pred.Status)),
			)
			return retry.RetryableError(errPending)
		}
		return nil
	})

	switch {
	case errors.Is(err, errPending):
		p.logger.Warn("prediction poll timed out", zap.String("id", id), zap.Int("attempts", attempts))
		return nil, &models.TimeoutError{Operation: "image prediction " + id, Attempts: attempts}
	case err != nil:
		return nil, err
	}
	return last, nil
}
