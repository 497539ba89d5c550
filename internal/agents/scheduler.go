package agents

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shubh-37/inflections-studio/internal/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// PostStore is the slice of the post repository the scheduler needs.
type PostStore interface {
	GetByStatus(ctx context.Context, status models.PostStatus) ([]*models.LinkedInPost, error)
	Get(ctx context.Context, id string) (*models.LinkedInPost, error)
	Update(ctx context.Context, id string, u models.PostUpdate) error
}

type SchedulerAgent struct {
	posts  PostStore
	logger *zap.Logger
	now    func() time.Time
}

type ScheduleConfig struct {
	PostsPerDay    int       `json:"postsPerDay"`
	PreferredTimes []string  `json:"preferredTimes,omitempty"`
	StartDate      time.Time `json:"startDate"`
	Timezone       string    `json:"timezone,omitempty"`
}

func (c ScheduleConfig) Validate() error {
	if len(c.PreferredTimes) == 0 && (c.PostsPerDay < 1 || c.PostsPerDay > 4) {
		return &models.ValidationError{Field: "postsPerDay", Message: "must be between 1 and 4"}
	}
	for _, t := range c.PreferredTimes {
		if _, err := time.Parse(timeLayout, t); err != nil {
			return &models.ValidationError{Field: "preferredTimes", Message: fmt.Sprintf("invalid time %q, expected HH:MM", t)}
		}
	}
	return nil
}

// ScheduledPost is one slot assignment made by ScheduleApproved.
type ScheduledPost struct {
	PostID string `json:"postId"`
	Date   string `json:"scheduledDate"`
	Time   string `json:"scheduledTime"`
}

func NewSchedulerAgent(posts PostStore, logger *zap.Logger) *SchedulerAgent {
	return &SchedulerAgent{
		posts:  posts,
		logger: logger.Named("scheduler"),
		now:    time.Now,
	}
}

// ScheduleApproved assigns successive time slots to approved posts, moving
// to the next day once the day's slots are used. Posts that fail to update
// are skipped and keep their slot free for the next post.
func (s *SchedulerAgent) ScheduleApproved(ctx context.Context, config ScheduleConfig) ([]ScheduledPost, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	approved, err := s.posts.GetByStatus(ctx, models.PostApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved posts: %w", err)
	}
	scheduled := []ScheduledPost{}
	if len(approved) == 0 {
		return scheduled, nil
	}

	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		s.logger.Warn("unknown timezone, using UTC", zap.String("timezone", config.Timezone))
		location = time.UTC
	}

	times := config.PreferredTimes
	if len(times) == 0 {
		times = getDefaultTimes(config.PostsPerDay)
	}

	currentDate := config.StartDate
	if currentDate.IsZero() {
		currentDate = s.now().In(location)
	}
	slot := 0

	for _, post := range approved {
		at, err := calculateScheduledTime(currentDate, times[slot], location)
		if err != nil {
			continue
		}

		date, clock := at.Format(dateLayout), at.Format(timeLayout)
		status := models.PostScheduled
		err = s.posts.Update(ctx, post.ID, models.PostUpdate{
			Status:        &status,
			ScheduledDate: &date,
			ScheduledTime: &clock,
		})
		if err != nil {
			s.logger.Error("failed to schedule post", zap.String("post_id", post.ID), zap.Error(err))
			continue
		}
		scheduled = append(scheduled, ScheduledPost{PostID: post.ID, Date: date, Time: clock})

		slot++
		if slot >= len(times) {
			slot = 0
			currentDate = currentDate.AddDate(0, 0, 1)
		}
	}

	s.logger.Info("scheduled approved posts",
		zap.Int("approved", len(approved)),
		zap.Int("scheduled", len(scheduled)),
	)
	return scheduled, nil
}

// Unschedule moves a post back to approved and clears its slot.
func (s *SchedulerAgent) Unschedule(ctx context.Context, postID string) error {
	if postID == "" {
		return models.Required("id")
	}
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return &models.NotFoundError{Entity: "LinkedIn post", ID: postID}
	}

	status := models.PostApproved
	empty := ""
	err = s.posts.Update(ctx, postID, models.PostUpdate{
		Status:        &status,
		ScheduledDate: &empty,
		ScheduledTime: &empty,
	})
	if err != nil {
		return fmt.Errorf("failed to cancel schedule: %w", err)
	}
	return nil
}

func calculateScheduledTime(date time.Time, timeStr string, location *time.Location) (time.Time, error) {
	parsedTime, err := time.Parse(timeLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		parsedTime.Hour(),
		parsedTime.Minute(),
		0, 0,
		location,
	), nil
}

func getDefaultTimes(postsPerDay int) []string {
	switch postsPerDay {
	case 2:
		return []string{"09:00", "15:00"}
	case 3:
		return []string{"09:00", "13:00", "17:00"}
	case 4:
		return []string{"09:00", "12:00", "15:00", "18:00"}
	default:
		return []string{"09:00"}
	}
}
