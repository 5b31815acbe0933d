package app

import (
	"context"
	"time"

	"gamestats-api/internal/model"
)

type FeedbackService struct {
	feedback FeedbackStore
	now      func() time.Time
}

func NewFeedbackService(feedback FeedbackStore) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		now:      time.Now,
	}
}

// Submit appends a feedback row. The player id is not checked against accounts.
func (s *FeedbackService) Submit(ctx context.Context, playerID uint, comment string) (uint, error) {
	if playerID == 0 || comment == "" {
		return 0, ErrInvalidInput
	}

	feedback := &model.Feedback{
		PlayerID:  playerID,
		Comment:   comment,
		CreatedAt: s.now(),
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		return 0, err
	}
	return feedback.ID, nil
}
