package feedback

import (
	"context"
	"time"

	"github.com/skilldev/backend/logger"
)

type FeedbackRepo interface {
	CreateFeedback(ctx context.Context, f Feedback) (Feedback, error)
	// list methods return newest first
	ListFeedbackByTrainee(ctx context.Context, traineeID int64) ([]Feedback, error)
	ListFeedbackByTrainer(ctx context.Context, trainerID int64) ([]Feedback, error)
}

type FeedbackSrvc struct {
	repo FeedbackRepo
	now  func() time.Time
}

func NewFeedbackSrvc(repo FeedbackRepo) *FeedbackSrvc {
	return &FeedbackSrvc{repo: repo, now: time.Now}
}

type SubmitFeedbackParams struct {
	TraineeID int64
	TrainerID *int64
	CourseID  *int64
	Rating    int
	Comment   string
}

func (s *FeedbackSrvc) SubmitFeedback(ctx context.Context, p SubmitFeedbackParams) (Feedback, error) {
	f := Feedback{
		TraineeID: p.TraineeID,
		TrainerID: p.TrainerID,
		CourseID:  p.CourseID,
		Rating:    p.Rating,
		Comment:   p.Comment,
		CreatedAt: s.now(),
	}
	if err := f.Check(); err != nil {
		return Feedback{}, err
	}
	created, err := s.repo.CreateFeedback(ctx, f)
	if err != nil {
		return Feedback{}, err
	}
	logger.FromContext(ctx).Info("feedback submitted",
		"feedback_id", created.ID, "trainee_id", created.TraineeID, "rating", created.Rating)
	return created, nil
}

func (s *FeedbackSrvc) ListByTrainee(ctx context.Context, traineeID int64) ([]Feedback, error) {
	return s.repo.ListFeedbackByTrainee(ctx, traineeID)
}

func (s *FeedbackSrvc) ListByTrainer(ctx context.Context, trainerID int64) ([]Feedback, error) {
	return s.repo.ListFeedbackByTrainer(ctx, trainerID)
}
