package feedback

import (
	"context"
	"sort"
	"sync"
)

type InMemFeedbackRepo struct {
	lock     sync.Mutex
	nextID   int64
	feedback []Feedback
}

func NewInMemFeedbackRepo() *InMemFeedbackRepo {
	return &InMemFeedbackRepo{}
}

func (m *InMemFeedbackRepo) CreateFeedback(ctx context.Context, f Feedback) (Feedback, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.nextID++
	f.ID = m.nextID
	m.feedback = append(m.feedback, f)
	return f, nil
}

func (m *InMemFeedbackRepo) ListFeedbackByTrainee(ctx context.Context, traineeID int64) ([]Feedback, error) {
	return m.newestFirst(func(f Feedback) bool { return f.TraineeID == traineeID }), nil
}

func (m *InMemFeedbackRepo) ListFeedbackByTrainer(ctx context.Context, trainerID int64) ([]Feedback, error) {
	return m.newestFirst(func(f Feedback) bool {
		return f.TrainerID != nil && *f.TrainerID == trainerID
	}), nil
}

func (m *InMemFeedbackRepo) newestFirst(keep func(Feedback) bool) []Feedback {
	m.lock.Lock()
	defer m.lock.Unlock()
	res := []Feedback{}
	for _, f := range m.feedback {
		if keep(f) {
			res = append(res, f)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res
}
