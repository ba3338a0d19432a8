package trainer

import (
	"context"
	"strings"
	"time"

	"github.com/skilldev/backend/logger"
)

type TrainerRepo interface {
	CreateTrainer(ctx context.Context, t Trainer) (Trainer, error)
	UpdateTrainer(ctx context.Context, t Trainer) error
	DeleteTrainer(ctx context.Context, id int64) error
	GetTrainer(ctx context.Context, id int64) (Trainer, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)
	ListAvailableTrainers(ctx context.Context) ([]Trainer, error)
}

type TrainerSrvc struct {
	repo TrainerRepo
	now  func() time.Time
}

func NewTrainerSrvc(repo TrainerRepo) *TrainerSrvc {
	return &TrainerSrvc{repo: repo, now: time.Now}
}

type CreateTrainerParams struct {
	Name            string
	Specialization  *string
	ExperienceYears *int
	Available       *bool
	Contact         *string
	Email           *string
}

func (s *TrainerSrvc) CreateTrainer(ctx context.Context, p CreateTrainerParams) (Trainer, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Trainer{}, ErrNameRequired()
	}
	if p.ExperienceYears != nil && *p.ExperienceYears < 0 {
		return Trainer{}, ErrInvalidExperience()
	}
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	now := s.now()
	t, err := s.repo.CreateTrainer(ctx, Trainer{
		Name:            name,
		Specialization:  p.Specialization,
		ExperienceYears: p.ExperienceYears,
		Available:       available,
		Contact:         p.Contact,
		Email:           p.Email,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return Trainer{}, err
	}
	logger.FromContext(ctx).Info("created trainer", "trainer_id", t.ID)
	return t, nil
}

func (s *TrainerSrvc) UpdateTrainer(ctx context.Context, id int64, u TrainerUpdate) (Trainer, error) {
	t, err := s.GetTrainer(ctx, id)
	if err != nil {
		return Trainer{}, err
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return Trainer{}, ErrNameRequired()
	}
	if u.ExperienceYears != nil && *u.ExperienceYears < 0 {
		return Trainer{}, ErrInvalidExperience()
	}
	t.Apply(u, s.now())
	if err := s.repo.UpdateTrainer(ctx, t); err != nil {
		return Trainer{}, err
	}
	return t, nil
}

func (s *TrainerSrvc) DeleteTrainer(ctx context.Context, id int64) error {
	if err := s.repo.DeleteTrainer(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("deleted trainer", "trainer_id", id)
	return nil
}

func (s *TrainerSrvc) GetTrainer(ctx context.Context, id int64) (Trainer, error) {
	return s.repo.GetTrainer(ctx, id)
}

func (s *TrainerSrvc) ListTrainers(ctx context.Context) ([]Trainer, error) {
	return s.repo.ListTrainers(ctx)
}

func (s *TrainerSrvc) ListAvailableTrainers(ctx context.Context) ([]Trainer, error) {
	return s.repo.ListAvailableTrainers(ctx)
}
