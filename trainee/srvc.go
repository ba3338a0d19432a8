package trainee

import (
	"context"
	"strings"
	"time"

	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/validation"
)

type TraineeRepo interface {
	CreateTrainee(ctx context.Context, t Trainee) (Trainee, error)
	UpdateTrainee(ctx context.Context, t Trainee) error
	DeleteTrainee(ctx context.Context, id int64) error
	GetTrainee(ctx context.Context, id int64) (Trainee, error)
	GetTraineeByEmail(ctx context.Context, email string) (Trainee, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListTrainees(ctx context.Context) ([]Trainee, error)
}

type EnrollmentRepo interface {
	CreateEnrollment(ctx context.Context, e Enrollment) (Enrollment, error)
	GetEnrollment(ctx context.Context, id int64) (Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, id int64, status EnrollmentStatus) error
	ListEnrollmentsByTrainee(ctx context.Context, traineeID int64) ([]Enrollment, error)
}

type TraineeSrvc struct {
	trainees    TraineeRepo
	enrollments EnrollmentRepo
	validator   validation.Client
	now         func() time.Time
}

func NewTraineeSrvc(trainees TraineeRepo, enrollments EnrollmentRepo, validator validation.Client) *TraineeSrvc {
	return &TraineeSrvc{
		trainees:    trainees,
		enrollments: enrollments,
		validator:   validator,
		now:         time.Now,
	}
}

type CreateTraineeParams struct {
	Name             string
	Email            *string
	Contact          *string
	Qualification    *string
	SkillPreferences *string
}

func (s *TraineeSrvc) CreateTrainee(ctx context.Context, p CreateTraineeParams) (Trainee, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Trainee{}, ErrNameRequired()
	}
	err := validation.Require(ctx, s.validator, validation.TraineeRequest{
		Email:   p.Email,
		Contact: p.Contact,
	})
	if err != nil {
		return Trainee{}, err
	}
	// the rules above guarantee an email is present
	if err := s.ensureEmailFree(ctx, *p.Email); err != nil {
		return Trainee{}, err
	}
	now := s.now()
	t, err := s.trainees.CreateTrainee(ctx, Trainee{
		Name:             name,
		Email:            p.Email,
		Contact:          p.Contact,
		Qualification:    p.Qualification,
		SkillPreferences: p.SkillPreferences,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	if err != nil {
		return Trainee{}, err
	}
	logger.FromContext(ctx).Info("created trainee", "trainee_id", t.ID)
	return t, nil
}

func (s *TraineeSrvc) ensureEmailFree(ctx context.Context, email string) error {
	exists, err := s.trainees.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailExists()
	}
	return nil
}

// UpdateTrainee merges u into the stored trainee. Contact rules are re-run
// when email or contact change, and a changed email must still be unique.
func (s *TraineeSrvc) UpdateTrainee(ctx context.Context, id int64, u TraineeUpdate) (Trainee, error) {
	t, err := s.trainees.GetTrainee(ctx, id)
	if err != nil {
		return Trainee{}, err
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return Trainee{}, ErrNameRequired()
	}
	emailChanged := u.Email != nil && (t.Email == nil || *t.Email != *u.Email)
	t.Apply(u, s.now())
	if u.Email != nil || u.Contact != nil {
		err := validation.Require(ctx, s.validator, validation.TraineeRequest{
			Email:   t.Email,
			Contact: t.Contact,
		})
		if err != nil {
			return Trainee{}, err
		}
	}
	if emailChanged {
		if err := s.ensureEmailFree(ctx, *t.Email); err != nil {
			return Trainee{}, err
		}
	}
	if err := s.trainees.UpdateTrainee(ctx, t); err != nil {
		return Trainee{}, err
	}
	return t, nil
}

func (s *TraineeSrvc) DeleteTrainee(ctx context.Context, id int64) error {
	if err := s.trainees.DeleteTrainee(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("deleted trainee", "trainee_id", id)
	return nil
}

func (s *TraineeSrvc) GetTrainee(ctx context.Context, id int64) (Trainee, error) {
	return s.trainees.GetTrainee(ctx, id)
}

func (s *TraineeSrvc) GetTraineeByEmail(ctx context.Context, email string) (Trainee, error) {
	return s.trainees.GetTraineeByEmail(ctx, email)
}

func (s *TraineeSrvc) ListTrainees(ctx context.Context) ([]Trainee, error) {
	return s.trainees.ListTrainees(ctx)
}
