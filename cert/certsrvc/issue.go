package certsrvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certerror"
	"github.com/skilldev/backend/logger"
	decorator "github.com/skilldev/backend/srvccqs"
	"github.com/skilldev/backend/srvcerror"
	"github.com/skilldev/backend/validation"
)

const maxCodeAttempts = 5

type IssueCertCmd decorator.CmdResHandler[IssueCertParams, IssueCertResult]

// IssueCertParams describes a certificate request. Zero ids count as absent.
type IssueCertParams struct {
	TraineeID    int64
	CourseID     int64
	CourseName   string
	PassingScore *int
	TraineeScore *int
}

type IssueCertResult struct {
	Certificate certdomain.Certificate
	// Created is false when a certificate for the trainee and course existed
	Created bool
}

type IssueCertCmdHandler struct {
	Validator validation.Client

	// lookup of an already issued certificate, certificate_not_found if none
	GetExisting func(ctx context.Context, traineeID, courseID int64) (certdomain.Certificate, error)

	// atomic insert unless (trainee, course) exists, returns the stored row
	InsertOrGet func(ctx context.Context, c certdomain.Certificate) (certdomain.Certificate, bool, error)

	// announce a newly created certificate, failures are only logged
	PublishIssued func(ctx context.Context, c certdomain.Certificate) error

	NewCode func() string
	Now     func() time.Time
}

func (h IssueCertCmdHandler) Handle(ctx context.Context, p IssueCertParams) (IssueCertResult, error) {
	err := validation.Require(ctx, h.Validator, validation.CertificationRequest{
		TraineeID:        idOrNil(p.TraineeID),
		CourseID:         idOrNil(p.CourseID),
		AssessmentPassed: true,
		PassingScore:     p.PassingScore,
		TraineeScore:     p.TraineeScore,
	})
	if err != nil {
		return IssueCertResult{}, err
	}

	existing, err := h.GetExisting(ctx, p.TraineeID, p.CourseID)
	if err == nil {
		return IssueCertResult{Certificate: existing, Created: false}, nil
	}
	if !srvcerror.HasCode(err, certerror.ErrCodeCertificateNotFound) {
		return IssueCertResult{}, fmt.Errorf("failed to look up existing certificate: %w", err)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		c := certdomain.New(p.TraineeID, p.CourseID, p.CourseName, h.NewCode(), h.Now())
		stored, created, err := h.InsertOrGet(ctx, c)
		if errors.Is(err, certdomain.ErrCodeTaken) {
			logger.FromContext(ctx).Warn("certificate code collision, retrying", "code", c.Code)
			continue
		}
		if err != nil {
			return IssueCertResult{}, fmt.Errorf("failed to store certificate: %w", err)
		}

		if created {
			if err := h.PublishIssued(ctx, stored); err != nil {
				logger.FromContext(ctx).Warn("failed to publish certificate issued event",
					"certificate_id", stored.ID, "error", err)
			}
		}
		return IssueCertResult{Certificate: stored, Created: created}, nil
	}

	return IssueCertResult{}, certerror.ErrCodeExhausted()
}

func idOrNil(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
