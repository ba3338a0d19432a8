package assmcmd

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	decorator "github.com/skilldev/backend/srvccqs"
	"github.com/skilldev/backend/validation"
)

type CreateAssmCmd decorator.CmdResHandler[CreateAssmParams, assmdomain.Assessment]

type CreateAssmParams struct {
	Title              string
	CourseID           *int64
	PassingScore       *int
	MaxScore           *int
	DueDate            *civil.Date
	CreatedByTrainerID *int64
	Status             *assmdomain.Status
}

type CreateAssmCmdHandler struct {
	Validator validation.Client
	StoreAssm func(ctx context.Context, a assmdomain.Assessment) (assmdomain.Assessment, error)
	Now       func() time.Time
}

func (h CreateAssmCmdHandler) Handle(ctx context.Context, p CreateAssmParams) (assmdomain.Assessment, error) {
	if strings.TrimSpace(p.Title) == "" {
		return assmdomain.Assessment{}, assmerror.ErrTitleRequired()
	}

	status := assmdomain.StatusDraft
	if p.Status != nil {
		if !p.Status.IsKnown() {
			return assmdomain.Assessment{}, assmerror.ErrUnknownStatus(string(*p.Status))
		}
		status = *p.Status
	}

	err := validation.Require(ctx, h.Validator, validation.AssessmentRequest{
		PassingScore: p.PassingScore,
		MaxScore:     p.MaxScore,
	})
	if err != nil {
		return assmdomain.Assessment{}, err
	}

	now := h.Now()
	return h.StoreAssm(ctx, assmdomain.Assessment{
		Title:              p.Title,
		CourseID:           p.CourseID,
		PassingScore:       p.PassingScore,
		MaxScore:           p.MaxScore,
		DueDate:            p.DueDate,
		CreatedByTrainerID: p.CreatedByTrainerID,
		Status:             status,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
}
