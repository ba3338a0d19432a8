package assmcmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	decorator "github.com/skilldev/backend/srvccqs"
	"github.com/skilldev/backend/validation"
)

type UpdateAssmCmd decorator.CmdResHandler[UpdateAssmParams, assmdomain.Assessment]

type UpdateAssmParams struct {
	ID     int64
	Update assmdomain.AssessmentUpdate
}

type UpdateAssmCmdHandler struct {
	Validator  validation.Client
	GetAssm    func(ctx context.Context, id int64) (assmdomain.Assessment, error)
	UpdateAssm func(ctx context.Context, a assmdomain.Assessment) error
	Now        func() time.Time
}

func (h UpdateAssmCmdHandler) Handle(ctx context.Context, p UpdateAssmParams) (assmdomain.Assessment, error) {
	u := p.Update
	if u.Status != nil && !u.Status.IsKnown() {
		return assmdomain.Assessment{}, assmerror.ErrUnknownStatus(string(*u.Status))
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return assmdomain.Assessment{}, assmerror.ErrTitleRequired()
	}

	a, err := h.GetAssm(ctx, p.ID)
	if err != nil {
		return assmdomain.Assessment{}, err
	}
	a.Apply(u, h.Now())

	// score bounds are checked against the merged assessment
	if u.PassingScore != nil || u.MaxScore != nil {
		err = validation.Require(ctx, h.Validator, validation.AssessmentRequest{
			PassingScore: a.PassingScore,
			MaxScore:     a.MaxScore,
		})
		if err != nil {
			return assmdomain.Assessment{}, err
		}
	}

	if err := h.UpdateAssm(ctx, a); err != nil {
		return assmdomain.Assessment{}, fmt.Errorf("failed to update assessment: %w", err)
	}
	return a, nil
}
