package assmcmd

import (
	"context"
	"strings"

	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	decorator "github.com/skilldev/backend/srvccqs"
)

type AddQuestionCmd decorator.CmdResHandler[AddQuestionParams, assmdomain.Question]

type AddQuestionParams struct {
	AssessmentID     int64
	Prompt           string
	Options          []string
	CorrectOption    *string
	MarksPerQuestion *int
}

type AddQuestionCmdHandler struct {
	GetAssm       func(ctx context.Context, id int64) (assmdomain.Assessment, error)
	StoreQuestion func(ctx context.Context, q assmdomain.Question) (assmdomain.Question, error)
}

func (h AddQuestionCmdHandler) Handle(ctx context.Context, p AddQuestionParams) (assmdomain.Question, error) {
	if strings.TrimSpace(p.Prompt) == "" {
		return assmdomain.Question{}, assmerror.ErrPromptRequired()
	}
	if _, err := h.GetAssm(ctx, p.AssessmentID); err != nil {
		return assmdomain.Question{}, err
	}
	return h.StoreQuestion(ctx, assmdomain.Question{
		AssessmentID:     p.AssessmentID,
		Prompt:           p.Prompt,
		Options:          p.Options,
		CorrectOption:    p.CorrectOption,
		MarksPerQuestion: p.MarksPerQuestion,
	})
}
