package assmcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	decorator "github.com/skilldev/backend/srvccqs"
	"github.com/skilldev/backend/srvcerror"
)

type SubmitAnswersCmd decorator.CmdResHandler[SubmitAnswersParams, assmdomain.Submission]

type SubmitAnswersParams struct {
	AssessmentID int64
	TraineeID    int64
	// question id -> selected option
	Answers map[int64]string
}

type SubmitAnswersCmdHandler struct {
	GetAssm          func(ctx context.Context, id int64) (assmdomain.Assessment, error)
	SubmissionExists func(ctx context.Context, assessmentID, traineeID int64) (bool, error)
	ListQuestions    func(ctx context.Context, assessmentID int64) ([]assmdomain.Question, error)
	StoreSubm        func(ctx context.Context, s assmdomain.Submission) (assmdomain.Submission, error)
	Now              func() time.Time
}

// Handle grades and stores a trainee's single attempt. The existence check
// fails fast; the storage uniqueness constraint settles concurrent attempts.
func (h SubmitAnswersCmdHandler) Handle(ctx context.Context, p SubmitAnswersParams) (assmdomain.Submission, error) {
	if p.TraineeID <= 0 {
		return assmdomain.Submission{}, srvcerror.ErrInvalidRequest("traineeId is required")
	}

	if _, err := h.GetAssm(ctx, p.AssessmentID); err != nil {
		return assmdomain.Submission{}, err
	}

	exists, err := h.SubmissionExists(ctx, p.AssessmentID, p.TraineeID)
	if err != nil {
		return assmdomain.Submission{}, fmt.Errorf("failed to check for earlier submission: %w", err)
	}
	if exists {
		return assmdomain.Submission{}, assmerror.ErrDuplicateSubmission()
	}

	questions, err := h.ListQuestions(ctx, p.AssessmentID)
	if err != nil {
		return assmdomain.Submission{}, fmt.Errorf("failed to list questions: %w", err)
	}

	subm := assmdomain.NewSubmission(p.AssessmentID, p.TraineeID, questions, p.Answers, h.Now())
	return h.StoreSubm(ctx, subm)
}
