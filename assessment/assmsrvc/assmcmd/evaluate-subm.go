package assmcmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certsrvc"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/metrics"
	decorator "github.com/skilldev/backend/srvccqs"
	"github.com/skilldev/backend/srvcerror"
)

type EvaluateSubmCmd decorator.CmdResHandler[EvaluateSubmParams, EvaluationResult]

type EvaluateSubmParams struct {
	SubmissionID int64
	// overrides the computed score when set
	Score       *int
	EvaluatorID int64
	CourseName  *string
}

type IssuanceStatus string

const (
	IssuanceNotAttempted IssuanceStatus = "not_attempted"
	IssuanceIssued       IssuanceStatus = "issued"
	IssuanceExisting     IssuanceStatus = "existing"
	IssuanceFailed       IssuanceStatus = "failed"
)

// IssuanceOutcome reports what happened to the certificate side effect of an
// evaluation. Failures never fail the evaluation itself.
type IssuanceOutcome struct {
	Status      IssuanceStatus
	Certificate *certdomain.Certificate
	Reason      string
}

type EvaluationResult struct {
	Submission assmdomain.Submission
	Issuance   IssuanceOutcome
}

type EvaluateSubmCmdHandler struct {
	GetSubm    func(ctx context.Context, id int64) (assmdomain.Submission, error)
	UpdateSubm func(ctx context.Context, s assmdomain.Submission) error
	GetAssm    func(ctx context.Context, id int64) (assmdomain.Assessment, error)
	IssueCert  func(ctx context.Context, p certsrvc.IssueCertParams) (certsrvc.IssueCertResult, error)
	Now        func() time.Time

	// optional, resolves the certificate course name when the caller gave none
	CourseTitle func(ctx context.Context, courseID int64) (string, error)
}

func (h EvaluateSubmCmdHandler) Handle(ctx context.Context, p EvaluateSubmParams) (EvaluationResult, error) {
	if p.EvaluatorID <= 0 {
		return EvaluationResult{}, srvcerror.ErrInvalidRequest("trainerId is required")
	}

	subm, err := h.GetSubm(ctx, p.SubmissionID)
	if err != nil {
		return EvaluationResult{}, err
	}

	subm.MarkEvaluated(p.Score, p.EvaluatorID, h.Now())
	if err := h.UpdateSubm(ctx, subm); err != nil {
		return EvaluationResult{}, fmt.Errorf("failed to persist evaluation: %w", err)
	}
	metrics.RecordEvaluation()

	outcome := h.issueIfEligible(ctx, subm, p.CourseName)
	metrics.RecordIssuanceOutcome(string(outcome.Status))

	log := logger.FromContext(ctx).With(
		"submission_id", subm.ID,
		"trainee_id", subm.TraineeID,
		"issuance", outcome.Status)
	if outcome.Status == IssuanceFailed {
		log.Warn("submission evaluated, certificate issuance failed", "reason", outcome.Reason)
	} else {
		log.Info("submission evaluated")
	}

	return EvaluationResult{Submission: subm, Issuance: outcome}, nil
}

func (h EvaluateSubmCmdHandler) issueIfEligible(
	ctx context.Context,
	subm assmdomain.Submission,
	courseName *string,
) IssuanceOutcome {
	assm, err := h.GetAssm(ctx, subm.AssessmentID)
	if srvcerror.HasCode(err, assmerror.ErrCodeAssessmentNotFound) {
		return IssuanceOutcome{Status: IssuanceNotAttempted, Reason: "assessment not found"}
	}
	if err != nil {
		return IssuanceOutcome{Status: IssuanceFailed, Reason: fmt.Sprintf("failed to load assessment: %v", err)}
	}
	if !subm.EligibleForCertificate(assm) {
		return IssuanceOutcome{Status: IssuanceNotAttempted}
	}

	var courseID int64
	if assm.CourseID != nil {
		courseID = *assm.CourseID
	}
	name := certdomain.DefaultCourseName
	if courseName != nil && strings.TrimSpace(*courseName) != "" {
		name = *courseName
	} else if h.CourseTitle != nil && courseID > 0 {
		title, err := h.CourseTitle(ctx, courseID)
		if err != nil {
			logger.FromContext(ctx).Warn("course title lookup failed", "course_id", courseID, "error", err)
		} else if strings.TrimSpace(title) != "" {
			name = title
		}
	}

	res, err := h.IssueCert(ctx, certsrvc.IssueCertParams{
		TraineeID:    subm.TraineeID,
		CourseID:     courseID,
		CourseName:   name,
		PassingScore: assm.PassingScore,
		TraineeScore: subm.Score,
	})
	if err != nil {
		return IssuanceOutcome{Status: IssuanceFailed, Reason: err.Error()}
	}

	cert := res.Certificate
	if res.Created {
		return IssuanceOutcome{Status: IssuanceIssued, Certificate: &cert}
	}
	return IssuanceOutcome{Status: IssuanceExisting, Certificate: &cert}
}
