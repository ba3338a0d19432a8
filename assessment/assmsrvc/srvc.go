package assmsrvc

import (
	"context"
	"time"

	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmsrvc/assmcmd"
	"github.com/skilldev/backend/cert/certsrvc"
	decorator "github.com/skilldev/backend/srvccqs"
	"github.com/skilldev/backend/validation"
)

type AssmRepo interface {
	CreateAssessment(ctx context.Context, a assmdomain.Assessment) (assmdomain.Assessment, error)
	UpdateAssessment(ctx context.Context, a assmdomain.Assessment) error
	GetAssessment(ctx context.Context, id int64) (assmdomain.Assessment, error)
	ListAssessments(ctx context.Context) ([]assmdomain.Assessment, error)
	ListAssessmentsByCourse(ctx context.Context, courseID int64) ([]assmdomain.Assessment, error)
	CreateQuestion(ctx context.Context, q assmdomain.Question) (assmdomain.Question, error)
	ListQuestions(ctx context.Context, assessmentID int64) ([]assmdomain.Question, error)
}

type SubmRepo interface {
	CreateSubmission(ctx context.Context, s assmdomain.Submission) (assmdomain.Submission, error)
	UpdateSubmission(ctx context.Context, s assmdomain.Submission) error
	GetSubmission(ctx context.Context, id int64) (assmdomain.Submission, error)
	GetSubmissionByTrainee(ctx context.Context, assessmentID, traineeID int64) (assmdomain.Submission, error)
	SubmissionExists(ctx context.Context, assessmentID, traineeID int64) (bool, error)
	ListSubmissionsByAssessment(ctx context.Context, assessmentID int64) ([]assmdomain.Submission, error)
	ListSubmissionsByTrainee(ctx context.Context, traineeID int64) ([]assmdomain.Submission, error)
}

// CertIssuer is the certificate side of an evaluation.
type CertIssuer func(ctx context.Context, p certsrvc.IssueCertParams) (certsrvc.IssueCertResult, error)

type GetSubmByTraineeParams struct {
	AssessmentID int64
	TraineeID    int64
}

type AssmSrvc struct {
	CreateAssm    assmcmd.CreateAssmCmd
	UpdateAssm    assmcmd.UpdateAssmCmd
	AddQuestion   assmcmd.AddQuestionCmd
	SubmitAnswers assmcmd.SubmitAnswersCmd
	EvaluateSubm  assmcmd.EvaluateSubmCmd

	GetAssm               decorator.QueryHandler[int64, assmdomain.Assessment]
	ListAssms             decorator.QueryHandler[struct{}, []assmdomain.Assessment]
	ListAssmsByCourse     decorator.QueryHandler[int64, []assmdomain.Assessment]
	ListQuestions         decorator.QueryHandler[int64, []assmdomain.Question]
	ListSubmsByAssessment decorator.QueryHandler[int64, []assmdomain.Submission]
	ListSubmsByTrainee    decorator.QueryHandler[int64, []assmdomain.Submission]
	GetSubmByTrainee      decorator.QueryHandler[GetSubmByTraineeParams, assmdomain.Submission]
}

type Option func(*options)

type options struct {
	courseTitle func(ctx context.Context, courseID int64) (string, error)
}

// WithCourseTitles lets evaluations name certificates after the course
// instead of the generic default.
func WithCourseTitles(lookup func(ctx context.Context, courseID int64) (string, error)) Option {
	return func(o *options) {
		o.courseTitle = lookup
	}
}

func NewAssmSrvc(
	assmRepo AssmRepo,
	submRepo SubmRepo,
	validator validation.Client,
	issueCert CertIssuer,
	opts ...Option,
) *AssmSrvc {
	return newAssmSrvc(assmRepo, submRepo, validator, issueCert, time.Now, opts...)
}

func newAssmSrvc(
	assmRepo AssmRepo,
	submRepo SubmRepo,
	validator validation.Client,
	issueCert CertIssuer,
	now func() time.Time,
	opts ...Option,
) *AssmSrvc {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &AssmSrvc{
		CreateAssm: assmcmd.CreateAssmCmdHandler{
			Validator: validator,
			StoreAssm: assmRepo.CreateAssessment,
			Now:       now,
		},
		UpdateAssm: assmcmd.UpdateAssmCmdHandler{
			Validator:  validator,
			GetAssm:    assmRepo.GetAssessment,
			UpdateAssm: assmRepo.UpdateAssessment,
			Now:        now,
		},
		AddQuestion: assmcmd.AddQuestionCmdHandler{
			GetAssm:       assmRepo.GetAssessment,
			StoreQuestion: assmRepo.CreateQuestion,
		},
		SubmitAnswers: assmcmd.SubmitAnswersCmdHandler{
			GetAssm:          assmRepo.GetAssessment,
			SubmissionExists: submRepo.SubmissionExists,
			ListQuestions:    assmRepo.ListQuestions,
			StoreSubm:        submRepo.CreateSubmission,
			Now:              now,
		},
		EvaluateSubm: assmcmd.EvaluateSubmCmdHandler{
			GetSubm:    submRepo.GetSubmission,
			UpdateSubm: submRepo.UpdateSubmission,
			GetAssm:    assmRepo.GetAssessment,
			IssueCert:  issueCert,
			Now:        now,

			CourseTitle: o.courseTitle,
		},

		GetAssm: decorator.QueryFunc[int64, assmdomain.Assessment](assmRepo.GetAssessment),
		ListAssms: decorator.QueryFunc[struct{}, []assmdomain.Assessment](
			func(ctx context.Context, _ struct{}) ([]assmdomain.Assessment, error) {
				return assmRepo.ListAssessments(ctx)
			}),
		ListAssmsByCourse:     decorator.QueryFunc[int64, []assmdomain.Assessment](assmRepo.ListAssessmentsByCourse),
		ListQuestions:         decorator.QueryFunc[int64, []assmdomain.Question](assmRepo.ListQuestions),
		ListSubmsByAssessment: decorator.QueryFunc[int64, []assmdomain.Submission](submRepo.ListSubmissionsByAssessment),
		ListSubmsByTrainee:    decorator.QueryFunc[int64, []assmdomain.Submission](submRepo.ListSubmissionsByTrainee),
		GetSubmByTrainee: decorator.QueryFunc[GetSubmByTraineeParams, assmdomain.Submission](
			func(ctx context.Context, p GetSubmByTraineeParams) (assmdomain.Submission, error) {
				return submRepo.GetSubmissionByTrainee(ctx, p.AssessmentID, p.TraineeID)
			}),
	}
}
