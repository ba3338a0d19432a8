package assmsrvc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	"github.com/skilldev/backend/assessment/assmsrvc/assmcmd"
	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certsrvc"
	"github.com/skilldev/backend/srvcerror"
	"github.com/skilldev/backend/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 10, 10, 0, 0, 0, time.UTC)

type countingPublisher struct {
	lock  sync.Mutex
	count int
}

func (p *countingPublisher) PublishIssued(ctx context.Context, c certdomain.Certificate) error {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.count++
	return nil
}

type fixture struct {
	srvc     *AssmSrvc
	certRepo *certsrvc.InMemCertRepo
	certPub  *countingPublisher
}

func newFixture(t *testing.T, opts ...Option) fixture {
	t.Helper()
	validator := validation.NewLocalClient(validation.NewEngineWithClock(func() time.Time { return testNow }))
	certRepo := certsrvc.NewInMemCertRepo()
	pub := &countingPublisher{}
	issuer := certsrvc.IssueCertCmdHandler{
		Validator:     validator,
		GetExisting:   certRepo.GetByTraineeAndCourse,
		InsertOrGet:   certRepo.InsertOrGet,
		PublishIssued: pub.PublishIssued,
		NewCode:       certdomain.NewCode,
		Now:           func() time.Time { return testNow },
	}
	srvc := newAssmSrvc(NewInMemAssmRepo(), NewInMemSubmRepo(), validator, issuer.Handle,
		func() time.Time { return testNow }, opts...)
	return fixture{srvc: srvc, certRepo: certRepo, certPub: pub}
}

// seedQuiz creates the assessment with passingScore=50, maxScore=100 and two
// questions worth 50 marks each with correct options "A" and "B".
func seedQuiz(t *testing.T, f fixture) (assmdomain.Assessment, []assmdomain.Question) {
	t.Helper()
	ctx := context.Background()
	a, err := f.srvc.CreateAssm.Handle(ctx, assmcmd.CreateAssmParams{
		Title:        "Go fundamentals",
		CourseID:     validation.Ptr(int64(12)),
		PassingScore: validation.Ptr(50),
		MaxScore:     validation.Ptr(100),
	})
	require.NoError(t, err)
	assert.Equal(t, assmdomain.StatusDraft, a.Status)

	var qs []assmdomain.Question
	for _, correct := range []string{"A", "B"} {
		q, err := f.srvc.AddQuestion.Handle(ctx, assmcmd.AddQuestionParams{
			AssessmentID:     a.ID,
			Prompt:           "pick " + correct,
			Options:          []string{"A", "B", "C"},
			CorrectOption:    validation.Ptr(correct),
			MarksPerQuestion: validation.Ptr(50),
		})
		require.NoError(t, err)
		qs = append(qs, q)
	}
	return a, qs
}

func TestSubmitEvaluateIssuesCertificateOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, qs := seedQuiz(t, f)

	subm, err := f.srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{
		AssessmentID: a.ID,
		TraineeID:    7,
		Answers:      map[int64]string{qs[0].ID: "a", qs[1].ID: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, 50, *subm.Score)
	assert.Equal(t, 100, *subm.MaxScore)
	assert.Equal(t, assmdomain.SubmStatusSubmitted, subm.Status)

	res, err := f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{
		SubmissionID: subm.ID,
		EvaluatorID:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, assmdomain.SubmStatusEvaluated, res.Submission.Status)
	assert.Equal(t, int64(3), *res.Submission.EvaluatedByTrainerID)
	assert.Equal(t, testNow, *res.Submission.EvaluatedAt)
	assert.Equal(t, assmcmd.IssuanceIssued, res.Issuance.Status)
	require.NotNil(t, res.Issuance.Certificate)
	assert.Equal(t, certdomain.DefaultCourseName, res.Issuance.Certificate.CourseName)
	assert.Equal(t, int64(12), res.Issuance.Certificate.CourseID)

	again, err := f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{
		SubmissionID: subm.ID,
		EvaluatorID:  3,
		CourseName:   validation.Ptr("Go Fundamentals"),
	})
	require.NoError(t, err)
	assert.Equal(t, assmcmd.IssuanceExisting, again.Issuance.Status)
	assert.Equal(t, res.Issuance.Certificate.ID, again.Issuance.Certificate.ID)
	assert.Equal(t, res.Issuance.Certificate.Code, again.Issuance.Certificate.Code)

	certs, err := f.certRepo.ListByTrainee(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, certs, 1)
	assert.Equal(t, 1, f.certPub.count)

	stored, err := f.srvc.GetSubmByTrainee.Handle(ctx, GetSubmByTraineeParams{AssessmentID: a.ID, TraineeID: 7})
	require.NoError(t, err)
	assert.Equal(t, assmdomain.SubmStatusEvaluated, stored.Status)
}

func TestEvaluateNamesCertificateAfterCourse(t *testing.T) {
	ctx := context.Background()
	var asked int64
	f := newFixture(t, WithCourseTitles(func(ctx context.Context, courseID int64) (string, error) {
		asked = courseID
		return "Go Fundamentals", nil
	}))
	a, qs := seedQuiz(t, f)

	subm, err := f.srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{
		AssessmentID: a.ID,
		TraineeID:    8,
		Answers:      map[int64]string{qs[0].ID: "A", qs[1].ID: "B"},
	})
	require.NoError(t, err)

	res, err := f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{SubmissionID: subm.ID, EvaluatorID: 3})
	require.NoError(t, err)
	require.Equal(t, assmcmd.IssuanceIssued, res.Issuance.Status)
	assert.Equal(t, "Go Fundamentals", res.Issuance.Certificate.CourseName)
	assert.Equal(t, int64(12), asked)
}

func TestEvaluateBelowPassingDoesNotIssue(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, qs := seedQuiz(t, f)

	subm, err := f.srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{
		AssessmentID: a.ID,
		TraineeID:    8,
		Answers:      map[int64]string{qs[0].ID: "c"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, *subm.Score)

	res, err := f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{SubmissionID: subm.ID, EvaluatorID: 3})
	require.NoError(t, err)
	assert.Equal(t, assmdomain.SubmStatusEvaluated, res.Submission.Status)
	assert.Equal(t, assmcmd.IssuanceNotAttempted, res.Issuance.Status)
	assert.Nil(t, res.Issuance.Certificate)

	certs, err := f.certRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, certs)
}

func TestEvaluateScoreOverride(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, _ := seedQuiz(t, f)

	subm, err := f.srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{AssessmentID: a.ID, TraineeID: 9})
	require.NoError(t, err)
	assert.Equal(t, 0, *subm.Score)

	res, err := f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{
		SubmissionID: subm.ID,
		Score:        validation.Ptr(75),
		EvaluatorID:  4,
		CourseName:   validation.Ptr("Go Fundamentals"),
	})
	require.NoError(t, err)
	assert.Equal(t, 75, *res.Submission.Score)
	assert.Equal(t, assmcmd.IssuanceIssued, res.Issuance.Status)
	assert.Equal(t, "Go Fundamentals", res.Issuance.Certificate.CourseName)
}

func TestEvaluateAbsorbsIssuanceFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, err := f.srvc.CreateAssm.Handle(ctx, assmcmd.CreateAssmParams{
		Title:        "No course attached",
		PassingScore: validation.Ptr(0),
	})
	require.NoError(t, err)

	subm, err := f.srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{AssessmentID: a.ID, TraineeID: 1})
	require.NoError(t, err)

	res, err := f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{SubmissionID: subm.ID, EvaluatorID: 2})
	require.NoError(t, err)
	assert.Equal(t, assmdomain.SubmStatusEvaluated, res.Submission.Status)
	assert.Equal(t, assmcmd.IssuanceFailed, res.Issuance.Status)
	assert.Equal(t, validation.MsgCertificationIdsRequired, res.Issuance.Reason)
}

func TestEvaluateAbsorbsIssuerError(t *testing.T) {
	ctx := context.Background()
	assmRepo := NewInMemAssmRepo()
	submRepo := NewInMemSubmRepo()
	validator := validation.NewLocalClient(validation.NewEngine())
	failing := func(ctx context.Context, p certsrvc.IssueCertParams) (certsrvc.IssueCertResult, error) {
		return certsrvc.IssueCertResult{}, errors.New("certification service timeout")
	}
	srvc := NewAssmSrvc(assmRepo, submRepo, validator, failing)

	a, err := srvc.CreateAssm.Handle(ctx, assmcmd.CreateAssmParams{
		Title: "Quiz", CourseID: validation.Ptr(int64(1)), PassingScore: validation.Ptr(0),
	})
	require.NoError(t, err)
	subm, err := srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{AssessmentID: a.ID, TraineeID: 1})
	require.NoError(t, err)

	res, err := srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{SubmissionID: subm.ID, EvaluatorID: 2})
	require.NoError(t, err)
	assert.Equal(t, assmcmd.IssuanceFailed, res.Issuance.Status)
	assert.Contains(t, res.Issuance.Reason, "timeout")

	stored, err := submRepo.GetSubmission(ctx, subm.ID)
	require.NoError(t, err)
	assert.Equal(t, assmdomain.SubmStatusEvaluated, stored.Status)
}

func TestEvaluateErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{SubmissionID: 404, EvaluatorID: 1})
	assert.True(t, srvcerror.HasCode(err, assmerror.ErrCodeSubmissionNotFound))

	_, err = f.srvc.EvaluateSubm.Handle(ctx, assmcmd.EvaluateSubmParams{SubmissionID: 1})
	assert.True(t, srvcerror.HasCode(err, srvcerror.ErrCodeInvalidRequest))
}

func TestDuplicateSubmissionRejectedBeforeScoring(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, qs := seedQuiz(t, f)

	_, err := f.srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{AssessmentID: a.ID, TraineeID: 5})
	require.NoError(t, err)

	_, err = f.srvc.SubmitAnswers.Handle(ctx, assmcmd.SubmitAnswersParams{
		AssessmentID: a.ID,
		TraineeID:    5,
		Answers:      map[int64]string{qs[0].ID: "A", qs[1].ID: "B"},
	})
	assert.True(t, srvcerror.HasCode(err, assmerror.ErrCodeDuplicateSubmission))

	subms, err := f.srvc.ListSubmsByAssessment.Handle(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, subms, 1)
	assert.Equal(t, 0, *subms[0].Score)
}

func TestSubmitUnknownAssessment(t *testing.T) {
	f := newFixture(t)
	_, err := f.srvc.SubmitAnswers.Handle(context.Background(), assmcmd.SubmitAnswersParams{AssessmentID: 99, TraineeID: 1})
	assert.True(t, srvcerror.HasCode(err, assmerror.ErrCodeAssessmentNotFound))
}

func TestCreateAssessmentValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.srvc.CreateAssm.Handle(ctx, assmcmd.CreateAssmParams{
		Title:        "Broken",
		PassingScore: validation.Ptr(120),
		MaxScore:     validation.Ptr(100),
	})
	var srvcErr *srvcerror.Error
	require.True(t, errors.As(err, &srvcErr))
	assert.Equal(t, validation.ErrCodeValidationRejected, srvcErr.ErrorCode())
	assert.Equal(t, []string{validation.MsgAssessmentPassingOutOfRange}, srvcErr.Details())

	_, err = f.srvc.CreateAssm.Handle(ctx, assmcmd.CreateAssmParams{Title: " "})
	assert.True(t, srvcerror.HasCode(err, assmerror.ErrCodeTitleRequired))

	archived := assmdomain.Status("ARCHIVED")
	_, err = f.srvc.CreateAssm.Handle(ctx, assmcmd.CreateAssmParams{Title: "x", Status: &archived})
	assert.True(t, srvcerror.HasCode(err, assmerror.ErrCodeUnknownStatus))

	all, err := f.srvc.ListAssms.Handle(ctx, struct{}{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateAssessment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a, _ := seedQuiz(t, f)

	published := assmdomain.StatusPublished
	updated, err := f.srvc.UpdateAssm.Handle(ctx, assmcmd.UpdateAssmParams{
		ID:     a.ID,
		Update: assmdomain.AssessmentUpdate{Status: &published, Title: validation.Ptr("Go fundamentals v2")},
	})
	require.NoError(t, err)
	assert.Equal(t, assmdomain.StatusPublished, updated.Status)
	assert.Equal(t, 50, *updated.PassingScore)

	_, err = f.srvc.UpdateAssm.Handle(ctx, assmcmd.UpdateAssmParams{
		ID:     a.ID,
		Update: assmdomain.AssessmentUpdate{MaxScore: validation.Ptr(40)},
	})
	assert.True(t, srvcerror.HasCode(err, validation.ErrCodeValidationRejected))

	_, err = f.srvc.UpdateAssm.Handle(ctx, assmcmd.UpdateAssmParams{ID: 999})
	assert.True(t, srvcerror.HasCode(err, assmerror.ErrCodeAssessmentNotFound))

	got, err := f.srvc.GetAssm.Handle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go fundamentals v2", got.Title)
	assert.Equal(t, 100, *got.MaxScore)

	byCourse, err := f.srvc.ListAssmsByCourse.Handle(ctx, 12)
	require.NoError(t, err)
	assert.Len(t, byCourse, 1)
}

func TestAddQuestionToMissingAssessment(t *testing.T) {
	f := newFixture(t)
	_, err := f.srvc.AddQuestion.Handle(context.Background(), assmcmd.AddQuestionParams{AssessmentID: 5, Prompt: "?"})
	assert.True(t, srvcerror.HasCode(err, assmerror.ErrCodeAssessmentNotFound))
}
