package validation_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/skilldev/backend/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func newEngine() *validation.Engine {
	return validation.NewEngineWithClock(func() time.Time { return fixedNow })
}

func date(y int, m time.Month, d int) *civil.Date {
	return &civil.Date{Year: y, Month: m, Day: d}
}

func TestValidateCourse(t *testing.T) {
	e := newEngine()

	t.Run("valid course", func(t *testing.T) {
		res := e.ValidateCourse(validation.CourseRequest{
			DurationHours: validation.Ptr(40),
			StartDate:     date(2026, time.April, 1),
			EndDate:       date(2026, time.May, 1),
			TrainerID:     validation.Ptr(int64(3)),
			Category:      validation.Ptr("Backend"),
		})
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.NotNil(t, res.Errors)
	})

	t.Run("negative duration", func(t *testing.T) {
		res := e.ValidateCourse(validation.CourseRequest{
			DurationHours: validation.Ptr(-5),
			StartDate:     date(2026, time.April, 1),
			EndDate:       date(2026, time.May, 1),
		})
		assert.False(t, res.Valid)
		assert.Equal(t, []string{validation.MsgCourseDurationNotPositive}, res.Errors)
	})

	t.Run("missing duration", func(t *testing.T) {
		res := e.ValidateCourse(validation.CourseRequest{})
		assert.Equal(t, []string{validation.MsgCourseDurationNotPositive}, res.Errors)
	})

	t.Run("start today is allowed", func(t *testing.T) {
		res := e.ValidateCourse(validation.CourseRequest{
			DurationHours: validation.Ptr(1),
			StartDate:     date(2026, time.March, 10),
		})
		assert.True(t, res.Valid)
	})

	t.Run("all rules violated in order", func(t *testing.T) {
		res := e.ValidateCourse(validation.CourseRequest{
			DurationHours: validation.Ptr(0),
			StartDate:     date(2026, time.March, 9),
			EndDate:       date(2026, time.March, 9),
			TrainerID:     validation.Ptr(int64(0)),
			Category:      validation.Ptr("   "),
		})
		assert.False(t, res.Valid)
		assert.Equal(t, []string{
			validation.MsgCourseDurationNotPositive,
			validation.MsgCourseEndBeforeStart,
			validation.MsgCourseStartInPast,
			validation.MsgCourseInvalidTrainer,
			validation.MsgCourseBlankCategory,
		}, res.Errors)
	})
}

func TestValidateTrainee(t *testing.T) {
	e := newEngine()

	tests := []struct {
		name string
		req  validation.TraineeRequest
		want []string
	}{
		{
			name: "valid",
			req: validation.TraineeRequest{
				Email:   validation.Ptr("ana.b+dev@example.co"),
				Contact: validation.Ptr("+371200000"),
			},
			want: []string{},
		},
		{
			name: "missing email",
			req:  validation.TraineeRequest{},
			want: []string{validation.MsgTraineeEmailRequired},
		},
		{
			name: "blank email",
			req:  validation.TraineeRequest{Email: validation.Ptr(" ")},
			want: []string{validation.MsgTraineeEmailRequired},
		},
		{
			name: "bad email and short contact",
			req: validation.TraineeRequest{
				Email:   validation.Ptr("not-an-email"),
				Contact: validation.Ptr("12345"),
			},
			want: []string{validation.MsgTraineeEmailInvalid, validation.MsgTraineeContactShort},
		},
		{
			name: "one letter tld",
			req:  validation.TraineeRequest{Email: validation.Ptr("a@b.c")},
			want: []string{validation.MsgTraineeEmailInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.ValidateTrainee(tt.req)
			assert.Equal(t, len(tt.want) == 0, res.Valid)
			assert.Equal(t, tt.want, res.Errors)
		})
	}
}

func TestValidateTrainer(t *testing.T) {
	e := newEngine()

	res := e.ValidateTrainer(validation.TrainerRequest{
		Specialization: validation.Ptr("Cloud and DevOps"),
		CourseCategory: validation.Ptr("devops"),
		Available:      true,
	})
	assert.True(t, res.Valid)

	res = e.ValidateTrainer(validation.TrainerRequest{
		Specialization: validation.Ptr("Data Science"),
		CourseCategory: validation.Ptr("Frontend"),
		Available:      false,
	})
	assert.Equal(t, []string{
		validation.MsgTrainerSpecializationMismatch,
		validation.MsgTrainerUnavailable,
	}, res.Errors)

	res = e.ValidateTrainer(validation.TrainerRequest{
		Specialization: validation.Ptr("Straße und Verkehr"),
		CourseCategory: validation.Ptr("STRASSE"),
		Available:      true,
	})
	assert.True(t, res.Valid)

	// no category means nothing to match against
	res = e.ValidateTrainer(validation.TrainerRequest{
		Specialization: validation.Ptr("Data Science"),
		Available:      true,
	})
	assert.True(t, res.Valid)
}

func TestValidateAssessment(t *testing.T) {
	e := newEngine()

	res := e.ValidateAssessment(validation.AssessmentRequest{
		PassingScore: validation.Ptr(60),
		MaxScore:     validation.Ptr(100),
		TraineeScore: validation.Ptr(100),
	})
	assert.True(t, res.Valid)

	res = e.ValidateAssessment(validation.AssessmentRequest{
		PassingScore: validation.Ptr(120),
		MaxScore:     validation.Ptr(100),
		TraineeScore: validation.Ptr(-1),
	})
	assert.Equal(t, []string{
		validation.MsgAssessmentPassingOutOfRange,
		validation.MsgAssessmentTraineeOutOfRange,
	}, res.Errors)

	res = e.ValidateAssessment(validation.AssessmentRequest{PassingScore: validation.Ptr(120)})
	assert.True(t, res.Valid, "max score absent skips range checks")
}

func TestValidateCertification(t *testing.T) {
	e := newEngine()

	res := e.ValidateCertification(validation.CertificationRequest{
		TraineeID:        validation.Ptr(int64(1)),
		CourseID:         validation.Ptr(int64(2)),
		AssessmentPassed: true,
		PassingScore:     validation.Ptr(50),
		TraineeScore:     validation.Ptr(50),
	})
	assert.True(t, res.Valid)

	res = e.ValidateCertification(validation.CertificationRequest{
		TraineeID:        validation.Ptr(int64(1)),
		CourseID:         validation.Ptr(int64(2)),
		AssessmentPassed: false,
	})
	assert.Equal(t, []string{validation.MsgCertificationNotPassed}, res.Errors)

	res = e.ValidateCertification(validation.CertificationRequest{
		CourseID:         validation.Ptr(int64(2)),
		AssessmentPassed: true,
		PassingScore:     validation.Ptr(70),
		TraineeScore:     validation.Ptr(69),
	})
	assert.Equal(t, []string{
		validation.MsgCertificationBelowPassing,
		validation.MsgCertificationIdsRequired,
	}, res.Errors)
}

func TestValidateDispatch(t *testing.T) {
	e := newEngine()

	res := e.Validate(validation.AssessmentRequest{
		PassingScore: validation.Ptr(5),
		MaxScore:     validation.Ptr(4),
	})
	require.False(t, res.Valid)
	assert.Equal(t, []string{validation.MsgAssessmentPassingOutOfRange}, res.Errors)

	res = e.Validate(nil)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{validation.MsgUnsupportedValidationKind}, res.Errors)
}
