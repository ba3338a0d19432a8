package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"golang.org/x/text/cases"
)

const (
	MsgCourseDurationNotPositive = "Course duration must be positive"
	MsgCourseEndBeforeStart      = "End date must be after start date"
	MsgCourseStartInPast         = "Start date cannot be in the past"
	MsgCourseInvalidTrainer      = "Invalid trainer assignment"
	MsgCourseBlankCategory       = "Course category cannot be blank"

	MsgTraineeEmailRequired = "Email is required"
	MsgTraineeEmailInvalid  = "Invalid email format"
	MsgTraineeContactShort  = "Contact number must be at least 10 digits"

	MsgTrainerSpecializationMismatch = "Trainer specialization does not match course category"
	MsgTrainerUnavailable            = "Trainer is not available"

	MsgAssessmentPassingOutOfRange = "Passing score must be between 0 and max score"
	MsgAssessmentTraineeOutOfRange = "Trainee score must be between 0 and max score"

	MsgCertificationNotPassed     = "Assessment must be passed to issue certificate"
	MsgCertificationBelowPassing  = "Trainee score below passing score"
	MsgCertificationIdsRequired   = "Trainee and course are required for certification"
	MsgUnsupportedValidationKind  = "Unsupported validation request"
	minContactLength              = 10
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Engine evaluates the business rules gating entity creation and certificate
// issuance. It holds no state besides the clock used for date rules.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Validate dispatches on the request kind. Every violated rule is reported,
// in the order the rules are checked.
func (e *Engine) Validate(req Request) Result {
	switch r := req.(type) {
	case CourseRequest:
		return e.ValidateCourse(r)
	case TraineeRequest:
		return e.ValidateTrainee(r)
	case TrainerRequest:
		return e.ValidateTrainer(r)
	case AssessmentRequest:
		return e.ValidateAssessment(r)
	case CertificationRequest:
		return e.ValidateCertification(r)
	default:
		return Fail([]string{MsgUnsupportedValidationKind})
	}
}

func (e *Engine) ValidateCourse(req CourseRequest) Result {
	var errs []string
	if req.DurationHours == nil || *req.DurationHours <= 0 {
		errs = append(errs, MsgCourseDurationNotPositive)
	}
	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		errs = append(errs, MsgCourseEndBeforeStart)
	}
	if req.StartDate != nil && req.StartDate.Before(civil.DateOf(e.now())) {
		errs = append(errs, MsgCourseStartInPast)
	}
	if req.TrainerID != nil && *req.TrainerID <= 0 {
		errs = append(errs, MsgCourseInvalidTrainer)
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		errs = append(errs, MsgCourseBlankCategory)
	}
	return resultOf(errs)
}

func (e *Engine) ValidateTrainee(req TraineeRequest) Result {
	var errs []string
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		errs = append(errs, MsgTraineeEmailRequired)
	} else if !emailRe.MatchString(*req.Email) {
		errs = append(errs, MsgTraineeEmailInvalid)
	}
	if req.Contact != nil && utf8.RuneCountInString(*req.Contact) < minContactLength {
		errs = append(errs, MsgTraineeContactShort)
	}
	return resultOf(errs)
}

func (e *Engine) ValidateTrainer(req TrainerRequest) Result {
	var errs []string
	if req.Specialization != nil && req.CourseCategory != nil &&
		!specializationCovers(*req.Specialization, *req.CourseCategory) {
		errs = append(errs, MsgTrainerSpecializationMismatch)
	}
	if !req.Available {
		errs = append(errs, MsgTrainerUnavailable)
	}
	return resultOf(errs)
}

// specializationCovers compares case-folded text, so "Straße" covers "STRASSE".
func specializationCovers(specialization, category string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(specialization), fold.String(category))
}

func (e *Engine) ValidateAssessment(req AssessmentRequest) Result {
	var errs []string
	if req.PassingScore != nil && req.MaxScore != nil &&
		(*req.PassingScore < 0 || *req.PassingScore > *req.MaxScore) {
		errs = append(errs, MsgAssessmentPassingOutOfRange)
	}
	if req.TraineeScore != nil && req.MaxScore != nil &&
		(*req.TraineeScore < 0 || *req.TraineeScore > *req.MaxScore) {
		errs = append(errs, MsgAssessmentTraineeOutOfRange)
	}
	return resultOf(errs)
}

func (e *Engine) ValidateCertification(req CertificationRequest) Result {
	var errs []string
	if !req.AssessmentPassed {
		errs = append(errs, MsgCertificationNotPassed)
	}
	if req.TraineeScore != nil && req.PassingScore != nil && *req.TraineeScore < *req.PassingScore {
		errs = append(errs, MsgCertificationBelowPassing)
	}
	if req.TraineeID == nil || req.CourseID == nil {
		errs = append(errs, MsgCertificationIdsRequired)
	}
	return resultOf(errs)
}
