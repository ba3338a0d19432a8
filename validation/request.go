package validation

import "cloud.google.com/go/civil"

type Kind string

const (
	KindCourse        Kind = "course"
	KindTrainee       Kind = "trainee"
	KindTrainer       Kind = "trainer"
	KindAssessment    Kind = "assessment"
	KindCertification Kind = "certification"
)

// Request is one of CourseRequest, TraineeRequest, TrainerRequest,
// AssessmentRequest or CertificationRequest. A nil pointer field means the
// value is absent and the rules depending on it are skipped.
type Request interface {
	Kind() Kind
}

type CourseRequest struct {
	DurationHours *int        `json:"durationHours"`
	StartDate     *civil.Date `json:"startDate"`
	EndDate       *civil.Date `json:"endDate"`
	TrainerID     *int64      `json:"trainerId"`
	Category      *string     `json:"category"`
}

func (CourseRequest) Kind() Kind { return KindCourse }

type TraineeRequest struct {
	Email     *string `json:"email"`
	Contact   *string `json:"contact"`
	TraineeID *int64  `json:"traineeId"`
	CourseID  *int64  `json:"courseId"`
}

func (TraineeRequest) Kind() Kind { return KindTrainee }

type TrainerRequest struct {
	Specialization *string `json:"specialization"`
	CourseCategory *string `json:"courseCategory"`
	Available      bool    `json:"available"`
}

func (TrainerRequest) Kind() Kind { return KindTrainer }

type AssessmentRequest struct {
	PassingScore *int `json:"passingScore"`
	MaxScore     *int `json:"maxScore"`
	TraineeScore *int `json:"traineeScore"`
}

func (AssessmentRequest) Kind() Kind { return KindAssessment }

type CertificationRequest struct {
	TraineeID        *int64 `json:"traineeId"`
	CourseID         *int64 `json:"courseId"`
	AssessmentPassed bool   `json:"assessmentPassed"`
	PassingScore     *int   `json:"passingScore"`
	TraineeScore     *int   `json:"traineeScore"`
}

func (CertificationRequest) Kind() Kind { return KindCertification }

// Ptr returns a pointer to v, handy for filling optional request fields.
func Ptr[T any](v T) *T {
	return &v
}
