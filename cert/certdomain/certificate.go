package certdomain

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

const (
	DefaultCourseName     = "Course"
	DefaultValidityMonths = 24
	CodePrefix            = "CERT-"
	codeHexLen            = 12
)

// ErrCodeTaken is returned by storage when a freshly generated certificate
// code collides with an existing one.
var ErrCodeTaken = errors.New("certificate code already taken")

type Certificate struct {
	ID             int64      `json:"id"`
	Code           string     `json:"certificateCode"`
	TraineeID      int64      `json:"traineeId"`
	CourseID       int64      `json:"courseId"`
	CourseName     string     `json:"courseName"`
	IssueDate      civil.Date `json:"issueDate"`
	ValidityMonths int        `json:"validityMonths"`
	IssuedAt       time.Time  `json:"issuedAt"`
}

// ValidUntil is the last calendar day the certificate is valid.
func (c Certificate) ValidUntil() civil.Date {
	return addMonths(c.IssueDate, c.ValidityMonths)
}

// addMonths clamps to the last day of the target month, so Feb 29 plus a
// year is Feb 28 rather than Mar 1.
func addMonths(d civil.Date, months int) civil.Date {
	firstOfTarget := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	day := d.Day
	if day > lastDay {
		day = lastDay
	}
	return civil.Date{Year: firstOfTarget.Year(), Month: firstOfTarget.Month(), Day: day}
}

// NewCode returns "CERT-" followed by the first 12 upper-case hex characters
// of a random UUID.
func NewCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return CodePrefix + strings.ToUpper(hex[:codeHexLen])
}

// New builds an unsaved certificate issued at now.
func New(traineeID, courseID int64, courseName string, code string, now time.Time) Certificate {
	if strings.TrimSpace(courseName) == "" {
		courseName = DefaultCourseName
	}
	return Certificate{
		Code:           code,
		TraineeID:      traineeID,
		CourseID:       courseID,
		CourseName:     courseName,
		IssueDate:      civil.DateOf(now),
		ValidityMonths: DefaultValidityMonths,
		IssuedAt:       now,
	}
}
