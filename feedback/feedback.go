package feedback

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/skilldev/backend/srvcerror"
)

const MaxCommentLength = 2000

type Feedback struct {
	ID        int64
	TraineeID int64
	TrainerID *int64
	CourseID  *int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}

const ErrCodeInvalidFeedback = "invalid_feedback"

func ErrInvalidFeedback(msg string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidFeedback,
		msg,
	).SetHttpStatusCode(http.StatusBadRequest)
}

// Check applies the submission rules, stopping at the first violation.
func (f Feedback) Check() error {
	if f.Rating < 1 || f.Rating > 5 {
		return ErrInvalidFeedback("Rating must be between 1 and 5")
	}
	if strings.TrimSpace(f.Comment) == "" {
		return ErrInvalidFeedback("Comment is required")
	}
	if utf8.RuneCountInString(f.Comment) > MaxCommentLength {
		return ErrInvalidFeedback("Comment must be at most 2000 characters")
	}
	if f.TraineeID <= 0 {
		return ErrInvalidFeedback("Trainee ID is required")
	}
	return nil
}
