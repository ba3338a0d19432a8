package assmdomain

import (
	"strings"
	"time"
)

type SubmStatus string

const (
	SubmStatusSubmitted SubmStatus = "SUBMITTED"
	SubmStatusEvaluated SubmStatus = "EVALUATED"
)

type Submission struct {
	ID                   int64
	AssessmentID         int64
	TraineeID            int64
	Score                *int
	MaxScore             *int
	SubmittedAt          time.Time
	EvaluatedAt          *time.Time
	EvaluatedByTrainerID *int64
	Status               SubmStatus
}

// Score grades answers against the questions. Every question contributes its
// marks to maxScore. It contributes to score only when an answer for it
// exists and, trimmed, matches the correct option ignoring case.
func Score(questions []Question, answers map[int64]string) (score int, maxScore int) {
	for _, q := range questions {
		marks := q.Marks()
		maxScore += marks
		if isCorrect(q, answers) {
			score += marks
		}
	}
	return score, maxScore
}

func isCorrect(q Question, answers map[int64]string) bool {
	if q.CorrectOption == nil {
		return false
	}
	answer, ok := answers[q.ID]
	if !ok {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), *q.CorrectOption)
}

// NewSubmission grades the answers and returns a not yet persisted submission.
func NewSubmission(assessmentID, traineeID int64, questions []Question, answers map[int64]string, now time.Time) Submission {
	score, maxScore := Score(questions, answers)
	return Submission{
		AssessmentID: assessmentID,
		TraineeID:    traineeID,
		Score:        &score,
		MaxScore:     &maxScore,
		SubmittedAt:  now,
		Status:       SubmStatusSubmitted,
	}
}

// MarkEvaluated records a trainer's evaluation. A non-nil score overrides the
// computed one.
func (s *Submission) MarkEvaluated(score *int, trainerID int64, now time.Time) {
	if score != nil {
		v := *score
		s.Score = &v
	}
	at := now
	s.EvaluatedAt = &at
	s.EvaluatedByTrainerID = &trainerID
	s.Status = SubmStatusEvaluated
}

// EligibleForCertificate reports whether the submission reaches the
// assessment's passing score. Without a passing score or a score nobody
// qualifies.
func (s Submission) EligibleForCertificate(a Assessment) bool {
	if a.PassingScore == nil || s.Score == nil {
		return false
	}
	return *s.Score >= *a.PassingScore
}
