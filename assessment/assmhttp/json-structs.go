package assmhttp

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmsrvc/assmcmd"
)

type Assessment struct {
	ID                 int64       `json:"id"`
	Title              string      `json:"title"`
	CourseID           *int64      `json:"courseId"`
	PassingScore       *int        `json:"passingScore"`
	MaxScore           *int        `json:"maxScore"`
	DueDate            *civil.Date `json:"dueDate"`
	CreatedByTrainerID *int64      `json:"createdByTrainerId"`
	Status             string      `json:"status"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

type Question struct {
	ID               int64    `json:"id"`
	AssessmentID     int64    `json:"assessmentId"`
	Prompt           string   `json:"prompt"`
	Options          []string `json:"options"`
	CorrectOption    *string  `json:"correctOption"`
	MarksPerQuestion int      `json:"marksPerQuestion"`
}

type Submission struct {
	ID                   int64      `json:"id"`
	AssessmentID         int64      `json:"assessmentId"`
	TraineeID            int64      `json:"traineeId"`
	Score                *int       `json:"score"`
	MaxScore             *int       `json:"maxScore"`
	SubmittedAt          time.Time  `json:"submittedAt"`
	EvaluatedAt          *time.Time `json:"evaluatedAt"`
	EvaluatedByTrainerID *int64     `json:"evaluatedByTrainerId"`
	Status               string     `json:"status"`
}

type Issuance struct {
	Status          string  `json:"status"`
	CertificateID   *int64  `json:"certificateId,omitempty"`
	CertificateCode *string `json:"certificateCode,omitempty"`
	Reason          string  `json:"reason,omitempty"`
}

type Evaluation struct {
	Submission Submission `json:"submission"`
	Issuance   Issuance   `json:"issuance"`
}

func mapAssm(a assmdomain.Assessment) Assessment {
	return Assessment{
		ID:                 a.ID,
		Title:              a.Title,
		CourseID:           a.CourseID,
		PassingScore:       a.PassingScore,
		MaxScore:           a.MaxScore,
		DueDate:            a.DueDate,
		CreatedByTrainerID: a.CreatedByTrainerID,
		Status:             string(a.Status),
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func mapAssms(as []assmdomain.Assessment) []Assessment {
	res := make([]Assessment, 0, len(as))
	for _, a := range as {
		res = append(res, mapAssm(a))
	}
	return res
}

func mapQuestion(q assmdomain.Question) Question {
	return Question{
		ID:               q.ID,
		AssessmentID:     q.AssessmentID,
		Prompt:           q.Prompt,
		Options:          q.Options,
		CorrectOption:    q.CorrectOption,
		MarksPerQuestion: q.Marks(),
	}
}

func mapSubm(s assmdomain.Submission) Submission {
	return Submission{
		ID:                   s.ID,
		AssessmentID:         s.AssessmentID,
		TraineeID:            s.TraineeID,
		Score:                s.Score,
		MaxScore:             s.MaxScore,
		SubmittedAt:          s.SubmittedAt,
		EvaluatedAt:          s.EvaluatedAt,
		EvaluatedByTrainerID: s.EvaluatedByTrainerID,
		Status:               string(s.Status),
	}
}

func mapSubms(ss []assmdomain.Submission) []Submission {
	res := make([]Submission, 0, len(ss))
	for _, s := range ss {
		res = append(res, mapSubm(s))
	}
	return res
}

func mapEvaluation(e assmcmd.EvaluationResult) Evaluation {
	issuance := Issuance{
		Status: string(e.Issuance.Status),
		Reason: e.Issuance.Reason,
	}
	if c := e.Issuance.Certificate; c != nil {
		id, code := c.ID, c.Code
		issuance.CertificateID = &id
		issuance.CertificateCode = &code
	}
	return Evaluation{
		Submission: mapSubm(e.Submission),
		Issuance:   issuance,
	}
}
