package assmhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/assessment/assmsrvc"
)

type AssmHttpHandler struct {
	assmSrvc *assmsrvc.AssmSrvc
}

func NewAssmHttpHandler(assmSrvc *assmsrvc.AssmSrvc) *AssmHttpHandler {
	return &AssmHttpHandler{assmSrvc: assmSrvc}
}

func (h *AssmHttpHandler) RegisterRoutes(r chi.Router) {
	r.Route("/assessments", func(r chi.Router) {
		r.Get("/", h.ListAssms)
		r.Post("/", h.CreateAssm)
		r.Get("/course/{courseId}", h.ListAssmsByCourse)
		r.Get("/trainee/{traineeId}/submissions", h.ListSubmsByTrainee)
		r.Post("/submissions/{submissionId}/evaluate", h.EvaluateSubm)
		r.Get("/{id}", h.GetAssm)
		r.Put("/{id}", h.UpdateAssm)
		r.Get("/{id}/questions", h.ListQuestions)
		r.Post("/{id}/questions", h.AddQuestion)
		r.Post("/{id}/submit", h.SubmitAnswers)
		r.Get("/{id}/submissions", h.ListSubmsByAssessment)
		r.Get("/{id}/submissions/trainee/{traineeId}", h.GetSubmByTrainee)
	})
}
