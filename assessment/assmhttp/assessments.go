package assmhttp

import (
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmsrvc/assmcmd"
	"github.com/skilldev/backend/auth"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
)

func (h *AssmHttpHandler) ListAssms(w http.ResponseWriter, r *http.Request) {
	assms, err := h.assmSrvc.ListAssms.Handle(r.Context(), struct{}{})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapAssms(assms))
}

func (h *AssmHttpHandler) ListAssmsByCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	courseID, err := httpjson.PathID(r, "courseId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	assms, err := h.assmSrvc.ListAssmsByCourse.Handle(r.Context(), courseID)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapAssms(assms))
}

func (h *AssmHttpHandler) GetAssm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	a, err := h.assmSrvc.GetAssm.Handle(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapAssm(a))
}

func (h *AssmHttpHandler) CreateAssm(w http.ResponseWriter, r *http.Request) {
	type createAssmRequest struct {
		Title              string      `json:"title"`
		CourseID           *int64      `json:"courseId"`
		PassingScore       *int        `json:"passingScore"`
		MaxScore           *int        `json:"maxScore"`
		DueDate            *civil.Date `json:"dueDate"`
		CreatedByTrainerID *int64      `json:"createdByTrainerId"`
		Status             *string     `json:"status"`
	}

	log := logger.FromContext(r.Context())

	var req createAssmRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	createdBy := req.CreatedByTrainerID
	if createdBy == nil {
		if id, ok := auth.TrainerIDFromContext(r.Context()); ok {
			createdBy = &id
		}
	}

	a, err := h.assmSrvc.CreateAssm.Handle(r.Context(), assmcmd.CreateAssmParams{
		Title:              req.Title,
		CourseID:           req.CourseID,
		PassingScore:       req.PassingScore,
		MaxScore:           req.MaxScore,
		DueDate:            req.DueDate,
		CreatedByTrainerID: createdBy,
		Status:             statusPtr(req.Status),
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteCreatedJson(w, mapAssm(a))
}

func (h *AssmHttpHandler) UpdateAssm(w http.ResponseWriter, r *http.Request) {
	type updateAssmRequest struct {
		Title        *string     `json:"title"`
		CourseID     *int64      `json:"courseId"`
		PassingScore *int        `json:"passingScore"`
		MaxScore     *int        `json:"maxScore"`
		DueDate      *civil.Date `json:"dueDate"`
		Status       *string     `json:"status"`
	}

	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	var req updateAssmRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	a, err := h.assmSrvc.UpdateAssm.Handle(r.Context(), assmcmd.UpdateAssmParams{
		ID: id,
		Update: assmdomain.AssessmentUpdate{
			Title:        req.Title,
			CourseID:     req.CourseID,
			PassingScore: req.PassingScore,
			MaxScore:     req.MaxScore,
			DueDate:      req.DueDate,
			Status:       statusPtr(req.Status),
		},
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapAssm(a))
}

func (h *AssmHttpHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	qs, err := h.assmSrvc.ListQuestions.Handle(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	res := make([]Question, 0, len(qs))
	for _, q := range qs {
		res = append(res, mapQuestion(q))
	}
	httpjson.WriteSuccessJson(w, res)
}

func (h *AssmHttpHandler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	type addQuestionRequest struct {
		Prompt           string   `json:"prompt"`
		Options          []string `json:"options"`
		CorrectOption    *string  `json:"correctOption"`
		MarksPerQuestion *int     `json:"marksPerQuestion"`
	}

	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	var req addQuestionRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	q, err := h.assmSrvc.AddQuestion.Handle(r.Context(), assmcmd.AddQuestionParams{
		AssessmentID:     id,
		Prompt:           req.Prompt,
		Options:          req.Options,
		CorrectOption:    req.CorrectOption,
		MarksPerQuestion: req.MarksPerQuestion,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteCreatedJson(w, mapQuestion(q))
}

func statusPtr(s *string) *assmdomain.Status {
	if s == nil {
		return nil
	}
	status := assmdomain.Status(*s)
	return &status
}
