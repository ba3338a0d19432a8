package feedbackhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/auth"
	"github.com/skilldev/backend/feedback"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
)

type FeedbackHttpHandler struct {
	feedbackSrvc *feedback.FeedbackSrvc
}

func NewFeedbackHttpHandler(feedbackSrvc *feedback.FeedbackSrvc) *FeedbackHttpHandler {
	return &FeedbackHttpHandler{feedbackSrvc: feedbackSrvc}
}

func (h *FeedbackHttpHandler) RegisterRoutes(r chi.Router) {
	r.Route("/feedback", func(r chi.Router) {
		r.Post("/", h.SubmitFeedback)
		r.Get("/trainee/{traineeId}", h.ListByTrainee)
		r.Get("/trainer/{trainerId}", h.ListByTrainer)
	})
}

type Feedback struct {
	ID        int64     `json:"id"`
	TraineeID int64     `json:"traineeId"`
	TrainerID *int64    `json:"trainerId"`
	CourseID  *int64    `json:"courseId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func mapFeedback(f feedback.Feedback) Feedback {
	return Feedback{
		ID:        f.ID,
		TraineeID: f.TraineeID,
		TrainerID: f.TrainerID,
		CourseID:  f.CourseID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func mapFeedbackList(fs []feedback.Feedback) []Feedback {
	res := make([]Feedback, 0, len(fs))
	for _, f := range fs {
		res = append(res, mapFeedback(f))
	}
	return res
}

func (h *FeedbackHttpHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	type submitRequest struct {
		TraineeID *int64 `json:"traineeId"`
		TrainerID *int64 `json:"trainerId"`
		CourseID  *int64 `json:"courseId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}

	log := logger.FromContext(r.Context())
	var req submitRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	traineeID := int64(0)
	if req.TraineeID != nil {
		traineeID = *req.TraineeID
	} else if claimID, ok := auth.TraineeIDFromContext(r.Context()); ok {
		traineeID = claimID
	}
	f, err := h.feedbackSrvc.SubmitFeedback(r.Context(), feedback.SubmitFeedbackParams{
		TraineeID: traineeID,
		TrainerID: req.TrainerID,
		CourseID:  req.CourseID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteCreatedJson(w, mapFeedback(f))
}

func (h *FeedbackHttpHandler) ListByTrainee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "traineeId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	fs, err := h.feedbackSrvc.ListByTrainee(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapFeedbackList(fs))
}

func (h *FeedbackHttpHandler) ListByTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "trainerId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	fs, err := h.feedbackSrvc.ListByTrainer(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapFeedbackList(fs))
}
