package traineehttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/srvcerror"
	"github.com/skilldev/backend/trainee"
)

type TraineeHttpHandler struct {
	traineeSrvc *trainee.TraineeSrvc
}

func NewTraineeHttpHandler(traineeSrvc *trainee.TraineeSrvc) *TraineeHttpHandler {
	return &TraineeHttpHandler{traineeSrvc: traineeSrvc}
}

func (h *TraineeHttpHandler) RegisterRoutes(r chi.Router) {
	r.Route("/trainees", func(r chi.Router) {
		r.Get("/", h.ListTrainees)
		r.Post("/", h.CreateTrainee)
		r.Get("/email/{email}", h.GetTraineeByEmail)
		r.Patch("/enrollments/{id}/status", h.UpdateEnrollmentStatus)
		r.Get("/{id}", h.GetTrainee)
		r.Put("/{id}", h.UpdateTrainee)
		r.Delete("/{id}", h.DeleteTrainee)
		r.Get("/{id}/enrollments", h.ListEnrollments)
		r.Post("/{id}/enroll", h.Enroll)
	})
}

type Trainee struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            *string   `json:"email"`
	Contact          *string   `json:"contact"`
	Qualification    *string   `json:"qualification"`
	SkillPreferences *string   `json:"skillPreferences"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Enrollment struct {
	ID         int64     `json:"id"`
	TraineeID  int64     `json:"traineeId"`
	CourseID   int64     `json:"courseId"`
	Status     string    `json:"status"`
	EnrolledAt time.Time `json:"enrolledAt"`
}

func mapTrainee(t trainee.Trainee) Trainee {
	return Trainee{
		ID:               t.ID,
		Name:             t.Name,
		Email:            t.Email,
		Contact:          t.Contact,
		Qualification:    t.Qualification,
		SkillPreferences: t.SkillPreferences,
		Active:           t.Active,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func mapEnrollment(e trainee.Enrollment) Enrollment {
	return Enrollment{
		ID:         e.ID,
		TraineeID:  e.TraineeID,
		CourseID:   e.CourseID,
		Status:     string(e.Status),
		EnrolledAt: e.EnrolledAt,
	}
}

func (h *TraineeHttpHandler) ListTrainees(w http.ResponseWriter, r *http.Request) {
	ts, err := h.traineeSrvc.ListTrainees(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	res := make([]Trainee, 0, len(ts))
	for _, t := range ts {
		res = append(res, mapTrainee(t))
	}
	httpjson.WriteSuccessJson(w, res)
}

func (h *TraineeHttpHandler) GetTrainee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	t, err := h.traineeSrvc.GetTrainee(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTrainee(t))
}

func (h *TraineeHttpHandler) GetTraineeByEmail(w http.ResponseWriter, r *http.Request) {
	t, err := h.traineeSrvc.GetTraineeByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTrainee(t))
}

type traineeRequest struct {
	Name             *string `json:"name"`
	Email            *string `json:"email"`
	Contact          *string `json:"contact"`
	Qualification    *string `json:"qualification"`
	SkillPreferences *string `json:"skillPreferences"`
	Active           *bool   `json:"active"`
}

func (h *TraineeHttpHandler) CreateTrainee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var req traineeRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	var name string
	if req.Name != nil {
		name = *req.Name
	}
	t, err := h.traineeSrvc.CreateTrainee(r.Context(), trainee.CreateTraineeParams{
		Name:             name,
		Email:            req.Email,
		Contact:          req.Contact,
		Qualification:    req.Qualification,
		SkillPreferences: req.SkillPreferences,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteCreatedJson(w, mapTrainee(t))
}

func (h *TraineeHttpHandler) UpdateTrainee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	var req traineeRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	t, err := h.traineeSrvc.UpdateTrainee(r.Context(), id, trainee.TraineeUpdate{
		Name:             req.Name,
		Email:            req.Email,
		Contact:          req.Contact,
		Qualification:    req.Qualification,
		SkillPreferences: req.SkillPreferences,
		Active:           req.Active,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTrainee(t))
}

func (h *TraineeHttpHandler) DeleteTrainee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	if err := h.traineeSrvc.DeleteTrainee(r.Context(), id); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, nil)
}

func (h *TraineeHttpHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	es, err := h.traineeSrvc.ListEnrollments(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	res := make([]Enrollment, 0, len(es))
	for _, e := range es {
		res = append(res, mapEnrollment(e))
	}
	httpjson.WriteSuccessJson(w, res)
}

func (h *TraineeHttpHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	courseID, err := httpjson.QueryID(r, "courseId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	if courseID == nil {
		httpjson.HandleError(log, w, srvcerror.ErrInvalidRequest("courseId is required"))
		return
	}
	e, err := h.traineeSrvc.Enroll(r.Context(), id, *courseID)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteCreatedJson(w, mapEnrollment(e))
}

func (h *TraineeHttpHandler) UpdateEnrollmentStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	status := trainee.EnrollmentStatus(r.URL.Query().Get("status"))
	e, err := h.traineeSrvc.UpdateEnrollmentStatus(r.Context(), id, status)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapEnrollment(e))
}
