package trainerhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/trainer"
)

type TrainerHttpHandler struct {
	trainerSrvc *trainer.TrainerSrvc
}

func NewTrainerHttpHandler(trainerSrvc *trainer.TrainerSrvc) *TrainerHttpHandler {
	return &TrainerHttpHandler{trainerSrvc: trainerSrvc}
}

func (h *TrainerHttpHandler) RegisterRoutes(r chi.Router) {
	r.Route("/trainers", func(r chi.Router) {
		r.Get("/", h.ListTrainers)
		r.Post("/", h.CreateTrainer)
		r.Get("/available", h.ListAvailableTrainers)
		r.Get("/{id}", h.GetTrainer)
		r.Put("/{id}", h.UpdateTrainer)
		r.Delete("/{id}", h.DeleteTrainer)
	})
}

type Trainer struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Specialization  *string   `json:"specialization"`
	ExperienceYears *int      `json:"experienceYears"`
	Available       bool      `json:"available"`
	Contact         *string   `json:"contact"`
	Email           *string   `json:"email"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func mapTrainer(t trainer.Trainer) Trainer {
	return Trainer{
		ID:              t.ID,
		Name:            t.Name,
		Specialization:  t.Specialization,
		ExperienceYears: t.ExperienceYears,
		Available:       t.Available,
		Contact:         t.Contact,
		Email:           t.Email,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func mapTrainers(ts []trainer.Trainer) []Trainer {
	res := make([]Trainer, 0, len(ts))
	for _, t := range ts {
		res = append(res, mapTrainer(t))
	}
	return res
}

func (h *TrainerHttpHandler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	ts, err := h.trainerSrvc.ListTrainers(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTrainers(ts))
}

func (h *TrainerHttpHandler) ListAvailableTrainers(w http.ResponseWriter, r *http.Request) {
	ts, err := h.trainerSrvc.ListAvailableTrainers(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTrainers(ts))
}

func (h *TrainerHttpHandler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	t, err := h.trainerSrvc.GetTrainer(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTrainer(t))
}

type trainerRequest struct {
	Name            *string `json:"name"`
	Specialization  *string `json:"specialization"`
	ExperienceYears *int    `json:"experienceYears"`
	Available       *bool   `json:"available"`
	Contact         *string `json:"contact"`
	Email           *string `json:"email"`
}

func (h *TrainerHttpHandler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var req trainerRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	var name string
	if req.Name != nil {
		name = *req.Name
	}
	t, err := h.trainerSrvc.CreateTrainer(r.Context(), trainer.CreateTrainerParams{
		Name:            name,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Available:       req.Available,
		Contact:         req.Contact,
		Email:           req.Email,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteCreatedJson(w, mapTrainer(t))
}

func (h *TrainerHttpHandler) UpdateTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	var req trainerRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	t, err := h.trainerSrvc.UpdateTrainer(r.Context(), id, trainer.TrainerUpdate{
		Name:            req.Name,
		Specialization:  req.Specialization,
		ExperienceYears: req.ExperienceYears,
		Available:       req.Available,
		Contact:         req.Contact,
		Email:           req.Email,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapTrainer(t))
}

func (h *TrainerHttpHandler) DeleteTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	if err := h.trainerSrvc.DeleteTrainer(r.Context(), id); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, nil)
}
