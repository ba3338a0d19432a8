package coursehttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/course"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
)

type CourseHttpHandler struct {
	courseSrvc *course.CourseSrvc
}

func NewCourseHttpHandler(courseSrvc *course.CourseSrvc) *CourseHttpHandler {
	return &CourseHttpHandler{courseSrvc: courseSrvc}
}

func (h *CourseHttpHandler) RegisterRoutes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.ListCourses)
		r.Post("/", h.CreateCourse)
		r.Get("/active", h.ListActiveCourses)
		r.Get("/trainer/{trainerId}", h.ListCoursesByTrainer)
		r.Get("/{id}", h.GetCourse)
		r.Put("/{id}", h.UpdateCourse)
		r.Delete("/{id}", h.DeleteCourse)
		r.Patch("/{id}/deactivate", h.DeactivateCourse)
	})
}

func (h *CourseHttpHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	cs, err := h.courseSrvc.ListCourses(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourses(cs))
}

func (h *CourseHttpHandler) ListActiveCourses(w http.ResponseWriter, r *http.Request) {
	cs, err := h.courseSrvc.ListActiveCourses(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourses(cs))
}

func (h *CourseHttpHandler) ListCoursesByTrainer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	trainerID, err := httpjson.PathID(r, "trainerId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	cs, err := h.courseSrvc.ListCoursesByTrainer(r.Context(), trainerID)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourses(cs))
}

func (h *CourseHttpHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	c, err := h.courseSrvc.GetCourse(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourse(c))
}

func (h *CourseHttpHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	var req courseRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	var title string
	if req.Title != nil {
		title = *req.Title
	}
	c, err := h.courseSrvc.CreateCourse(r.Context(), course.CreateCourseParams{
		Title:         title,
		Category:      req.Category,
		DurationHours: req.DurationHours,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TrainerID:     req.TrainerID,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteCreatedJson(w, mapCourse(c))
}

func (h *CourseHttpHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	var req courseRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	c, err := h.courseSrvc.UpdateCourse(r.Context(), id, course.CourseUpdate{
		Title:         req.Title,
		Category:      req.Category,
		DurationHours: req.DurationHours,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		TrainerID:     req.TrainerID,
		Active:        req.Active,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourse(c))
}

func (h *CourseHttpHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	if err := h.courseSrvc.DeleteCourse(r.Context(), id); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, nil)
}

func (h *CourseHttpHandler) DeactivateCourse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	c, err := h.courseSrvc.DeactivateCourse(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCourse(c))
}
