package valhttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/metrics"
	"github.com/skilldev/backend/srvcerror"
	"github.com/skilldev/backend/validation"
)

type ValidationHttpHandler struct {
	engine *validation.Engine
}

func NewValidationHttpHandler(engine *validation.Engine) *ValidationHttpHandler {
	return &ValidationHttpHandler{engine: engine}
}

func (h *ValidationHttpHandler) RegisterRoutes(r chi.Router) {
	r.Route("/validate", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/{kind}", h.Validate)
	})
}

func (h *ValidationHttpHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteSuccessJson(w, map[string]string{"status": "ok"})
}

func (h *ValidationHttpHandler) Validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	kind := validation.Kind(chi.URLParam(r, "kind"))
	req, err := decodeRequest(r, kind)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	res := h.engine.Validate(req)
	metrics.RecordValidation(string(kind), res.Valid)
	if !res.Valid {
		log.Info("validation rejected", "kind", kind, "errors", res.Errors)
	}

	httpjson.WriteSuccessJson(w, res)
}

func decodeRequest(r *http.Request, kind validation.Kind) (validation.Request, error) {
	switch kind {
	case validation.KindCourse:
		return decodeAs[validation.CourseRequest](r)
	case validation.KindTrainee:
		return decodeAs[validation.TraineeRequest](r)
	case validation.KindTrainer:
		return decodeAs[validation.TrainerRequest](r)
	case validation.KindAssessment:
		return decodeAs[validation.AssessmentRequest](r)
	case validation.KindCertification:
		return decodeAs[validation.CertificationRequest](r)
	}
	return nil, srvcerror.ErrInvalidRequest("unknown validation kind: " + string(kind))
}

func decodeAs[T validation.Request](r *http.Request) (validation.Request, error) {
	var v T
	if err := httpjson.DecodeJson(r, &v); err != nil {
		return nil, err
	}
	return v, nil
}
