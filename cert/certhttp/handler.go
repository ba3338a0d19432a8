package certhttp

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certsrvc"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
	"golang.org/x/sync/singleflight"
)

type CertHttpHandler struct {
	certSrvc *certsrvc.CertSrvc

	// verification lookups by code are cached, singleflight prevents stampedes
	codeCache *cache.Cache
	sfGroup   singleflight.Group
}

func NewCertHttpHandler(certSrvc *certsrvc.CertSrvc) *CertHttpHandler {
	return &CertHttpHandler{
		certSrvc:  certSrvc,
		codeCache: cache.New(30*time.Second, 5*time.Minute),
	}
}

func (h *CertHttpHandler) RegisterRoutes(r chi.Router) {
	r.Route("/certificates", func(r chi.Router) {
		r.Get("/", h.ListCerts)
		r.Post("/issue", h.IssueCert)
		r.Get("/trainee/{traineeId}", h.ListByTrainee)
		r.Get("/course/{courseId}", h.ListByCourse)
		r.Get("/code/{code}", h.GetByCode)
		r.Get("/{id}", h.GetCert)
	})
}

type CertView struct {
	ID              int64     `json:"id"`
	CertificateCode string    `json:"certificateCode"`
	TraineeID       int64     `json:"traineeId"`
	CourseID        int64     `json:"courseId"`
	CourseName      string    `json:"courseName"`
	IssueDate       string    `json:"issueDate"`
	ValidityMonths  int       `json:"validityMonths"`
	ValidUntil      string    `json:"validUntil"`
	IssuedAt        time.Time `json:"issuedAt"`
}

func mapCert(c certdomain.Certificate) CertView {
	return CertView{
		ID:              c.ID,
		CertificateCode: c.Code,
		TraineeID:       c.TraineeID,
		CourseID:        c.CourseID,
		CourseName:      c.CourseName,
		IssueDate:       c.IssueDate.String(),
		ValidityMonths:  c.ValidityMonths,
		ValidUntil:      c.ValidUntil().String(),
		IssuedAt:        c.IssuedAt,
	}
}

func mapCerts(certs []certdomain.Certificate) []CertView {
	res := make([]CertView, 0, len(certs))
	for _, c := range certs {
		res = append(res, mapCert(c))
	}
	return res
}

func (h *CertHttpHandler) ListCerts(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certSrvc.ListCerts.Handle(r.Context(), struct{}{})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCerts(certs))
}

func (h *CertHttpHandler) ListByTrainee(w http.ResponseWriter, r *http.Request) {
	h.listByID(w, r, "traineeId", h.certSrvc.ListByTrainee.Handle)
}

func (h *CertHttpHandler) ListByCourse(w http.ResponseWriter, r *http.Request) {
	h.listByID(w, r, "courseId", h.certSrvc.ListByCourse.Handle)
}

func (h *CertHttpHandler) listByID(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	list func(ctx context.Context, id int64) ([]certdomain.Certificate, error),
) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, param)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	certs, err := list(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCerts(certs))
}

func (h *CertHttpHandler) GetCert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	c, err := h.certSrvc.GetCert.Handle(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapCert(c))
}

// GetByCode serves public certificate verification.
func (h *CertHttpHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if cached, found := h.codeCache.Get(code); found {
		httpjson.WriteSuccessJson(w, cached.(CertView))
		return
	}

	// the flight is shared, so one caller going away must not cancel it
	flightCtx := context.WithoutCancel(r.Context())
	result, err, _ := h.sfGroup.Do(code, func() (interface{}, error) {
		c, err := h.certSrvc.GetCertByCode.Handle(flightCtx, code)
		if err != nil {
			return nil, err
		}
		view := mapCert(c)
		h.codeCache.Set(code, view, cache.DefaultExpiration)
		return view, nil
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, result.(CertView))
}

func (h *CertHttpHandler) IssueCert(w http.ResponseWriter, r *http.Request) {
	type issueRequest struct {
		TraineeID    int64  `json:"traineeId"`
		CourseID     int64  `json:"courseId"`
		CourseName   string `json:"courseName"`
		PassingScore *int   `json:"passingScore"`
		TraineeScore *int   `json:"traineeScore"`
	}

	log := logger.FromContext(r.Context())

	var req issueRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	res, err := h.certSrvc.IssueCert.Handle(r.Context(), certsrvc.IssueCertParams{
		TraineeID:    req.TraineeID,
		CourseID:     req.CourseID,
		CourseName:   req.CourseName,
		PassingScore: req.PassingScore,
		TraineeScore: req.TraineeScore,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteCreatedJson(w, mapCert(res.Certificate))
}
