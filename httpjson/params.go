package httpjson

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/srvcerror"
)

// PathID parses a positive int64 chi URL parameter.
func PathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, srvcerror.ErrInvalidRequest("invalid " + param + ": " + raw)
	}
	return id, nil
}

// QueryID parses a positive int64 query parameter. A missing parameter
// yields nil.
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, srvcerror.ErrInvalidRequest("invalid " + name + ": " + raw)
	}
	return &v, nil
}

func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, srvcerror.ErrInvalidRequest("invalid " + name + ": " + raw)
	}
	return &v, nil
}
