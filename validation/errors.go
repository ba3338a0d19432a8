package validation

import (
	"net/http"
	"strings"

	"github.com/skilldev/backend/srvcerror"
)

const ErrCodeValidationRejected = "validation_rejected"

func ErrValidationRejected(errors []string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeValidationRejected,
		strings.Join(errors, "; "),
	).SetDetails(errors).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeValidationUnavailable = "validation_unavailable"

func ErrValidationUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeValidationUnavailable,
		"validation service unavailable",
	).SetHttpStatusCode(http.StatusServiceUnavailable)
}
