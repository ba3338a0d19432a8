package certerror

import (
	"net/http"

	"github.com/skilldev/backend/srvcerror"
)

const ErrCodeCertificateNotFound = "certificate_not_found"

func ErrCertificateNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCertificateNotFound,
		"certificate not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeCodeExhausted = "certificate_code_exhausted"

func ErrCodeExhausted() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCodeExhausted,
		"could not allocate a unique certificate code",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
