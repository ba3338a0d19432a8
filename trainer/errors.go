package trainer

import (
	"net/http"

	"github.com/skilldev/backend/srvcerror"
)

const ErrCodeTrainerNotFound = "trainer_not_found"

func ErrTrainerNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTrainerNotFound,
		"trainer not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNameRequired = "name_required"

func ErrNameRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNameRequired,
		"trainer name is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidExperience = "invalid_experience"

func ErrInvalidExperience() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidExperience,
		"experience years cannot be negative",
	).SetHttpStatusCode(http.StatusBadRequest)
}
