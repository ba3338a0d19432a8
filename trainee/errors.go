package trainee

import (
	"fmt"
	"net/http"

	"github.com/skilldev/backend/srvcerror"
)

const ErrCodeTraineeNotFound = "trainee_not_found"

func ErrTraineeNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTraineeNotFound,
		"trainee not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeNameRequired = "name_required"

func ErrNameRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeNameRequired,
		"trainee name is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEmailExists = "email_exists"

func ErrEmailExists() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEmailExists,
		"Email already registered",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeAlreadyEnrolled = "already_enrolled"

func ErrAlreadyEnrolled() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAlreadyEnrolled,
		"Already enrolled in this course",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeEnrollmentNotFound = "enrollment_not_found"

func ErrEnrollmentNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEnrollmentNotFound,
		"enrollment not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeUnknownEnrollmentStatus = "unknown_enrollment_status"

func ErrUnknownEnrollmentStatus(status string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownEnrollmentStatus,
		fmt.Sprintf("unknown enrollment status %q", status),
	).SetHttpStatusCode(http.StatusBadRequest)
}
