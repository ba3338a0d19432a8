package course

import (
	"net/http"

	"github.com/skilldev/backend/srvcerror"
)

const ErrCodeCourseNotFound = "course_not_found"

func ErrCourseNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeCourseNotFound,
		"course not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeTitleRequired = "title_required"

func ErrTitleRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleRequired,
		"course title is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}
