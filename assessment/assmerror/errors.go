package assmerror

import (
	"fmt"
	"net/http"

	"github.com/skilldev/backend/srvcerror"
)

const ErrCodeAssessmentNotFound = "assessment_not_found"

func ErrAssessmentNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAssessmentNotFound,
		"assessment not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionNotFound = "submission_not_found"

func ErrSubmissionNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeSubmissionNotFound,
		"submission not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeDuplicateSubmission = "duplicate_submission"

func ErrDuplicateSubmission() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeDuplicateSubmission,
		"already submitted for this assessment",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeTitleRequired = "title_required"

func ErrTitleRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeTitleRequired,
		"assessment title is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUnknownStatus = "unknown_status"

func ErrUnknownStatus(status string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUnknownStatus,
		fmt.Sprintf("unknown assessment status %q", status),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodePromptRequired = "prompt_required"

func ErrPromptRequired() *srvcerror.Error {
	return srvcerror.New(
		ErrCodePromptRequired,
		"question prompt is required",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeEvaluatorMismatch = "evaluator_mismatch"

func ErrEvaluatorMismatch() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeEvaluatorMismatch,
		"trainerId does not match the authenticated trainer",
	).SetHttpStatusCode(http.StatusForbidden)
}
