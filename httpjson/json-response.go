package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skilldev/backend/srvcerror"
)

type JsonResponse struct {
	Status  string   `json:"status"` // "success" or "error"
	Data    any      `json:"data,omitempty"`
	ErrCode string   `json:"code,omitempty"`
	ErrMsg  string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

func WriteSuccessJson(w http.ResponseWriter, data any) {
	writeJson(w, http.StatusOK, JsonResponse{Status: "success", Data: data})
}

func WriteCreatedJson(w http.ResponseWriter, data any) {
	writeJson(w, http.StatusCreated, JsonResponse{Status: "success", Data: data})
}

func WriteErrorJson(w http.ResponseWriter, errMsg string, statusCode int, errCode string, details []string) {
	writeJson(w, statusCode, JsonResponse{
		Status:  "error",
		ErrMsg:  errMsg,
		ErrCode: errCode,
		Details: details,
	})
}

func writeJson(w http.ResponseWriter, statusCode int, resp JsonResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

func writeInternalErrorJson(w http.ResponseWriter) {
	WriteErrorJson(w,
		http.StatusText(http.StatusInternalServerError),
		http.StatusInternalServerError,
		srvcerror.ErrCodeInternalServerError,
		nil)
}

// DecodeJson reads the request body into dst. A malformed body is reported
// as an invalid_request service error.
func DecodeJson(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return srvcerror.ErrInvalidRequest("request body is not valid JSON").SetDebug(err)
	}
	return nil
}

func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		if srvcErr.DebugInfo() != nil {
			logger.Warn("service error", "error", err, "debug", srvcErr.DebugInfo())
		} else {
			logger.Warn("service error", "error", err)
		}
		if srvcErr.HttpStatusCode() == http.StatusInternalServerError {
			logger.Error("internal server error", "error", err)
		}
		WriteErrorJson(w, srvcErr.Error(), srvcErr.HttpStatusCode(), srvcErr.ErrorCode(), srvcErr.Details())
		return
	}
	logger.Error("internal server error", "error", err)
	writeInternalErrorJson(w)
}
