package assmhttp

import (
	"net/http"

	"github.com/skilldev/backend/assessment/assmerror"
	"github.com/skilldev/backend/assessment/assmsrvc"
	"github.com/skilldev/backend/assessment/assmsrvc/assmcmd"
	"github.com/skilldev/backend/auth"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/logger"
	"github.com/skilldev/backend/srvcerror"
)

func (h *AssmHttpHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	type submitRequest struct {
		TraineeID *int64           `json:"traineeId"`
		Answers   map[int64]string `json:"answers"`
	}

	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	var req submitRequest
	if err := httpjson.DecodeJson(r, &req); err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	traineeID := int64(0)
	if req.TraineeID != nil {
		traineeID = *req.TraineeID
	} else if claimID, ok := auth.TraineeIDFromContext(r.Context()); ok {
		traineeID = claimID
	}

	s, err := h.assmSrvc.SubmitAnswers.Handle(r.Context(), assmcmd.SubmitAnswersParams{
		AssessmentID: id,
		TraineeID:    traineeID,
		Answers:      req.Answers,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteCreatedJson(w, mapSubm(s))
}

// EvaluateSubm takes score, trainerId and courseName from the query string.
// Without trainerId the authenticated trainer is the evaluator.
func (h *AssmHttpHandler) EvaluateSubm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	submID, err := httpjson.PathID(r, "submissionId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	score, err := httpjson.QueryInt(r, "score")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	// an authenticated trainer evaluates as themselves; the query
	// parameter only names the evaluator for token-less callers
	trainerID, ok := auth.TrainerIDFromContext(r.Context())
	raw, err := httpjson.QueryID(r, "trainerId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	switch {
	case ok && raw != nil && *raw != trainerID:
		httpjson.HandleError(log, w, assmerror.ErrEvaluatorMismatch())
		return
	case !ok && raw != nil:
		trainerID, ok = *raw, true
	}
	if !ok {
		httpjson.HandleError(log, w, srvcerror.ErrInvalidRequest("trainerId is required"))
		return
	}

	var courseName *string
	if name := r.URL.Query().Get("courseName"); name != "" {
		courseName = &name
	}

	res, err := h.assmSrvc.EvaluateSubm.Handle(r.Context(), assmcmd.EvaluateSubmParams{
		SubmissionID: submID,
		Score:        score,
		EvaluatorID:  trainerID,
		CourseName:   courseName,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapEvaluation(res))
}

func (h *AssmHttpHandler) ListSubmsByAssessment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	subms, err := h.assmSrvc.ListSubmsByAssessment.Handle(r.Context(), id)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapSubms(subms))
}

func (h *AssmHttpHandler) ListSubmsByTrainee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	traineeID, err := httpjson.PathID(r, "traineeId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	subms, err := h.assmSrvc.ListSubmsByTrainee.Handle(r.Context(), traineeID)
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapSubms(subms))
}

func (h *AssmHttpHandler) GetSubmByTrainee(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := httpjson.PathID(r, "id")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	traineeID, err := httpjson.PathID(r, "traineeId")
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	s, err := h.assmSrvc.GetSubmByTrainee.Handle(r.Context(), assmsrvc.GetSubmByTraineeParams{
		AssessmentID: id,
		TraineeID:    traineeID,
	})
	if err != nil {
		httpjson.HandleError(log, w, err)
		return
	}
	httpjson.WriteSuccessJson(w, mapSubm(s))
}
