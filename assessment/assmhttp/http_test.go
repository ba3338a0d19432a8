package assmhttp_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/assessment/assmhttp"
	"github.com/skilldev/backend/assessment/assmsrvc"
	"github.com/skilldev/backend/auth"
	"github.com/skilldev/backend/cert/certevents"
	"github.com/skilldev/backend/cert/certsrvc"
	"github.com/skilldev/backend/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtKey = []byte("assm-test")

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details []string        `json:"details"`
}

func setupHandler(t *testing.T) http.Handler {
	t.Helper()
	validator := validation.NewLocalClient(validation.NewEngine())
	certSrvc := certsrvc.NewCertSrvc(certsrvc.NewInMemCertRepo(), validator, certevents.LogPublisher{})
	assmSrvc := assmsrvc.NewAssmSrvc(
		assmsrvc.NewInMemAssmRepo(),
		assmsrvc.NewInMemSubmRepo(),
		validator,
		certSrvc.IssueCert.Handle,
	)

	r := chi.NewRouter()
	r.Use(auth.GetJwtAuthMiddleware(jwtKey))
	assmhttp.NewAssmHttpHandler(assmSrvc).RegisterRoutes(r)
	return r
}

func send(t *testing.T, h http.Handler, method, path string, body any, header ...string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

func TestAssessmentFlow(t *testing.T) {
	h := setupHandler(t)

	code, env := send(t, h, http.MethodPost, "/assessments", map[string]any{
		"title": "Go fundamentals", "courseId": 12, "passingScore": 50, "maxScore": 100,
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	assm := decode[assmhttp.Assessment](t, env)
	assert.Equal(t, "DRAFT", assm.Status)

	var questionIDs []int64
	for _, correct := range []string{"A", "B"} {
		code, env = send(t, h, http.MethodPost, fmt.Sprintf("/assessments/%d/questions", assm.ID), map[string]any{
			"prompt": "pick " + correct, "options": []string{"A", "B", "C"},
			"correctOption": correct, "marksPerQuestion": 50,
		})
		require.Equal(t, http.StatusCreated, code, env.Message)
		questionIDs = append(questionIDs, decode[assmhttp.Question](t, env).ID)
	}

	code, env = send(t, h, http.MethodGet, fmt.Sprintf("/assessments/%d/questions", assm.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]assmhttp.Question](t, env), 2)

	code, env = send(t, h, http.MethodPost, fmt.Sprintf("/assessments/%d/submit", assm.ID), map[string]any{
		"traineeId": 7,
		"answers":   map[string]string{fmt.Sprint(questionIDs[0]): "a", fmt.Sprint(questionIDs[1]): "c"},
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	subm := decode[assmhttp.Submission](t, env)
	assert.Equal(t, 50, *subm.Score)
	assert.Equal(t, 100, *subm.MaxScore)
	assert.Equal(t, "SUBMITTED", subm.Status)

	code, env = send(t, h, http.MethodPost, fmt.Sprintf("/assessments/%d/submit", assm.ID), map[string]any{
		"traineeId": 7, "answers": map[string]string{},
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "duplicate_submission", env.Code)

	evalPath := fmt.Sprintf("/assessments/submissions/%d/evaluate?trainerId=3", subm.ID)
	code, env = send(t, h, http.MethodPost, evalPath, nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	first := decode[assmhttp.Evaluation](t, env)
	assert.Equal(t, "EVALUATED", first.Submission.Status)
	assert.Equal(t, "issued", first.Issuance.Status)
	require.NotNil(t, first.Issuance.CertificateCode)

	code, env = send(t, h, http.MethodPost, evalPath, nil)
	require.Equal(t, http.StatusOK, code)
	second := decode[assmhttp.Evaluation](t, env)
	assert.Equal(t, "existing", second.Issuance.Status)
	assert.Equal(t, *first.Issuance.CertificateCode, *second.Issuance.CertificateCode)

	code, env = send(t, h, http.MethodGet, fmt.Sprintf("/assessments/%d/submissions/trainee/7", assm.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(3), *decode[assmhttp.Submission](t, env).EvaluatedByTrainerID)

	code, env = send(t, h, http.MethodGet, "/assessments/trainee/7/submissions", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]assmhttp.Submission](t, env), 1)
}

func TestEvaluateRequiresTrainer(t *testing.T) {
	h := setupHandler(t)

	code, env := send(t, h, http.MethodPost, "/assessments", map[string]any{"title": "Quiz"})
	require.Equal(t, http.StatusCreated, code)
	assm := decode[assmhttp.Assessment](t, env)

	code, env = send(t, h, http.MethodPost, fmt.Sprintf("/assessments/%d/submit", assm.ID), map[string]any{"traineeId": 1})
	require.Equal(t, http.StatusCreated, code)
	subm := decode[assmhttp.Submission](t, env)

	path := fmt.Sprintf("/assessments/submissions/%d/evaluate", subm.ID)
	code, env = send(t, h, http.MethodPost, path, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_request", env.Code)

	trainerID := int64(21)
	token, err := auth.GenerateJWT("t21", auth.RoleTrainer, &trainerID, nil, time.Hour, jwtKey)
	require.NoError(t, err)
	code, env = send(t, h, http.MethodPost, path+"?score=3", nil, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, code, env.Message)
	res := decode[assmhttp.Evaluation](t, env)
	assert.Equal(t, int64(21), *res.Submission.EvaluatedByTrainerID)
	assert.Equal(t, 3, *res.Submission.Score)
	assert.Equal(t, "not_attempted", res.Issuance.Status)

	code, _ = send(t, h, http.MethodPost, "/assessments/submissions/999/evaluate?trainerId=1", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestEvaluateTrainerClaimWins(t *testing.T) {
	h := setupHandler(t)

	code, env := send(t, h, http.MethodPost, "/assessments", map[string]any{"title": "Quiz"})
	require.Equal(t, http.StatusCreated, code)
	assm := decode[assmhttp.Assessment](t, env)

	code, env = send(t, h, http.MethodPost, fmt.Sprintf("/assessments/%d/submit", assm.ID), map[string]any{"traineeId": 1})
	require.Equal(t, http.StatusCreated, code)
	subm := decode[assmhttp.Submission](t, env)

	trainerID := int64(21)
	token, err := auth.GenerateJWT("t21", auth.RoleTrainer, &trainerID, nil, time.Hour, jwtKey)
	require.NoError(t, err)
	bearer := "Bearer " + token
	path := fmt.Sprintf("/assessments/submissions/%d/evaluate", subm.ID)

	code, env = send(t, h, http.MethodPost, path+"?trainerId=99", nil, "Authorization", bearer)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "evaluator_mismatch", env.Code)

	code, env = send(t, h, http.MethodPost, path+"?trainerId=21&score=2", nil, "Authorization", bearer)
	require.Equal(t, http.StatusOK, code, env.Message)
	res := decode[assmhttp.Evaluation](t, env)
	assert.Equal(t, int64(21), *res.Submission.EvaluatedByTrainerID)
}

func TestCreateAssessmentRejected(t *testing.T) {
	h := setupHandler(t)

	code, env := send(t, h, http.MethodPost, "/assessments", map[string]any{
		"title": "Broken", "passingScore": 10, "maxScore": 5,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, validation.ErrCodeValidationRejected, env.Code)
	assert.Equal(t, []string{validation.MsgAssessmentPassingOutOfRange}, env.Details)

	code, env = send(t, h, http.MethodPut, "/assessments/1", map[string]any{"status": "ARCHIVED"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "unknown_status", env.Code)

	code, _ = send(t, h, http.MethodGet, "/assessments/1", nil)
	assert.Equal(t, http.StatusNotFound, code)
}
