package traineehttp_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/trainee"
	"github.com/skilldev/backend/trainee/traineehttp"
	"github.com/skilldev/backend/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

func send(t *testing.T, h http.Handler, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, &buf))
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestTraineeRoutes(t *testing.T) {
	srvc := trainee.NewTraineeSrvc(
		trainee.NewInMemTraineeRepo(),
		trainee.NewInMemEnrollmentRepo(),
		validation.NewLocalClient(validation.NewEngine()),
	)
	r := chi.NewRouter()
	traineehttp.NewTraineeHttpHandler(srvc).RegisterRoutes(r)

	body := map[string]any{"name": "Demo", "email": "demo@skilldev.com", "contact": "+1-555-0199"}
	code, env := send(t, r, http.MethodPost, "/trainees", body)
	require.Equal(t, http.StatusCreated, code, env.Message)

	code, env = send(t, r, http.MethodPost, "/trainees", body)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, trainee.ErrCodeEmailExists, env.Code)

	code, env = send(t, r, http.MethodGet, "/trainees/email/demo@skilldev.com", nil)
	require.Equal(t, http.StatusOK, code)
	var got traineehttp.Trainee
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Demo", got.Name)

	code, env = send(t, r, http.MethodPost, "/trainees/1/enroll?courseId=4", nil)
	require.Equal(t, http.StatusCreated, code)
	var e traineehttp.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &e))
	assert.Equal(t, "ENROLLED", e.Status)

	code, env = send(t, r, http.MethodPost, "/trainees/1/enroll?courseId=4", nil)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, trainee.ErrCodeAlreadyEnrolled, env.Code)

	code, _ = send(t, r, http.MethodPost, "/trainees/1/enroll", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = send(t, r, http.MethodPatch, "/trainees/enrollments/1/status?status=COMPLETED", nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &e))
	assert.Equal(t, "COMPLETED", e.Status)

	code, env = send(t, r, http.MethodGet, "/trainees/1/enrollments", nil)
	require.Equal(t, http.StatusOK, code)
	var es []traineehttp.Enrollment
	require.NoError(t, json.Unmarshal(env.Data, &es))
	assert.Len(t, es, 1)
}
