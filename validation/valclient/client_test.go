package valclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/skilldev/backend/httpjson"
	"github.com/skilldev/backend/srvcerror"
	"github.com/skilldev/backend/validation"
	"github.com/skilldev/backend/validation/valclient"
	"github.com/skilldev/backend/validation/valhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidationServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	valhttp.NewValidationHttpHandler(validation.NewEngine()).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientRoundTrip(t *testing.T) {
	srv := newValidationServer(t)
	client := valclient.NewClient(srv.URL+"/", time.Second)

	res, err := client.Validate(context.Background(), validation.CertificationRequest{
		TraineeID:        validation.Ptr(int64(4)),
		CourseID:         validation.Ptr(int64(9)),
		AssessmentPassed: false,
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{validation.MsgCertificationNotPassed}, res.Errors)

	res, err = client.Validate(context.Background(), validation.TraineeRequest{
		Email: validation.Ptr("trainee@example.com"),
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, []string{}, res.Errors)
}

func TestClientTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client := valclient.NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.Validate(context.Background(), validation.TrainerRequest{Available: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteErrorJson(w, "boom", http.StatusInternalServerError, "internal_server_error", nil)
	}))
	t.Cleanup(srv.Close)

	_, err := valclient.NewClient(srv.URL, time.Second).Validate(context.Background(),
		validation.AssessmentRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal_server_error")
}

func TestClientInconsistentResult(t *testing.T) {
	tests := []struct {
		name   string
		result validation.Result
	}{
		{"invalid without errors", validation.Result{Valid: false, Errors: []string{}}},
		{"valid with errors", validation.Result{Valid: true, Errors: []string{"Email is required"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				httpjson.WriteSuccessJson(w, tt.result)
			}))
			t.Cleanup(srv.Close)
			client := valclient.NewClient(srv.URL, time.Second)

			_, err := client.Validate(context.Background(), validation.TraineeRequest{})
			assert.ErrorContains(t, err, "inconsistent validation result")

			err = validation.Require(context.Background(), client, validation.TraineeRequest{})
			assert.True(t, srvcerror.HasCode(err, validation.ErrCodeValidationUnavailable))
		})
	}
}
