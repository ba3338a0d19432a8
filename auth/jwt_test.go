package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skilldev/backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("test-key")

func TestGenerateAndValidate(t *testing.T) {
	trainerID := int64(42)
	token, err := auth.GenerateJWT("t42", auth.RoleTrainer, &trainerID, nil, time.Hour, key)
	require.NoError(t, err)

	claims, err := auth.ValidateJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleTrainer, claims.Role)
	assert.Equal(t, "t42", claims.Subject)
	require.NotNil(t, claims.TrainerID)
	assert.Equal(t, int64(42), *claims.TrainerID)
	assert.Nil(t, claims.TraineeID)

	_, err = auth.ValidateJWT(token, []byte("other-key"))
	assert.Error(t, err)

	expired, err := auth.GenerateJWT("t42", auth.RoleTrainer, &trainerID, nil, -time.Minute, key)
	require.NoError(t, err)
	_, err = auth.ValidateJWT(expired, key)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	var gotID int64
	var gotOk bool
	h := auth.GetJwtAuthMiddleware(key)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOk = auth.TrainerIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	// no token passes through anonymously
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, gotOk)

	trainerID := int64(7)
	token, err := auth.GenerateJWT("t7", auth.RoleTrainer, &trainerID, nil, time.Hour, key)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, gotOk)
	assert.Equal(t, int64(7), gotID)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), auth.ErrCodeInvalidToken)
}
