package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang-jwt/jwt/v5/request"
	"github.com/skilldev/backend/httpjson"
)

const (
	RoleAdmin   = "admin"
	RoleTrainer = "trainer"
	RoleTrainee = "trainee"
)

type JwtClaims struct {
	Role      string `json:"role,omitempty"`
	TrainerID *int64 `json:"trainerId,omitempty"`
	TraineeID *int64 `json:"traineeId,omitempty"`
	jwt.RegisteredClaims
}

type ClaimsKeyType string

var CtxJwtClaimsKey ClaimsKeyType = "jwtClaims"

const ErrCodeInvalidToken = "invalid_token"

func GenerateJWT(subject, role string, trainerID, traineeID *int64, ttl time.Duration, jwtKey []byte) (string, error) {
	now := time.Now()
	claims := &JwtClaims{
		Role:      role,
		TrainerID: trainerID,
		TraineeID: traineeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

func ValidateJWT(tokenStr string, jwtKey []byte) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("invalid token signature")
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GetJwtAuthMiddleware validates a bearer token when one is present and adds
// the claims to the request context. Requests without a token pass through
// with nil claims.
func GetJwtAuthMiddleware(jwtKey []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if err != nil {
				if errors.Is(err, request.ErrNoTokenInRequest) {
					ctx := context.WithValue(r.Context(), CtxJwtClaimsKey, (*JwtClaims)(nil))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				httpjson.WriteErrorJson(w, err.Error(), http.StatusUnauthorized, ErrCodeInvalidToken, nil)
				return
			}

			claims, err := ValidateJWT(token, jwtKey)
			if err != nil {
				httpjson.WriteErrorJson(w, err.Error(), http.StatusUnauthorized, ErrCodeInvalidToken, nil)
				return
			}

			ctx := context.WithValue(r.Context(), CtxJwtClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// ClaimsFromContext returns the claims set by the middleware, nil when the
// request carried no token.
func ClaimsFromContext(ctx context.Context) *JwtClaims {
	claims, _ := ctx.Value(CtxJwtClaimsKey).(*JwtClaims)
	return claims
}

// TrainerIDFromContext returns the trainer id of an authenticated trainer.
func TrainerIDFromContext(ctx context.Context) (int64, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil || claims.TrainerID == nil {
		return 0, false
	}
	return *claims.TrainerID, true
}

// TraineeIDFromContext returns the trainee id of an authenticated trainee.
func TraineeIDFromContext(ctx context.Context) (int64, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil || claims.TraineeID == nil {
		return 0, false
	}
	return *claims.TraineeID, true
}
