package pgdb

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "certificates_trainee_course_key",
	})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "certificates_trainee_course_key"))
	assert.False(t, IsUniqueViolation(err, "certificates_code_key"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}, ""))
	assert.False(t, IsUniqueViolation(errors.New("boom"), ""))
}

func TestDateRoundTrip(t *testing.T) {
	assert.False(t, DateArg(nil).Valid)
	assert.Nil(t, DateOf(pgtype.Date{}))

	d := civil.Date{Year: 2026, Month: time.February, Day: 28}
	arg := DateArg(&d)
	require.True(t, arg.Valid)
	assert.Equal(t, d, *DateOf(arg))
}
