package certpgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skilldev/backend/cert/certdomain"
	"github.com/skilldev/backend/cert/certerror"
	"github.com/skilldev/backend/pgdb"
)

const codeConstraint = "certificates_code_key"

type PgCertRepo struct {
	pool *pgxpool.Pool
}

func NewPgCertRepo(pool *pgxpool.Pool) *PgCertRepo {
	return &PgCertRepo{pool: pool}
}

const certCols = `id, certificate_code, trainee_id, course_id, course_name,
	issue_date, validity_months, issued_at`

func scanCert(row pgx.Row) (certdomain.Certificate, error) {
	var c certdomain.Certificate
	var issueDate time.Time
	err := row.Scan(
		&c.ID, &c.Code, &c.TraineeID, &c.CourseID, &c.CourseName,
		&issueDate, &c.ValidityMonths, &c.IssuedAt,
	)
	if err != nil {
		return certdomain.Certificate{}, err
	}
	c.IssueDate = civil.DateOf(issueDate)
	return c, nil
}

// InsertOrGet stores c unless a certificate for the same trainee and course
// already exists, in which case the stored one is returned with
// created=false. A code collision surfaces as certdomain.ErrCodeTaken.
func (r *PgCertRepo) InsertOrGet(ctx context.Context, c certdomain.Certificate) (certdomain.Certificate, bool, error) {
	query := `
		INSERT INTO certificates (
			certificate_code, trainee_id, course_id, course_name,
			issue_date, validity_months, issued_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (trainee_id, course_id) DO NOTHING
		RETURNING ` + certCols
	created, err := scanCert(r.pool.QueryRow(ctx, query,
		c.Code, c.TraineeID, c.CourseID, c.CourseName,
		pgdb.DateArg(&c.IssueDate), c.ValidityMonths, c.IssuedAt,
	))
	if err == nil {
		return created, true, nil
	}
	if pgdb.IsUniqueViolation(err, codeConstraint) {
		return certdomain.Certificate{}, false, certdomain.ErrCodeTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return certdomain.Certificate{}, false, fmt.Errorf("failed to insert certificate: %w", err)
	}

	existing, err := r.GetByTraineeAndCourse(ctx, c.TraineeID, c.CourseID)
	if err != nil {
		return certdomain.Certificate{}, false, fmt.Errorf("failed to fetch conflicting certificate: %w", err)
	}
	return existing, false, nil
}

func (r *PgCertRepo) GetByTraineeAndCourse(ctx context.Context, traineeID, courseID int64) (certdomain.Certificate, error) {
	return r.get(ctx, `SELECT `+certCols+` FROM certificates
		WHERE trainee_id = $1 AND course_id = $2`, traineeID, courseID)
}

func (r *PgCertRepo) Get(ctx context.Context, id int64) (certdomain.Certificate, error) {
	return r.get(ctx, `SELECT `+certCols+` FROM certificates WHERE id = $1`, id)
}

func (r *PgCertRepo) GetByCode(ctx context.Context, code string) (certdomain.Certificate, error) {
	return r.get(ctx, `SELECT `+certCols+` FROM certificates WHERE certificate_code = $1`, code)
}

func (r *PgCertRepo) List(ctx context.Context) ([]certdomain.Certificate, error) {
	return r.list(ctx, `SELECT `+certCols+` FROM certificates ORDER BY id`)
}

func (r *PgCertRepo) ListByTrainee(ctx context.Context, traineeID int64) ([]certdomain.Certificate, error) {
	return r.list(ctx, `SELECT `+certCols+` FROM certificates WHERE trainee_id = $1 ORDER BY id`, traineeID)
}

func (r *PgCertRepo) ListByCourse(ctx context.Context, courseID int64) ([]certdomain.Certificate, error) {
	return r.list(ctx, `SELECT `+certCols+` FROM certificates WHERE course_id = $1 ORDER BY id`, courseID)
}

func (r *PgCertRepo) get(ctx context.Context, query string, args ...any) (certdomain.Certificate, error) {
	c, err := scanCert(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return certdomain.Certificate{}, certerror.ErrCertificateNotFound()
	}
	if err != nil {
		return certdomain.Certificate{}, fmt.Errorf("failed to get certificate: %w", err)
	}
	return c, nil
}

func (r *PgCertRepo) list(ctx context.Context, query string, args ...any) ([]certdomain.Certificate, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query certificates: %w", err)
	}
	defer rows.Close()

	res := []certdomain.Certificate{}
	for rows.Next() {
		c, err := scanCert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certificates: %w", err)
	}
	return res, nil
}
