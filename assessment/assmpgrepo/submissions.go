package assmpgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	"github.com/skilldev/backend/pgdb"
)

const submissionUniqueConstraint = "trainee_submissions_assessment_trainee_key"

type PgSubmissionRepo struct {
	pool *pgxpool.Pool
}

func NewPgSubmissionRepo(pool *pgxpool.Pool) *PgSubmissionRepo {
	return &PgSubmissionRepo{pool: pool}
}

const submissionCols = `id, assessment_id, trainee_id, score, max_score, submitted_at,
	evaluated_at, evaluated_by_trainer_id, status`

func scanSubmission(row pgx.Row) (assmdomain.Submission, error) {
	var s assmdomain.Submission
	var status string
	err := row.Scan(
		&s.ID, &s.AssessmentID, &s.TraineeID, &s.Score, &s.MaxScore, &s.SubmittedAt,
		&s.EvaluatedAt, &s.EvaluatedByTrainerID, &status,
	)
	if err != nil {
		return assmdomain.Submission{}, err
	}
	s.Status = assmdomain.SubmStatus(status)
	return s, nil
}

// CreateSubmission persists a new submission. The (assessment, trainee)
// unique index turns a concurrent second submission into a duplicate error.
func (r *PgSubmissionRepo) CreateSubmission(ctx context.Context, s assmdomain.Submission) (assmdomain.Submission, error) {
	query := `
		INSERT INTO trainee_submissions (
			assessment_id, trainee_id, score, max_score, submitted_at,
			evaluated_at, evaluated_by_trainer_id, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + submissionCols
	created, err := scanSubmission(r.pool.QueryRow(ctx, query,
		s.AssessmentID, s.TraineeID, s.Score, s.MaxScore, s.SubmittedAt,
		s.EvaluatedAt, s.EvaluatedByTrainerID, string(s.Status),
	))
	if pgdb.IsUniqueViolation(err, submissionUniqueConstraint) {
		return assmdomain.Submission{}, assmerror.ErrDuplicateSubmission()
	}
	if err != nil {
		return assmdomain.Submission{}, fmt.Errorf("failed to insert submission: %w", err)
	}
	return created, nil
}

func (r *PgSubmissionRepo) UpdateSubmission(ctx context.Context, s assmdomain.Submission) error {
	query := `
		UPDATE trainee_submissions SET
			score = $2, max_score = $3, evaluated_at = $4,
			evaluated_by_trainer_id = $5, status = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		s.ID, s.Score, s.MaxScore, s.EvaluatedAt, s.EvaluatedByTrainerID, string(s.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assmerror.ErrSubmissionNotFound()
	}
	return nil
}

func (r *PgSubmissionRepo) GetSubmission(ctx context.Context, id int64) (assmdomain.Submission, error) {
	return r.get(ctx, `SELECT `+submissionCols+` FROM trainee_submissions WHERE id = $1`, id)
}

func (r *PgSubmissionRepo) GetSubmissionByTrainee(ctx context.Context, assessmentID, traineeID int64) (assmdomain.Submission, error) {
	return r.get(ctx, `SELECT `+submissionCols+` FROM trainee_submissions
		WHERE assessment_id = $1 AND trainee_id = $2`, assessmentID, traineeID)
}

func (r *PgSubmissionRepo) SubmissionExists(ctx context.Context, assessmentID, traineeID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
		SELECT 1 FROM trainee_submissions WHERE assessment_id = $1 AND trainee_id = $2
	)`, assessmentID, traineeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check submission existence: %w", err)
	}
	return exists, nil
}

func (r *PgSubmissionRepo) ListSubmissionsByAssessment(ctx context.Context, assessmentID int64) ([]assmdomain.Submission, error) {
	return r.list(ctx, `SELECT `+submissionCols+` FROM trainee_submissions
		WHERE assessment_id = $1 ORDER BY id`, assessmentID)
}

func (r *PgSubmissionRepo) ListSubmissionsByTrainee(ctx context.Context, traineeID int64) ([]assmdomain.Submission, error) {
	return r.list(ctx, `SELECT `+submissionCols+` FROM trainee_submissions
		WHERE trainee_id = $1 ORDER BY id`, traineeID)
}

func (r *PgSubmissionRepo) get(ctx context.Context, query string, args ...any) (assmdomain.Submission, error) {
	s, err := scanSubmission(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return assmdomain.Submission{}, assmerror.ErrSubmissionNotFound()
	}
	if err != nil {
		return assmdomain.Submission{}, fmt.Errorf("failed to get submission: %w", err)
	}
	return s, nil
}

func (r *PgSubmissionRepo) list(ctx context.Context, query string, args ...any) ([]assmdomain.Submission, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	res := []assmdomain.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}
	return res, nil
}
