package feedback

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgFeedbackRepo struct {
	pool *pgxpool.Pool
}

func NewPgFeedbackRepo(pool *pgxpool.Pool) *PgFeedbackRepo {
	return &PgFeedbackRepo{pool: pool}
}

const feedbackCols = `id, trainee_id, trainer_id, course_id, rating, comment, created_at`

func scanFeedback(row pgx.Row) (Feedback, error) {
	var f Feedback
	err := row.Scan(&f.ID, &f.TraineeID, &f.TrainerID, &f.CourseID, &f.Rating, &f.Comment, &f.CreatedAt)
	return f, err
}

func (r *PgFeedbackRepo) CreateFeedback(ctx context.Context, f Feedback) (Feedback, error) {
	query := `
		INSERT INTO feedback (trainee_id, trainer_id, course_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + feedbackCols
	created, err := scanFeedback(r.pool.QueryRow(ctx, query,
		f.TraineeID, f.TrainerID, f.CourseID, f.Rating, f.Comment, f.CreatedAt))
	if err != nil {
		return Feedback{}, fmt.Errorf("failed to insert feedback: %w", err)
	}
	return created, nil
}

func (r *PgFeedbackRepo) ListFeedbackByTrainee(ctx context.Context, traineeID int64) ([]Feedback, error) {
	return r.list(ctx, `SELECT `+feedbackCols+` FROM feedback
		WHERE trainee_id = $1 ORDER BY created_at DESC, id DESC`, traineeID)
}

func (r *PgFeedbackRepo) ListFeedbackByTrainer(ctx context.Context, trainerID int64) ([]Feedback, error) {
	return r.list(ctx, `SELECT `+feedbackCols+` FROM feedback
		WHERE trainer_id = $1 ORDER BY created_at DESC, id DESC`, trainerID)
}

func (r *PgFeedbackRepo) list(ctx context.Context, query string, id int64) ([]Feedback, error) {
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()
	res := []Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		res = append(res, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback: %w", err)
	}
	return res, nil
}
