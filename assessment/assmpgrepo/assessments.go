package assmpgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skilldev/backend/assessment/assmdomain"
	"github.com/skilldev/backend/assessment/assmerror"
	"github.com/skilldev/backend/pgdb"
)

type PgAssessmentRepo struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepo(pool *pgxpool.Pool) *PgAssessmentRepo {
	return &PgAssessmentRepo{pool: pool}
}

const assessmentCols = `id, title, course_id, passing_score, max_score, due_date,
	created_by_trainer_id, status, created_at, updated_at`

func scanAssessment(row pgx.Row) (assmdomain.Assessment, error) {
	var a assmdomain.Assessment
	var dueDate pgtype.Date
	var status string
	err := row.Scan(
		&a.ID, &a.Title, &a.CourseID, &a.PassingScore, &a.MaxScore, &dueDate,
		&a.CreatedByTrainerID, &status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return assmdomain.Assessment{}, err
	}
	a.DueDate = pgdb.DateOf(dueDate)
	a.Status = assmdomain.Status(status)
	return a, nil
}

func (r *PgAssessmentRepo) CreateAssessment(ctx context.Context, a assmdomain.Assessment) (assmdomain.Assessment, error) {
	query := `
		INSERT INTO assessments (
			title, course_id, passing_score, max_score, due_date,
			created_by_trainer_id, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + assessmentCols
	created, err := scanAssessment(r.pool.QueryRow(ctx, query,
		a.Title, a.CourseID, a.PassingScore, a.MaxScore, pgdb.DateArg(a.DueDate),
		a.CreatedByTrainerID, string(a.Status), a.CreatedAt, a.UpdatedAt,
	))
	if err != nil {
		return assmdomain.Assessment{}, fmt.Errorf("failed to insert assessment: %w", err)
	}
	return created, nil
}

func (r *PgAssessmentRepo) UpdateAssessment(ctx context.Context, a assmdomain.Assessment) error {
	query := `
		UPDATE assessments SET
			title = $2, course_id = $3, passing_score = $4, max_score = $5,
			due_date = $6, status = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.Title, a.CourseID, a.PassingScore, a.MaxScore,
		pgdb.DateArg(a.DueDate), string(a.Status), a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return assmerror.ErrAssessmentNotFound()
	}
	return nil
}

func (r *PgAssessmentRepo) GetAssessment(ctx context.Context, id int64) (assmdomain.Assessment, error) {
	query := `SELECT ` + assessmentCols + ` FROM assessments WHERE id = $1`
	a, err := scanAssessment(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return assmdomain.Assessment{}, assmerror.ErrAssessmentNotFound()
	}
	if err != nil {
		return assmdomain.Assessment{}, fmt.Errorf("failed to get assessment: %w", err)
	}
	return a, nil
}

func (r *PgAssessmentRepo) ListAssessments(ctx context.Context) ([]assmdomain.Assessment, error) {
	return r.list(ctx, `SELECT `+assessmentCols+` FROM assessments ORDER BY id`)
}

func (r *PgAssessmentRepo) ListAssessmentsByCourse(ctx context.Context, courseID int64) ([]assmdomain.Assessment, error) {
	return r.list(ctx, `SELECT `+assessmentCols+` FROM assessments WHERE course_id = $1 ORDER BY id`, courseID)
}

func (r *PgAssessmentRepo) list(ctx context.Context, query string, args ...any) ([]assmdomain.Assessment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	res := []assmdomain.Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessments: %w", err)
	}
	return res, nil
}

func (r *PgAssessmentRepo) CreateQuestion(ctx context.Context, q assmdomain.Question) (assmdomain.Question, error) {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	query := `
		INSERT INTO questions (assessment_id, prompt, options, correct_option, marks_per_question)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		q.AssessmentID, q.Prompt, options, q.CorrectOption, q.MarksPerQuestion,
	).Scan(&q.ID)
	if err != nil {
		return assmdomain.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}
	q.Options = options
	return q, nil
}

func (r *PgAssessmentRepo) ListQuestions(ctx context.Context, assessmentID int64) ([]assmdomain.Question, error) {
	query := `
		SELECT id, assessment_id, prompt, options, correct_option, marks_per_question
		FROM questions WHERE assessment_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	res := []assmdomain.Question{}
	for rows.Next() {
		var q assmdomain.Question
		err := rows.Scan(&q.ID, &q.AssessmentID, &q.Prompt, &q.Options, &q.CorrectOption, &q.MarksPerQuestion)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		res = append(res, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	return res, nil
}
