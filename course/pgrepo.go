package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skilldev/backend/pgdb"
)

type PgCourseRepo struct {
	pool *pgxpool.Pool
}

func NewPgCourseRepo(pool *pgxpool.Pool) *PgCourseRepo {
	return &PgCourseRepo{pool: pool}
}

const courseCols = `id, title, category, duration_hours, description, start_date, end_date,
	trainer_id, active, created_at, updated_at`

func scanCourse(row pgx.Row) (Course, error) {
	var c Course
	var start, end pgtype.Date
	err := row.Scan(&c.ID, &c.Title, &c.Category, &c.DurationHours, &c.Description,
		&start, &end, &c.TrainerID, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return Course{}, err
	}
	c.StartDate = pgdb.DateOf(start)
	c.EndDate = pgdb.DateOf(end)
	return c, nil
}

func (r *PgCourseRepo) CreateCourse(ctx context.Context, c Course) (Course, error) {
	query := `
		INSERT INTO courses (title, category, duration_hours, description, start_date,
			end_date, trainer_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + courseCols
	created, err := scanCourse(r.pool.QueryRow(ctx, query, c.Title, c.Category,
		c.DurationHours, c.Description, pgdb.DateArg(c.StartDate), pgdb.DateArg(c.EndDate),
		c.TrainerID, c.Active, c.CreatedAt, c.UpdatedAt))
	if err != nil {
		return Course{}, fmt.Errorf("failed to insert course: %w", err)
	}
	return created, nil
}

func (r *PgCourseRepo) UpdateCourse(ctx context.Context, c Course) error {
	query := `
		UPDATE courses SET title = $2, category = $3, duration_hours = $4,
			description = $5, start_date = $6, end_date = $7, trainer_id = $8,
			active = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, c.ID, c.Title, c.Category, c.DurationHours,
		c.Description, pgdb.DateArg(c.StartDate), pgdb.DateArg(c.EndDate), c.TrainerID,
		c.Active, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound()
	}
	return nil
}

func (r *PgCourseRepo) DeleteCourse(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCourseNotFound()
	}
	return nil
}

func (r *PgCourseRepo) GetCourse(ctx context.Context, id int64) (Course, error) {
	query := `SELECT ` + courseCols + ` FROM courses WHERE id = $1`
	c, err := scanCourse(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Course{}, ErrCourseNotFound()
	}
	if err != nil {
		return Course{}, fmt.Errorf("failed to select course: %w", err)
	}
	return c, nil
}

func (r *PgCourseRepo) ListCourses(ctx context.Context) ([]Course, error) {
	return r.list(ctx, `SELECT `+courseCols+` FROM courses ORDER BY id`)
}

func (r *PgCourseRepo) ListActiveCourses(ctx context.Context) ([]Course, error) {
	return r.list(ctx, `SELECT `+courseCols+` FROM courses WHERE active ORDER BY id`)
}

func (r *PgCourseRepo) ListCoursesByTrainer(ctx context.Context, trainerID int64) ([]Course, error) {
	return r.list(ctx, `SELECT `+courseCols+` FROM courses WHERE trainer_id = $1 ORDER BY id`, trainerID)
}

func (r *PgCourseRepo) list(ctx context.Context, query string, args ...any) ([]Course, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()
	courses := []Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate courses: %w", err)
	}
	return courses, nil
}
