package trainee

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skilldev/backend/pgdb"
)

type PgTraineeRepo struct {
	pool *pgxpool.Pool
}

func NewPgTraineeRepo(pool *pgxpool.Pool) *PgTraineeRepo {
	return &PgTraineeRepo{pool: pool}
}

const traineeCols = `id, name, email, contact, qualification, skill_preferences, active,
	created_at, updated_at`

const traineesEmailKey = "trainees_email_key"

func scanTrainee(row pgx.Row) (Trainee, error) {
	var t Trainee
	err := row.Scan(&t.ID, &t.Name, &t.Email, &t.Contact, &t.Qualification,
		&t.SkillPreferences, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PgTraineeRepo) CreateTrainee(ctx context.Context, t Trainee) (Trainee, error) {
	query := `
		INSERT INTO trainees (name, email, contact, qualification, skill_preferences,
			active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + traineeCols
	created, err := scanTrainee(r.pool.QueryRow(ctx, query, t.Name, t.Email, t.Contact,
		t.Qualification, t.SkillPreferences, t.Active, t.CreatedAt, t.UpdatedAt))
	if pgdb.IsUniqueViolation(err, traineesEmailKey) {
		return Trainee{}, ErrEmailExists()
	}
	if err != nil {
		return Trainee{}, fmt.Errorf("failed to insert trainee: %w", err)
	}
	return created, nil
}

func (r *PgTraineeRepo) UpdateTrainee(ctx context.Context, t Trainee) error {
	query := `
		UPDATE trainees SET name = $2, email = $3, contact = $4, qualification = $5,
			skill_preferences = $6, active = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, t.ID, t.Name, t.Email, t.Contact, t.Qualification,
		t.SkillPreferences, t.Active, t.UpdatedAt)
	if pgdb.IsUniqueViolation(err, traineesEmailKey) {
		return ErrEmailExists()
	}
	if err != nil {
		return fmt.Errorf("failed to update trainee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTraineeNotFound()
	}
	return nil
}

func (r *PgTraineeRepo) DeleteTrainee(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trainees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trainee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTraineeNotFound()
	}
	return nil
}

func (r *PgTraineeRepo) GetTrainee(ctx context.Context, id int64) (Trainee, error) {
	return r.getOne(ctx, `SELECT `+traineeCols+` FROM trainees WHERE id = $1`, id)
}

func (r *PgTraineeRepo) GetTraineeByEmail(ctx context.Context, email string) (Trainee, error) {
	return r.getOne(ctx, `SELECT `+traineeCols+` FROM trainees WHERE email = $1`, email)
}

func (r *PgTraineeRepo) getOne(ctx context.Context, query string, arg any) (Trainee, error) {
	t, err := scanTrainee(r.pool.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return Trainee{}, ErrTraineeNotFound()
	}
	if err != nil {
		return Trainee{}, fmt.Errorf("failed to select trainee: %w", err)
	}
	return t, nil
}

func (r *PgTraineeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM trainees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check trainee email: %w", err)
	}
	return exists, nil
}

func (r *PgTraineeRepo) ListTrainees(ctx context.Context) ([]Trainee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+traineeCols+` FROM trainees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainees: %w", err)
	}
	defer rows.Close()
	trainees := []Trainee{}
	for rows.Next() {
		t, err := scanTrainee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trainee: %w", err)
		}
		trainees = append(trainees, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trainees: %w", err)
	}
	return trainees, nil
}

type PgEnrollmentRepo struct {
	pool *pgxpool.Pool
}

func NewPgEnrollmentRepo(pool *pgxpool.Pool) *PgEnrollmentRepo {
	return &PgEnrollmentRepo{pool: pool}
}

const enrollmentCols = `id, trainee_id, course_id, status, enrolled_at`

func scanEnrollment(row pgx.Row) (Enrollment, error) {
	var e Enrollment
	var status string
	if err := row.Scan(&e.ID, &e.TraineeID, &e.CourseID, &status, &e.EnrolledAt); err != nil {
		return Enrollment{}, err
	}
	e.Status = EnrollmentStatus(status)
	return e, nil
}

func (r *PgEnrollmentRepo) CreateEnrollment(ctx context.Context, e Enrollment) (Enrollment, error) {
	query := `
		INSERT INTO enrollments (trainee_id, course_id, status, enrolled_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + enrollmentCols
	created, err := scanEnrollment(r.pool.QueryRow(ctx, query,
		e.TraineeID, e.CourseID, string(e.Status), e.EnrolledAt))
	if pgdb.IsUniqueViolation(err, "enrollments_trainee_course_key") {
		return Enrollment{}, ErrAlreadyEnrolled()
	}
	if err != nil {
		return Enrollment{}, fmt.Errorf("failed to insert enrollment: %w", err)
	}
	return created, nil
}

func (r *PgEnrollmentRepo) GetEnrollment(ctx context.Context, id int64) (Enrollment, error) {
	query := `SELECT ` + enrollmentCols + ` FROM enrollments WHERE id = $1`
	e, err := scanEnrollment(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Enrollment{}, ErrEnrollmentNotFound()
	}
	if err != nil {
		return Enrollment{}, fmt.Errorf("failed to select enrollment: %w", err)
	}
	return e, nil
}

func (r *PgEnrollmentRepo) UpdateEnrollmentStatus(ctx context.Context, id int64, status EnrollmentStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE enrollments SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("failed to update enrollment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEnrollmentNotFound()
	}
	return nil
}

func (r *PgEnrollmentRepo) ListEnrollmentsByTrainee(ctx context.Context, traineeID int64) ([]Enrollment, error) {
	query := `SELECT ` + enrollmentCols + ` FROM enrollments WHERE trainee_id = $1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, traineeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	defer rows.Close()
	enrollments := []Enrollment{}
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enrollments: %w", err)
	}
	return enrollments, nil
}
