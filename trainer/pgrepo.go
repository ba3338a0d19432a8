package trainer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgTrainerRepo struct {
	pool *pgxpool.Pool
}

func NewPgTrainerRepo(pool *pgxpool.Pool) *PgTrainerRepo {
	return &PgTrainerRepo{pool: pool}
}

const trainerCols = `id, name, specialization, experience_years, available, contact, email,
	created_at, updated_at`

func scanTrainer(row pgx.Row) (Trainer, error) {
	var t Trainer
	err := row.Scan(&t.ID, &t.Name, &t.Specialization, &t.ExperienceYears, &t.Available,
		&t.Contact, &t.Email, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PgTrainerRepo) CreateTrainer(ctx context.Context, t Trainer) (Trainer, error) {
	query := `
		INSERT INTO trainers (name, specialization, experience_years, available, contact,
			email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + trainerCols
	created, err := scanTrainer(r.pool.QueryRow(ctx, query, t.Name, t.Specialization,
		t.ExperienceYears, t.Available, t.Contact, t.Email, t.CreatedAt, t.UpdatedAt))
	if err != nil {
		return Trainer{}, fmt.Errorf("failed to insert trainer: %w", err)
	}
	return created, nil
}

func (r *PgTrainerRepo) UpdateTrainer(ctx context.Context, t Trainer) error {
	query := `
		UPDATE trainers SET name = $2, specialization = $3, experience_years = $4,
			available = $5, contact = $6, email = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, t.ID, t.Name, t.Specialization, t.ExperienceYears,
		t.Available, t.Contact, t.Email, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update trainer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainerNotFound()
	}
	return nil
}

func (r *PgTrainerRepo) DeleteTrainer(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trainer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainerNotFound()
	}
	return nil
}

func (r *PgTrainerRepo) GetTrainer(ctx context.Context, id int64) (Trainer, error) {
	query := `SELECT ` + trainerCols + ` FROM trainers WHERE id = $1`
	t, err := scanTrainer(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Trainer{}, ErrTrainerNotFound()
	}
	if err != nil {
		return Trainer{}, fmt.Errorf("failed to select trainer: %w", err)
	}
	return t, nil
}

func (r *PgTrainerRepo) ListTrainers(ctx context.Context) ([]Trainer, error) {
	return r.list(ctx, `SELECT `+trainerCols+` FROM trainers ORDER BY id`)
}

func (r *PgTrainerRepo) ListAvailableTrainers(ctx context.Context) ([]Trainer, error) {
	return r.list(ctx, `SELECT `+trainerCols+` FROM trainers WHERE available ORDER BY id`)
}

func (r *PgTrainerRepo) list(ctx context.Context, query string, args ...any) ([]Trainer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainers: %w", err)
	}
	defer rows.Close()
	trainers := []Trainer{}
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trainer: %w", err)
		}
		trainers = append(trainers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trainers: %w", err)
	}
	return trainers, nil
}
