package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/walks-service/internal/domain"
)

// WalkDifficultyRepository defines persistence access for walk difficulties.
type WalkDifficultyRepository interface {
	GetAll(ctx context.Context) ([]domain.WalkDifficulty, error)
	GetByID(ctx context.Context, id string) (*domain.WalkDifficulty, error)
	Create(ctx context.Context, difficulty *domain.WalkDifficulty) error
	Update(ctx context.Context, id string, difficulty *domain.WalkDifficulty) (*domain.WalkDifficulty, error)
	Delete(ctx context.Context, id string) (*domain.WalkDifficulty, error)
}

type walkDifficultyRepository struct {
	pool *pgxpool.Pool
}

// NewWalkDifficultyRepository returns a Postgres-backed implementation.
func NewWalkDifficultyRepository(pool *pgxpool.Pool) WalkDifficultyRepository {
	return &walkDifficultyRepository{pool: pool}
}

func (r *walkDifficultyRepository) GetAll(ctx context.Context) ([]domain.WalkDifficulty, error) {
	const query = `SELECT id, code FROM walk_difficulties`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.WalkDifficulty
	for rows.Next() {
		var difficulty domain.WalkDifficulty
		if err := rows.Scan(&difficulty.ID, &difficulty.Code); err != nil {
			return nil, err
		}
		result = append(result, difficulty)
	}
	return result, rows.Err()
}

func (r *walkDifficultyRepository) GetByID(ctx context.Context, id string) (*domain.WalkDifficulty, error) {
	const query = `SELECT id, code FROM walk_difficulties WHERE id=$1`

	var difficulty domain.WalkDifficulty
	if err := r.pool.QueryRow(ctx, query, id).Scan(&difficulty.ID, &difficulty.Code); err != nil {
		return nil, err
	}
	return &difficulty, nil
}

func (r *walkDifficultyRepository) Create(ctx context.Context, difficulty *domain.WalkDifficulty) error {
	difficulty.ID = uuid.NewString()

	const query = `INSERT INTO walk_difficulties (id, code) VALUES ($1,$2)`

	_, err := r.pool.Exec(ctx, query, difficulty.ID, difficulty.Code)
	return err
}

func (r *walkDifficultyRepository) Update(ctx context.Context, id string, difficulty *domain.WalkDifficulty) (*domain.WalkDifficulty, error) {
	const query = `UPDATE walk_difficulties SET code=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, difficulty.Code, id)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	difficulty.ID = id
	return difficulty, nil
}

func (r *walkDifficultyRepository) Delete(ctx context.Context, id string) (*domain.WalkDifficulty, error) {
	const query = `DELETE FROM walk_difficulties WHERE id=$1 RETURNING id, code`

	var difficulty domain.WalkDifficulty
	if err := r.pool.QueryRow(ctx, query, id).Scan(&difficulty.ID, &difficulty.Code); err != nil {
		return nil, err
	}
	return &difficulty, nil
}
