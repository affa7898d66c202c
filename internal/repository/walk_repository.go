package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/walks-service/internal/domain"
)

// WalkRepository defines persistence access for walks.
type WalkRepository interface {
	GetAll(ctx context.Context) ([]domain.Walk, error)
	GetByID(ctx context.Context, id string) (*domain.Walk, error)
	Create(ctx context.Context, walk *domain.Walk) error
	Update(ctx context.Context, id string, walk *domain.Walk) (*domain.Walk, error)
	Delete(ctx context.Context, id string) (*domain.Walk, error)
}

type walkRepository struct {
	pool *pgxpool.Pool
}

// NewWalkRepository returns a Postgres-backed implementation.
func NewWalkRepository(pool *pgxpool.Pool) WalkRepository {
	return &walkRepository{pool: pool}
}

func (r *walkRepository) GetAll(ctx context.Context) ([]domain.Walk, error) {
	const query = `
        SELECT id, name, length, region_id, walk_difficulty_id
        FROM walks`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Walk
	for rows.Next() {
		var walk domain.Walk
		if err := rows.Scan(&walk.ID, &walk.Name, &walk.Length, &walk.RegionID, &walk.WalkDifficultyID); err != nil {
			return nil, err
		}
		result = append(result, walk)
	}
	return result, rows.Err()
}

func (r *walkRepository) GetByID(ctx context.Context, id string) (*domain.Walk, error) {
	const query = `
        SELECT id, name, length, region_id, walk_difficulty_id
        FROM walks WHERE id=$1`

	var walk domain.Walk
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&walk.ID,
		&walk.Name,
		&walk.Length,
		&walk.RegionID,
		&walk.WalkDifficultyID,
	); err != nil {
		return nil, err
	}
	return &walk, nil
}

func (r *walkRepository) Create(ctx context.Context, walk *domain.Walk) error {
	walk.ID = uuid.NewString()

	const query = `
        INSERT INTO walks (id, name, length, region_id, walk_difficulty_id)
        VALUES ($1,$2,$3,$4,$5)`

	_, err := r.pool.Exec(ctx, query,
		walk.ID,
		walk.Name,
		walk.Length,
		walk.RegionID,
		walk.WalkDifficultyID,
	)
	return err
}

func (r *walkRepository) Update(ctx context.Context, id string, walk *domain.Walk) (*domain.Walk, error) {
	const query = `
        UPDATE walks SET name=$1, length=$2, region_id=$3, walk_difficulty_id=$4
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		walk.Name,
		walk.Length,
		walk.RegionID,
		walk.WalkDifficultyID,
		id,
	)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	walk.ID = id
	return walk, nil
}

func (r *walkRepository) Delete(ctx context.Context, id string) (*domain.Walk, error) {
	const query = `
        DELETE FROM walks WHERE id=$1
        RETURNING id, name, length, region_id, walk_difficulty_id`

	var walk domain.Walk
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&walk.ID,
		&walk.Name,
		&walk.Length,
		&walk.RegionID,
		&walk.WalkDifficultyID,
	); err != nil {
		return nil, err
	}
	return &walk, nil
}
