package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/walks-service/internal/domain"
)

// RegionRepository defines persistence access for regions.
type RegionRepository interface {
	GetAll(ctx context.Context) ([]domain.Region, error)
	GetByID(ctx context.Context, id string) (*domain.Region, error)
	Create(ctx context.Context, region *domain.Region) error
	Update(ctx context.Context, id string, region *domain.Region) (*domain.Region, error)
	Delete(ctx context.Context, id string) (*domain.Region, error)
}

type regionRepository struct {
	pool *pgxpool.Pool
}

// NewRegionRepository returns a Postgres-backed implementation.
func NewRegionRepository(pool *pgxpool.Pool) RegionRepository {
	return &regionRepository{pool: pool}
}

func (r *regionRepository) GetAll(ctx context.Context) ([]domain.Region, error) {
	const query = `
        SELECT id, code, name, area, lat, long, population
        FROM regions`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Region
	for rows.Next() {
		var region domain.Region
		if err := rows.Scan(&region.ID, &region.Code, &region.Name, &region.Area, &region.Lat, &region.Long, &region.Population); err != nil {
			return nil, err
		}
		result = append(result, region)
	}
	return result, rows.Err()
}

func (r *regionRepository) GetByID(ctx context.Context, id string) (*domain.Region, error) {
	const query = `
        SELECT id, code, name, area, lat, long, population
        FROM regions WHERE id=$1`

	var region domain.Region
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&region.ID,
		&region.Code,
		&region.Name,
		&region.Area,
		&region.Lat,
		&region.Long,
		&region.Population,
	); err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *regionRepository) Create(ctx context.Context, region *domain.Region) error {
	region.ID = uuid.NewString()

	const query = `
        INSERT INTO regions (id, code, name, area, lat, long, population)
        VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := r.pool.Exec(ctx, query,
		region.ID,
		region.Code,
		region.Name,
		region.Area,
		region.Lat,
		region.Long,
		region.Population,
	)
	return err
}

func (r *regionRepository) Update(ctx context.Context, id string, region *domain.Region) (*domain.Region, error) {
	const query = `
        UPDATE regions SET code=$1, name=$2, area=$3, lat=$4, long=$5, population=$6
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		region.Code,
		region.Name,
		region.Area,
		region.Lat,
		region.Long,
		region.Population,
		id,
	)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	region.ID = id
	return region, nil
}

func (r *regionRepository) Delete(ctx context.Context, id string) (*domain.Region, error) {
	const query = `
        DELETE FROM regions WHERE id=$1
        RETURNING id, code, name, area, lat, long, population`

	var region domain.Region
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&region.ID,
		&region.Code,
		&region.Name,
		&region.Area,
		&region.Lat,
		&region.Long,
		&region.Population,
	); err != nil {
		return nil, err
	}
	return &region, nil
}
