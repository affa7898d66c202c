package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/walks-service/internal/domain"
)

// UserRepository defines persistence access for API accounts.
type UserRepository interface {
	// GetByUsername matches the username case-insensitively.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	// GetRoleNames resolves the user's role names through the
	// users_roles join, in role-name order.
	GetRoleNames(ctx context.Context, userID string) ([]string, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const query = `
        SELECT id, username, password_hash, first_name, last_name, email_address
        FROM users WHERE LOWER(username) = LOWER($1)`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.EmailAddress,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetRoleNames(ctx context.Context, userID string) ([]string, error) {
	const query = `
        SELECT r.name
        FROM users_roles ur
        JOIN roles r ON r.id = ur.role_id
        WHERE ur.user_id = $1
        ORDER BY r.name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
