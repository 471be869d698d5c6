package postgres

import (
	"context"

	"jobready-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, COALESCE(email, ''), COALESCE(first_name, ''), COALESCE(last_name, ''), profile_image_url, created_at, updated_at
              FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.ProfileImageURL, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("get user", err)
	}
	return &user, nil
}

func (r *userRepo) Upsert(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, email, first_name, last_name, profile_image_url, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
              ON CONFLICT (id) DO UPDATE SET
                  email = EXCLUDED.email,
                  first_name = EXCLUDED.first_name,
                  last_name = EXCLUDED.last_name,
                  profile_image_url = EXCLUDED.profile_image_url,
                  updated_at = NOW()
              RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName, user.ProfileImageURL,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	return wrapErr("upsert user", err)
}
