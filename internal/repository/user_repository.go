package repository

import (
	"context"
	"time"

	"staffing/internal/database"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u User) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`,
		u.ID, u.Email, u.PasswordHash,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.get(ctx, `SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`, email)
}

func (r *PostgresUserRepository) get(ctx context.Context, query string, arg any) (User, error) {
	var u User
	err := r.db.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
