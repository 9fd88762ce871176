package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-directory/internal/logger"
	"github.com/sbilibin2017/gw-user-directory/internal/models"
)

// UserRepository forwards user operations to the users table.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// List returns all users in insertion order, or only the user with the given id when id is not nil.
func (r *UserRepository) List(ctx context.Context, id *uuid.UUID) ([]models.User, error) {
	const query = `
		SELECT id, name, email, created_at
		FROM users
		WHERE ($1::UUID IS NULL OR id = $1)
		ORDER BY created_at, id
	`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// Create inserts a user and returns the inserted rows with the store-assigned id and created_at.
func (r *UserRepository) Create(ctx context.Context, name, email string) ([]models.User, error) {
	const query = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, created_at
	`
	args := []any{name, email}

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", users,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// Update overwrites name and email of the user with the given id.
// An unknown id yields an empty slice and no error.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, name, email string) ([]models.User, error) {
	const query = `
		UPDATE users
		SET name = $2, email = $3
		WHERE id = $1
		RETURNING id, name, email, created_at
	`
	args := []any{id, name, email}

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", users,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// Delete removes the user with the given id. Deleting an unknown id is not an error.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
