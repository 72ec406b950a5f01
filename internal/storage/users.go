package storage

import (
	"context"
	"fmt"
	"time"

	"mindflow/internal/models"
)

func (s *PostgresStore) UpsertUser(ctx context.Context, user *models.User) error {
	op := "internal/storage/users.go UpsertUser"

	if user.ID == "" {
		return fmt.Errorf("%s: %w", op, ErrNoUser)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	sql_query := `
	INSERT INTO users (clerk_user_id, email, created_at) VALUES ($1, $2, $3)
	ON CONFLICT (clerk_user_id) DO UPDATE SET
	email = EXCLUDED.email
	`

	_, err := s.pool.Exec(ctx, sql_query,
		user.ID,
		user.Email,
		user.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: failed to save user: %w", op, err)
	}

	return nil
}
