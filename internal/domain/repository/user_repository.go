package repository

import (
	"context"

	"github.com/logitrack-io/logitrack/internal/domain/entity"
)

// UserRepository defines persistence operations for user accounts.
// Emails are stored normalized to lower case by the application layer.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
