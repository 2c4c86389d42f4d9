package ports

import (
	"context"

	"github.com/resumesync/resume-api/internal/core/domain"
)

// UserRepository defines the interface for credential persistence. The store
// must enforce email uniqueness at insert time; Create returns
// domain.ErrUserExists when the constraint is violated.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
