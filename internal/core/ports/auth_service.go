package ports

import (
	"context"

	"github.com/resumesync/resume-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
