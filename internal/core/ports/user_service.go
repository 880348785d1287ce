package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/usermanagement/user-service/internal/core/domain"
)

// RegisterInput carries the caller-supplied fields for a new account.
// Role is deliberately absent: it is assigned by the service.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	DateOfBirth string
}

// UpdateInput is a partial patch. Empty fields are left untouched.
type UpdateInput struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	DateOfBirth string
}

type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.PublicUser, error)
	Update(ctx context.Context, id uuid.UUID, patch UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
