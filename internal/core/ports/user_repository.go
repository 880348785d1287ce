package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/usermanagement/user-service/internal/core/domain"
)

// UserRepository is the persistence contract for accounts. Each call is
// atomic on its own; sequences of calls (exists-check then Create) are not.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]domain.User, error)
}
