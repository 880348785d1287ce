package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/usermanagement/user-service/internal/core/domain"
	"github.com/usermanagement/user-service/internal/core/ports"
)

// UserService implements account registration, authentication and profile CRUD.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates an account. The very first account becomes ADMIN, every
// later one USER.
//
// Caveat: the role decision is a Count followed by a Create with no
// transaction around them, as is the pair of uniqueness pre-checks.
// Concurrent first registrations can therefore race; the unique indexes
// still reject duplicates at Create time, but two racing registrations
// could both observe an empty store and both claim ADMIN.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	taken, err := s.repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	role := domain.RoleUser
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = domain.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		PhoneNumber:  in.PhoneNumber,
		DateOfBirth:  in.DateOfBirth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

// Authenticate verifies a username/password pair and returns the full
// account on success. Unknown usernames and wrong passwords fail with the
// same error so login responses cannot be used to enumerate accounts.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// ListAll returns every account in store iteration order, projected to the
// public view.
func (s *UserService) ListAll(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

// Update applies a partial patch to an existing account. Empty patch fields
// are left untouched; username and email changes are checked for collisions
// against other accounts; a new password is re-hashed. The role is not
// patchable. A single store write happens at the end.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, patch ports.UpdateInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != "" && patch.Username != user.Username {
		taken, err := s.repo.ExistsByUsername(ctx, patch.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrUsernameTaken
		}
		user.Username = patch.Username
	}

	if patch.Email != "" && patch.Email != user.Email {
		taken, err := s.repo.ExistsByEmail(ctx, patch.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailTaken
		}
		user.Email = patch.Email
	}

	if patch.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if patch.PhoneNumber != "" {
		user.PhoneNumber = patch.PhoneNumber
	}

	if patch.DateOfBirth != "" {
		user.DateOfBirth = patch.DateOfBirth
	}

	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

// Delete removes an account. The account must exist; there is no cascading
// data to clean up.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, user.ID)
}
