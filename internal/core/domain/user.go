package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Role classifies an account's privilege level.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

var ErrUsernameTaken = errors.New("username already exists")
var ErrEmailTaken = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials covers both unknown username and wrong password.
// A single message keeps login failures from enumerating accounts.
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrNotProfileOwner = errors.New("you can only update your own profile")
var ErrAdminOnly = errors.New("only admins can delete accounts")
var ErrSelfDelete = errors.New("admin cannot delete their own account")

// User is the persisted account record. PasswordHash never leaves the
// service boundary; responses go through Public().
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	PhoneNumber  string    `json:"phoneNumber,omitempty"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicUser is the caller-facing view of an account. It has no field that
// could carry the password hash, so a projection can never leak it.
type PublicUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Public projects the account to its caller-facing view. Every path that
// returns account data outside the service goes through here.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		PhoneNumber: u.PhoneNumber,
		DateOfBirth: u.DateOfBirth,
		CreatedAt:   u.CreatedAt,
	}
}

// CanUpdate reports whether caller may update the account identified by
// targetID: admins may update anyone, everyone else only themselves.
func CanUpdate(caller *User, targetID uuid.UUID) error {
	if caller.Role == RoleAdmin || caller.ID == targetID {
		return nil
	}
	return ErrNotProfileOwner
}

// CanDelete reports whether caller may delete the account identified by
// targetID. Deletion is stricter than update: only admins may delete, and
// never their own account.
func CanDelete(caller *User, targetID uuid.UUID) error {
	if caller.Role != RoleAdmin {
		return ErrAdminOnly
	}
	if caller.ID == targetID {
		return ErrSelfDelete
	}
	return nil
}
