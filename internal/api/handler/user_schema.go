package handler

import (
	"github.com/google/uuid"

	"github.com/usermanagement/user-service/internal/core/domain"
)

// --- Request types ---

type signupRequest struct {
	Username    string `json:"username"    validate:"required,min=3,max=50"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6"`
	PhoneNumber string `json:"phoneNumber" validate:"max=20"`
	DateOfBirth string `json:"dateOfBirth" validate:"max=10"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is a partial patch: absent or empty fields leave the
// stored value untouched.
type updateUserRequest struct {
	Username    string `json:"username"    validate:"omitempty,min=3,max=50"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Password    string `json:"password"    validate:"omitempty,min=6"`
	PhoneNumber string `json:"phoneNumber" validate:"max=20"`
	DateOfBirth string `json:"dateOfBirth" validate:"max=10"`
}

// --- Response types ---
// Account data always crosses the boundary as domain.PublicUser; there is
// no response type with room for the password hash.

type signupResponse struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
}

type loginResponse struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	UserID   uuid.UUID   `json:"userId"`
}

type updateUserResponse struct {
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
