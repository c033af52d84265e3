package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/domain"
)

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Dept     string `json:"dept" binding:"max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries the issued session token
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	UserID    uuid.UUID   `json:"userId"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Dept      string      `json:"dept"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewUserResponse converts a domain User to its response form
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Dept:      u.Dept,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
