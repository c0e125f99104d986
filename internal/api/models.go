package api

import (
	"time"

	"github.com/attire-labs/wardrobe-api/internal/domain"
)

// Request and response structures. The validate tags are the per-route
// validation schemas: required/optional fields, length bounds, enumerated
// sets, and URL well-formedness, checked before any business logic runs.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name      string `json:"name"       validate:"required,min=2,max=50"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user.
	UserID domain.ID `json:"user_id"`

	// Token is the bearer token used for API authorization.
	Token string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the token expires.
	ExpiresAt string `json:"expires_at,omitempty"`
}

// UpdateUserRequest defines the payload for updating the caller's account.
// All fields are optional; absent fields keep their current value.
type UpdateUserRequest struct {
	Name      string `json:"name"       validate:"omitempty,min=2,max=50"`
	Email     string `json:"email"      validate:"omitempty,email"`
	Password  string `json:"password"   validate:"omitempty,min=8,max=72"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID        domain.ID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse builds the public view of a user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// CreateItemRequest defines the payload for creating a clothing item.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=30"`
	Description string `json:"description" validate:"omitempty,max=200"`
	Category    string `json:"category"    validate:"required,oneof=shirt pants dress jacket shoes accessory"`
	Size        string `json:"size"        validate:"required,oneof=xs s m l xl"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}

// UpdateItemRequest defines the payload for replacing a clothing item.
// PUT semantics: the full item shape is required.
type UpdateItemRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=30"`
	Description string `json:"description" validate:"omitempty,max=200"`
	Category    string `json:"category"    validate:"required,oneof=shirt pants dress jacket shoes accessory"`
	Size        string `json:"size"        validate:"required,oneof=xs s m l xl"`
	ImageURL    string `json:"image_url"   validate:"omitempty,url"`
}
