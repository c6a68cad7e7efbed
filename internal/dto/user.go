package dto

import (
	"time"

	"github.com/adityapw/user_management_app/internal/core/domain"
)

// UserResponse is the public projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Photo     *string     `json:"photo,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Photo:     user.Photo,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// WithPhotoURL returns a copy of the projection with the stored photo key
// resolved to its public URL.
func (r UserResponse) WithPhotoURL(resolve func(string) string) UserResponse {
	if r.Photo != nil {
		url := resolve(*r.Photo)
		r.Photo = &url
	}
	return r
}

// CreateUserRequest is the admin payload for creating a user directly.
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required,min=5"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=USER ADMIN"`
}

// UpdateUserRequest is the admin payload for updating a user. Pointers
// distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=5"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// Paging describes the page window of a list response.
type Paging struct {
	Size        int   `json:"size"`
	TotalPage   int64 `json:"total_page"`
	CurrentPage int   `json:"current_page"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Page int `form:"page,default=1" binding:"omitempty,min=1"`
	Size int `form:"size,default=10" binding:"omitempty,min=1,max=100"`
}

// ListUsersResponse wraps a page of users with its paging metadata.
type ListUsersResponse struct {
	Data   []UserResponse `json:"data"`
	Paging Paging         `json:"paging"`
}
