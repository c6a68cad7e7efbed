package dto

import (
	"io"
	"time"
)

// RegisterRequest is the payload for account self-registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=5"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResult is what login and refresh return: the public user projection,
// a freshly minted access token, and the refresh token that replaces any
// prior one. The refresh token travels in an httpOnly cookie, never in the
// JSON body.
type AuthResult struct {
	User                  UserResponse
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// LoginResponse is the JSON body for login/refresh responses.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// PhotoUpload carries an uploaded profile photo from the transport layer to
// the service that persists it.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UpdateProfileRequest is the payload for the authenticated profile update.
// Pointers distinguish omitted fields from zero values. RemovePhoto clears
// the stored photo without replacing it.
type UpdateProfileRequest struct {
	Name        *string `form:"name" binding:"omitempty,min=5"`
	Password    *string `form:"password" binding:"omitempty,min=6"`
	Photo       *PhotoUpload `form:"-"`
	RemovePhoto bool         `form:"removePhoto"`
}

// ResetPasswordEmailRequest asks for a reset link to be emailed.
type ResetPasswordEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest consumes a reset token and sets the new password.
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,min=6"`
}
