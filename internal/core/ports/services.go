package ports

import (
	"context"
	"io"
	"time"

	"github.com/adityapw/user_management_app/internal/core/domain"
	"github.com/adityapw/user_management_app/internal/dto"
	"github.com/adityapw/user_management_app/internal/utils"
)

// TokenSvcFacade exposes the three independent mint/verify pairs. Each pair
// uses its own secret and lifetime so compromising one token class does not
// affect the others.
type TokenSvcFacade interface {
	MintAccessToken(user *domain.User) (string, time.Time, error)
	MintRefreshToken(user *domain.User) (string, time.Time, error)
	MintResetToken(user *domain.User) (string, time.Time, error)
	VerifyAccessToken(token string) (*utils.UserClaims, error)
	VerifyResetToken(token string) (*utils.UserClaims, error)
}

// AuthSvcFacade is the session lifecycle manager.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResult, error)
	Logout(ctx context.Context, refreshToken string) error
	UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

// PasswordResetSvcFacade is the reset lifecycle manager.
type PasswordResetSvcFacade interface {
	RequestReset(ctx context.Context, req dto.ResetPasswordEmailRequest) error
	ConsumeReset(ctx context.Context, req dto.ResetPasswordRequest) error
}

// UserSvcFacade covers admin-driven user management.
type UserSvcFacade interface {
	ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error)
	GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
}

// EmailSender delivers transactional mail. The reset flow treats delivery
// failure as failure of the whole operation.
type EmailSender interface {
	SendPasswordResetEmail(ctx context.Context, recipient, token string) error
}

// PhotoStore persists profile photo blobs. Keys are opaque; URL derives the
// public address for a stored key.
type PhotoStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}
