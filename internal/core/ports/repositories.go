package ports

import (
	"context"

	"github.com/adityapw/user_management_app/internal/core/domain"
)

// UserRepository is the persistence contract for user records. Email
// uniqueness is enforced by the store's unique constraint, not by
// check-then-insert in the services.
type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CountUsersByEmail(ctx context.Context, email string) (int64, error)
	FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// RefreshTokenRepository is the persistence contract for session rows.
// There is no update operation: rotation is always delete then create.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token domain.RefreshToken) error
	FindRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	FindRefreshTokenWithUser(ctx context.Context, token string) (*domain.RefreshToken, *domain.User, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteRefreshTokensForUser(ctx context.Context, userID int64) error
}

// ResetTokenRepository is the persistence contract for single-use reset
// rows. Rows are marked used, never deleted, so replays stay distinguishable
// from unknown tokens.
type ResetTokenRepository interface {
	CreateResetToken(ctx context.Context, token domain.ResetPasswordToken) error
	FindResetToken(ctx context.Context, token string) (*domain.ResetPasswordToken, error)
	MarkResetTokenUsed(ctx context.Context, id int64) error
}
