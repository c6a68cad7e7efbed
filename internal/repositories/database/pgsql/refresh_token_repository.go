package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/core/domain"
	"github.com/adityapw/user_management_app/internal/core/ports"
)

type PgxRefreshTokenRepository struct {
	BaseRepository
}

func newPgxRefreshTokenRepository(db *pgxpool.Pool) ports.RefreshTokenRepository {
	return &PgxRefreshTokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ ports.RefreshTokenRepository = (*PgxRefreshTokenRepository)(nil)

func (r *PgxRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at)
		VALUES ($1, $2, $3)`
	_, err := r.Pool.Exec(ctx, query, token.Token, token.UserID, token.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) FindRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, token, user_id, expires_at, created_at
		FROM refresh_tokens
		WHERE token = $1`
	var rt domain.RefreshToken
	err := r.Pool.QueryRow(ctx, query, token).Scan(&rt.ID, &rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return &rt, nil
}

func (r *PgxRefreshTokenRepository) FindRefreshTokenWithUser(ctx context.Context, token string) (*domain.RefreshToken, *domain.User, error) {
	query := `
		SELECT rt.id, rt.token, rt.user_id, rt.expires_at, rt.created_at,
		       u.id, u.name, u.email, u.password_hash, u.role, u.photo, u.created_at, u.updated_at
		FROM refresh_tokens rt
		JOIN users u ON u.id = rt.user_id
		WHERE rt.token = $1`
	var rt domain.RefreshToken
	var user domain.User
	err := r.Pool.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.Token, &rt.UserID, &rt.ExpiresAt, &rt.CreatedAt,
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.Photo, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to find refresh token with user: %w", err)
	}
	return &rt, &user, nil
}

func (r *PgxRefreshTokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRefreshTokenRepository) DeleteRefreshTokensForUser(ctx context.Context, userID int64) error {
	// Zero rows deleted is fine here: the user may simply have no sessions.
	_, err := r.Pool.Exec(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete refresh tokens for user %d: %w", userID, err)
	}
	return nil
}
