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

type PgxResetTokenRepository struct {
	BaseRepository
}

func newPgxResetTokenRepository(db *pgxpool.Pool) ports.ResetTokenRepository {
	return &PgxResetTokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ ports.ResetTokenRepository = (*PgxResetTokenRepository)(nil)

func (r *PgxResetTokenRepository) CreateResetToken(ctx context.Context, token domain.ResetPasswordToken) error {
	query := `
		INSERT INTO reset_password_tokens (token, user_id, used, expires_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.Pool.Exec(ctx, query, token.Token, token.UserID, token.Used, token.ExpiresAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to create reset token: %w", err)
	}
	return nil
}

func (r *PgxResetTokenRepository) FindResetToken(ctx context.Context, token string) (*domain.ResetPasswordToken, error) {
	query := `
		SELECT id, token, user_id, used, expires_at, created_at
		FROM reset_password_tokens
		WHERE token = $1`
	var rt domain.ResetPasswordToken
	err := r.Pool.QueryRow(ctx, query, token).Scan(&rt.ID, &rt.Token, &rt.UserID, &rt.Used, &rt.ExpiresAt, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reset token: %w", err)
	}
	return &rt, nil
}

// MarkResetTokenUsed flips used to true. The row stays in place afterwards;
// used never transitions back to false.
func (r *PgxResetTokenRepository) MarkResetTokenUsed(ctx context.Context, id int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE reset_password_tokens SET used = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark reset token used: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
