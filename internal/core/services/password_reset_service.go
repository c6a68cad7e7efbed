package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/core/domain"
	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/dto"
	"github.com/adityapw/user_management_app/internal/utils"
)

// passwordResetService implements the single-use reset-token lifecycle.
type passwordResetService struct {
	userRepo         ports.UserRepository
	resetTokenRepo   ports.ResetTokenRepository
	refreshTokenRepo ports.RefreshTokenRepository
	tokenService     ports.TokenSvcFacade
	emailSender      ports.EmailSender
	logger           *slog.Logger
}

// NewPasswordResetService creates a new passwordResetService.
func NewPasswordResetService(
	userRepo ports.UserRepository,
	resetTokenRepo ports.ResetTokenRepository,
	refreshTokenRepo ports.RefreshTokenRepository,
	tokenService ports.TokenSvcFacade,
	emailSender ports.EmailSender,
	logger *slog.Logger,
) ports.PasswordResetSvcFacade {
	return &passwordResetService{
		userRepo:         userRepo,
		resetTokenRepo:   resetTokenRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
		emailSender:      emailSender,
		logger:           logger,
	}
}

// RequestReset mints a reset token for the account, persists it unused, and
// emails the reset link. A failed delivery fails the whole operation: a
// reset request whose email never arrives is useless to the caller.
func (s *passwordResetService) RequestReset(ctx context.Context, req dto.ResetPasswordEmailRequest) error {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	token, expiresAt, err := s.tokenService.MintResetToken(user)
	if err != nil {
		return fmt.Errorf("failed to mint reset token: %w", err)
	}

	err = s.resetTokenRepo.CreateResetToken(ctx, domain.ResetPasswordToken{
		Token:     token,
		UserID:    user.ID,
		Used:      false,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return fmt.Errorf("failed to persist reset token: %w", err)
	}

	if err := s.emailSender.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset email sent", slog.Int64("user_id", user.ID))
	return nil
}

// ConsumeReset validates and consumes a reset token exactly once. The stored
// row is checked independently of the signed claim: the row's own expiry and
// used flag let the server invalidate a token even while its signature-level
// window is still open. On success every refresh token the user owns is
// deleted; a password reset always terminates existing sessions.
func (s *passwordResetService) ConsumeReset(ctx context.Context, req dto.ResetPasswordRequest) error {
	if req.Password != req.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", apperrors.ErrValidation)
	}

	claims, err := s.tokenService.VerifyResetToken(req.Token)
	if err != nil {
		return err
	}

	row, err := s.resetTokenRepo.FindResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrInvalidToken
		}
		return err
	}
	if row.Used {
		return apperrors.ErrTokenAlreadyUsed
	}
	if row.IsExpired(time.Now()) {
		return apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if _, err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.resetTokenRepo.MarkResetTokenUsed(ctx, row.ID); err != nil {
		return fmt.Errorf("failed to mark reset token used: %w", err)
	}

	if err := s.refreshTokenRepo.DeleteRefreshTokensForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to terminate sessions: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset completed", slog.Int64("user_id", user.ID))
	return nil
}
