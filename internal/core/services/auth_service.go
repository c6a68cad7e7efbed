package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/core/domain"
	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/dto"
	"github.com/adityapw/user_management_app/internal/utils"
)

// authService implements the session lifecycle: register, login,
// refresh-rotation, logout, and the authenticated profile update with its
// photo side effects.
type authService struct {
	userRepo         ports.UserRepository
	refreshTokenRepo ports.RefreshTokenRepository
	tokenService     ports.TokenSvcFacade
	photoStore       ports.PhotoStore
	logger           *slog.Logger
}

// NewAuthService creates a new authService.
func NewAuthService(
	userRepo ports.UserRepository,
	refreshTokenRepo ports.RefreshTokenRepository,
	tokenService ports.TokenSvcFacade,
	photoStore ports.PhotoStore,
	logger *slog.Logger,
) ports.AuthSvcFacade {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
		photoStore:       photoStore,
		logger:           logger,
	}
}

// Register creates a new USER account. The returned projection never carries
// the password hash.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	count, err := s.userRepo.CountUsersByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if count != 0 {
		return nil, apperrors.ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The email unique constraint is the real guard; the count above only
	// gives a friendlier path for the common case. A concurrent register
	// with the same email still surfaces as ErrDuplicate here.
	user, err := s.userRepo.CreateUser(ctx, domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and starts a session. Unknown email and wrong
// password both return ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Refresh rotates a presented refresh token. The stored row is the source of
// truth: an unknown token fails ErrInvalidToken, an expired row is deleted
// and fails ErrTokenExpired. Rotation deletes the old row before inserting
// the new one so two tokens are never simultaneously valid for one session;
// if the insert then fails the user is simply logged out.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResult, error) {
	row, user, err := s.refreshTokenRepo.FindRefreshTokenWithUser(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	if row.IsExpired(time.Now()) {
		if delErr := s.refreshTokenRepo.DeleteRefreshToken(ctx, row.Token); delErr != nil {
			s.logger.WarnContext(ctx, "failed to delete expired refresh token",
				slog.Int64("user_id", row.UserID), slog.String("error", delErr.Error()))
		}
		return nil, apperrors.ErrTokenExpired
	}

	if err := s.refreshTokenRepo.DeleteRefreshToken(ctx, row.Token); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.issueSession(ctx, user)
}

// Logout ends the session for the presented refresh token. No token is a
// no-op success; an unknown token fails ErrUnauthorized.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if _, err := s.refreshTokenRepo.FindRefreshToken(ctx, refreshToken); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrUnauthorized
		}
		return err
	}

	return s.refreshTokenRepo.DeleteRefreshToken(ctx, refreshToken)
}

// UpdateProfile updates the authenticated user's name, password or photo.
// A replaced or removed photo blob is deleted best-effort after the row is
// persisted; a freshly uploaded blob is deleted if persisting fails, so no
// orphaned file outlives its reference.
func (s *authService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldPhoto := user.Photo

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	var newPhotoKey string
	switch {
	case req.Photo != nil:
		newPhotoKey = photoObjectKey(req.Photo.Filename)
		if err := s.photoStore.Save(ctx, newPhotoKey, req.Photo.ContentType, req.Photo.Content, req.Photo.Size); err != nil {
			return nil, fmt.Errorf("failed to store photo: %w", err)
		}
		user.Photo = &newPhotoKey
	case req.RemovePhoto:
		user.Photo = nil
	}

	updated, err := s.userRepo.UpdateUser(ctx, *user)
	if err != nil {
		if newPhotoKey != "" {
			// Compensating action: the row write failed, so the blob we just
			// uploaded must not outlive it.
			if delErr := s.photoStore.Delete(ctx, newPhotoKey); delErr != nil {
				s.logger.WarnContext(ctx, "failed to delete orphaned photo",
					slog.String("key", newPhotoKey), slog.String("error", delErr.Error()))
			}
		}
		return nil, err
	}

	if oldPhoto != nil && (req.Photo != nil || req.RemovePhoto) {
		if delErr := s.photoStore.Delete(ctx, *oldPhoto); delErr != nil {
			s.logger.WarnContext(ctx, "failed to delete replaced photo",
				slog.String("key", *oldPhoto), slog.String("error", delErr.Error()))
		}
	}

	resp := dto.ToUserResponse(updated).WithPhotoURL(s.photoStore.URL)
	return &resp, nil
}

// issueSession mints the access+refresh pair for the user and persists the
// refresh token row with the expiry it was minted for.
func (s *authService) issueSession(ctx context.Context, user *domain.User) (*dto.AuthResult, error) {
	accessToken, _, err := s.tokenService.MintAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to mint access token: %w", err)
	}

	refreshToken, refreshExpiry, err := s.tokenService.MintRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to mint refresh token: %w", err)
	}

	err = s.refreshTokenRepo.CreateRefreshToken(ctx, domain.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: refreshExpiry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &dto.AuthResult{
		User:                  dto.ToUserResponse(user).WithPhotoURL(s.photoStore.URL),
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
	}, nil
}

func photoObjectKey(filename string) string {
	return fmt.Sprintf("photos/%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(filename))
}
