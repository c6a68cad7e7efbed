package services

import (
	"time"

	"github.com/adityapw/user_management_app/internal/core/domain"
	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/platform/config"
	"github.com/adityapw/user_management_app/internal/utils"
)

// tokenService implements ports.TokenSvcFacade. Each token class mints and
// verifies with its own secret and lifetime from configuration.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new tokenService.
func NewTokenService(cfg *config.Config) ports.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) MintAccessToken(user *domain.User) (string, time.Time, error) {
	token, err := utils.GenerateToken(user, s.cfg.AccessTokenSecret, s.cfg.AccessTokenLifetime)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, utils.CalculateExpiry(s.cfg.AccessTokenLifetime), nil
}

func (s *tokenService) MintRefreshToken(user *domain.User) (string, time.Time, error) {
	token, err := utils.GenerateToken(user, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenLifetime)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, utils.CalculateExpiry(s.cfg.RefreshTokenLifetime), nil
}

func (s *tokenService) MintResetToken(user *domain.User) (string, time.Time, error) {
	token, err := utils.GenerateToken(user, s.cfg.ResetTokenSecret, s.cfg.ResetTokenLifetime)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, utils.CalculateExpiry(s.cfg.ResetTokenLifetime), nil
}

func (s *tokenService) VerifyAccessToken(token string) (*utils.UserClaims, error) {
	return utils.ParseToken(token, s.cfg.AccessTokenSecret)
}

func (s *tokenService) VerifyResetToken(token string) (*utils.UserClaims, error) {
	return utils.ParseToken(token, s.cfg.ResetTokenSecret)
}
