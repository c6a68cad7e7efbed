package services

import (
	"log/slog"

	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/platform/config"
	"github.com/adityapw/user_management_app/internal/repositories/database/pgsql"
)

// ServicesContainer bundles the service facades the handlers consume.
type ServicesContainer struct {
	Token         ports.TokenSvcFacade
	Auth          ports.AuthSvcFacade
	PasswordReset ports.PasswordResetSvcFacade
	User          ports.UserSvcFacade
}

// NewServicesContainer wires the services onto the repository provider and
// the external collaborators.
func NewServicesContainer(
	cfg *config.Config,
	repos pgsql.RepositoryProvider,
	emailSender ports.EmailSender,
	photoStore ports.PhotoStore,
	logger *slog.Logger,
) *ServicesContainer {
	tokenService := NewTokenService(cfg)
	return &ServicesContainer{
		Token: tokenService,
		Auth:  NewAuthService(repos.UserRepo, repos.RefreshTokenRepo, tokenService, photoStore, logger),
		PasswordReset: NewPasswordResetService(
			repos.UserRepo, repos.ResetTokenRepo, repos.RefreshTokenRepo, tokenService, emailSender, logger),
		User: NewUserService(repos.UserRepo, photoStore, logger),
	}
}
