package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityapw/user_management_app/internal/core/ports"
)

// RepositoryProvider bundles all repositories built on one pgx pool.
type RepositoryProvider struct {
	UserRepo         ports.UserRepository
	RefreshTokenRepo ports.RefreshTokenRepository
	ResetTokenRepo   ports.ResetTokenRepository
}

func NewRepositoryProvider(dbPool *pgxpool.Pool) RepositoryProvider {
	return RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		RefreshTokenRepo: newPgxRefreshTokenRepository(dbPool),
		ResetTokenRepo:   newPgxResetTokenRepository(dbPool),
	}
}
