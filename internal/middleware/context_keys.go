package middleware

import (
	"context"

	"github.com/adityapw/user_management_app/internal/dto"
)

// contextKey is a private type for request-context keys. Using a custom type
// prevents collisions.
type contextKey string

const (
	loggerCtxKey   = contextKey("logger")
	currentUserKey = contextKey("currentUser")
)

// GetCurrentUserFromCtx retrieves the authenticated user projection placed
// in the request context by AuthMiddleware.
func GetCurrentUserFromCtx(ctx context.Context) (*dto.UserResponse, bool) {
	user, ok := ctx.Value(currentUserKey).(*dto.UserResponse)
	return user, ok
}
