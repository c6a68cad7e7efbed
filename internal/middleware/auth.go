package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/dto"
)

// AuthMiddleware validates the Bearer access token, confirms the account
// still exists, and attaches the user's public projection to the request
// context. Expired and invalid tokens get distinct messages so clients know
// whether a refresh can help.
func AuthMiddleware(tokenService ports.TokenSvcFacade, userRepo ports.UserRepository, photoStore ports.PhotoStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := tokenService.VerifyAccessToken(parts[1])
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				msg = "Token has expired"
			}
			logger.Warn("Access token rejected", slog.String("reason", msg))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		// The token may outlive the account; confirm the user still exists.
		user, err := userRepo.FindUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			logger.Error("Failed to load user for access token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		projection := dto.ToUserResponse(user).WithPhotoURL(photoStore.URL)
		ctx := context.WithValue(c.Request.Context(), currentUserKey, &projection)
		ctx = context.WithValue(ctx, loggerCtxKey, logger.With(slog.Int64("user_id", user.ID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
