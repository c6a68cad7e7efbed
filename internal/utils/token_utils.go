package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/core/domain"
)

// UserClaims is the signed payload embedded in every token the service
// mints: the user's public identity plus the registered expiry claim.
type UserClaims struct {
	UserID int64       `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token for the user, valid for the given
// lifetime. Access, refresh and reset tokens all use this with their own
// secret so compromising one class does not affect the others.
func GenerateToken(user *domain.User, secret string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and standard claims of a token string.
// It returns apperrors.ErrTokenExpired for a well-formed token whose expiry
// claim is in the past and apperrors.ErrInvalidToken for everything else
// (bad signature, malformed payload, wrong algorithm), so callers are forced
// to handle the two cases separately.
func ParseToken(tokenString string, secret string) (*UserClaims, error) {
	claims := &UserClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		// jwt/v5 joins validation errors; a bad signature must win over an
		// expired claim so forged tokens are never reported as merely expired.
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, apperrors.ErrInvalidToken
		}
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
