package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/middleware"
)

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, APIResponse{Success: true, Message: message, Data: data})
}

// respondBindingError turns gin binding failures into a 400 with per-field
// details when the underlying error is from the validator.
func respondBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make(map[string][]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details[fieldErr.Field()] = append(details[fieldErr.Field()],
				"failed on the '"+fieldErr.Tag()+"' rule")
		}
		c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Validation failed", Errors: details})
		return
	}
	c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Invalid request body"})
}

// respondError maps the service error taxonomy onto HTTP statuses. Unknown
// errors are logged and surface as a generic 500.
func respondError(c *gin.Context, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrTokenAlreadyUsed):
		status, message = http.StatusBadRequest, "This reset link has already been used"
	case errors.Is(err, apperrors.ErrDuplicate):
		status, message = http.StatusConflict, "Email already in use"
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, apperrors.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, apperrors.ErrTokenExpired):
		status, message = http.StatusUnauthorized, "Token expired"
	case errors.Is(err, apperrors.ErrForbidden):
		status, message = http.StatusForbidden, "Forbidden"
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found"
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled error",
			slog.String("error", err.Error()))
		status, message = http.StatusInternalServerError, "Internal server error"
	}

	c.JSON(status, APIResponse{Success: false, Message: message})
}
