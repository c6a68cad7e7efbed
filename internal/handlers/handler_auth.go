package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/dto"
	"github.com/adityapw/user_management_app/internal/middleware"
	"github.com/adityapw/user_management_app/internal/platform/config"
)

const maxPhotoSize = 1 << 20 // 1 MiB

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService  ports.AuthSvcFacade
	resetService ports.PasswordResetSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService ports.AuthSvcFacade, resetService ports.PasswordResetSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, resetService: resetService, cfg: cfg}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /auth/login. The refresh token travels only in an
// httpOnly cookie; the body carries the user projection and access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	respondSuccess(c, http.StatusOK, "User logged in successfully", dto.LoginResponse{
		User:  result.User,
		Token: result.AccessToken,
	})
}

// Current handles GET /auth/current. The projection was attached to the
// request context by the auth middleware; no storage access happens here.
func (h *AuthHandler) Current(c *gin.Context) {
	user, ok := middleware.GetCurrentUserFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// Refresh handles POST /auth/refresh. It rotates the refresh token from the
// cookie and sets the replacement.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, _ := c.Cookie(h.cfg.RefreshTokenCookieName)

	result, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		respondError(c, err)
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	respondSuccess(c, http.StatusOK, "Token refreshed successfully", dto.LoginResponse{
		User:  result.User,
		Token: result.AccessToken,
	})
}

// Logout handles POST /auth/logout. The cookie is cleared regardless;
// with no cookie present logout is a no-op success.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(h.cfg.RefreshTokenCookieName)

	err := h.authService.Logout(c.Request.Context(), refreshToken)
	h.clearRefreshCookie(c)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User logged out successfully", nil)
}

// UpdateProfile handles PATCH /auth/profile (multipart form).
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	current, ok := middleware.GetCurrentUserFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err == nil {
		if fileHeader.Size > maxPhotoSize {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Photo must not exceed 1MB"})
			return
		}
		contentType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			c.JSON(http.StatusBadRequest, APIResponse{Success: false, Message: "Only image files are allowed"})
			return
		}
		file, openErr := fileHeader.Open()
		if openErr != nil {
			respondError(c, openErr)
			return
		}
		defer file.Close()

		req.Photo = &dto.PhotoUpload{
			Filename:    fileHeader.Filename,
			ContentType: contentType,
			Size:        fileHeader.Size,
			Content:     file,
		}
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), current.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Profile updated successfully", user)
}

// RequestPasswordReset handles POST /auth/reset-password/request.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.ResetPasswordEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.resetService.RequestReset(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Password reset email sent", nil)
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.resetService.ConsumeReset(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Password reset successfully", nil)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		token,
		int(h.cfg.RefreshTokenLifetime.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}
