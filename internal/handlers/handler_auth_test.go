package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/core/domain"
	"github.com/adityapw/user_management_app/internal/dto"
	"github.com/adityapw/user_management_app/internal/handlers"
	"github.com/adityapw/user_management_app/internal/platform/config"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResult), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResult, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResult), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

type MockPasswordResetService struct {
	mock.Mock
}

func (m *MockPasswordResetService) RequestReset(ctx context.Context, req dto.ResetPasswordEmailRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPasswordResetService) ConsumeReset(ctx context.Context, req dto.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	authService  *MockAuthService
	resetService *MockPasswordResetService
	router       *gin.Engine
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.authService = new(MockAuthService)
	s.resetService = new(MockPasswordResetService)

	cfg := &config.Config{
		RefreshTokenCookieName: "refreshToken",
		RefreshTokenCookiePath: "/api/v1/auth",
		RefreshTokenLifetime:   7 * 24 * time.Hour,
	}
	handler := handlers.NewAuthHandler(s.authService, s.resetService, cfg)

	s.router = gin.New()
	auth := s.router.Group("/api/v1/auth")
	auth.POST("/register", handler.Register)
	auth.POST("/login", handler.Login)
	auth.POST("/refresh", handler.Refresh)
	auth.POST("/logout", handler.Logout)
	auth.POST("/reset-password/request", handler.RequestPasswordReset)
	auth.POST("/reset-password", handler.ResetPassword)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerTestSuite) decode(w *httptest.ResponseRecorder) handlers.APIResponse {
	var resp handlers.APIResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// --- Register ---

func (s *AuthHandlerTestSuite) TestRegister_Created() {
	s.authService.On("Register", mock.Anything, dto.RegisterRequest{
		Name: "Jane Doe", Email: "jane@example.com", Password: "secret1",
	}).Return(&dto.UserResponse{ID: 1, Name: "Jane Doe", Email: "jane@example.com", Role: domain.RoleUser}, nil)

	w := s.postJSON("/api/v1/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"secret1"}`)

	assert.Equal(s.T(), http.StatusCreated, w.Code)
	resp := s.decode(w)
	assert.True(s.T(), resp.Success)
}

func (s *AuthHandlerTestSuite) TestRegister_ValidationFailure() {
	// Name too short, password too short.
	w := s.postJSON("/api/v1/auth/register",
		`{"name":"Jo","email":"jane@example.com","password":"abc"}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	resp := s.decode(w)
	assert.False(s.T(), resp.Success)
	assert.NotNil(s.T(), resp.Errors)
	s.authService.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	s.authService.On("Register", mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicate)

	w := s.postJSON("/api/v1/auth/register",
		`{"name":"Jane Doe","email":"jane@example.com","password":"secret1"}`)

	assert.Equal(s.T(), http.StatusConflict, w.Code)
}

// --- Login ---

func (s *AuthHandlerTestSuite) TestLogin_SetsRefreshCookie() {
	s.authService.On("Login", mock.Anything, dto.LoginRequest{
		Email: "jane@example.com", Password: "secret1",
	}).Return(&dto.AuthResult{
		User:         dto.UserResponse{ID: 1, Email: "jane@example.com", Role: domain.RoleUser},
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-jwt",
	}, nil)

	w := s.postJSON("/api/v1/auth/login", `{"email":"jane@example.com","password":"secret1"}`)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "refreshToken" {
			cookie = c
		}
	}
	require.NotNil(s.T(), cookie)
	assert.Equal(s.T(), "refresh-jwt", cookie.Value)
	assert.True(s.T(), cookie.HttpOnly)
	assert.Equal(s.T(), "/api/v1/auth", cookie.Path)

	// The refresh token must never appear in the body.
	assert.NotContains(s.T(), w.Body.String(), "refresh-jwt")
	assert.Contains(s.T(), w.Body.String(), "access-jwt")
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	s.authService.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidCredentials)

	w := s.postJSON("/api/v1/auth/login", `{"email":"jane@example.com","password":"wrong00"}`)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	assert.Empty(s.T(), w.Result().Cookies())
}

// --- Refresh ---

func (s *AuthHandlerTestSuite) TestRefresh_RotatesCookie() {
	s.authService.On("Refresh", mock.Anything, "old-refresh").Return(&dto.AuthResult{
		User:         dto.UserResponse{ID: 1, Email: "jane@example.com", Role: domain.RoleUser},
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-refresh"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "refreshToken" {
			cookie = c
		}
	}
	require.NotNil(s.T(), cookie)
	assert.Equal(s.T(), "new-refresh", cookie.Value)
}

func (s *AuthHandlerTestSuite) TestRefresh_InvalidTokenClearsCookie() {
	s.authService.On("Refresh", mock.Anything, "rotated-away").Return(nil, apperrors.ErrInvalidToken)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "rotated-away"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "refreshToken" {
			cookie = c
		}
	}
	require.NotNil(s.T(), cookie)
	assert.Empty(s.T(), cookie.Value)
	assert.Negative(s.T(), cookie.MaxAge)
}

// --- Logout ---

func (s *AuthHandlerTestSuite) TestLogout_NoCookieIsSuccess() {
	s.authService.On("Logout", mock.Anything, "").Return(nil)

	w := s.postJSON("/api/v1/auth/logout", "")

	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogout_UnknownToken() {
	s.authService.On("Logout", mock.Anything, "ghost").Return(apperrors.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "ghost"})
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	// The cookie is cleared even when the store no longer knows the token.
	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "refreshToken" {
			cookie = c
		}
	}
	require.NotNil(s.T(), cookie)
	assert.Empty(s.T(), cookie.Value)
}

// --- Password reset ---

func (s *AuthHandlerTestSuite) TestRequestPasswordReset_Success() {
	s.resetService.On("RequestReset", mock.Anything, dto.ResetPasswordEmailRequest{
		Email: "jane@example.com",
	}).Return(nil)

	w := s.postJSON("/api/v1/auth/reset-password/request", `{"email":"jane@example.com"}`)

	assert.Equal(s.T(), http.StatusOK, w.Code)
}

func (s *AuthHandlerTestSuite) TestRequestPasswordReset_UnknownEmail() {
	s.resetService.On("RequestReset", mock.Anything, mock.Anything).Return(apperrors.ErrNotFound)

	w := s.postJSON("/api/v1/auth/reset-password/request", `{"email":"nobody@example.com"}`)

	assert.Equal(s.T(), http.StatusNotFound, w.Code)
}

func (s *AuthHandlerTestSuite) TestResetPassword_UsedToken() {
	s.resetService.On("ConsumeReset", mock.Anything, mock.Anything).Return(apperrors.ErrTokenAlreadyUsed)

	w := s.postJSON("/api/v1/auth/reset-password",
		`{"token":"t","password":"new-password","confirmPassword":"new-password"}`)

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	resp := s.decode(w)
	assert.False(s.T(), resp.Success)
	assert.True(s.T(), strings.Contains(resp.Message, "already been used"))
}

func (s *AuthHandlerTestSuite) TestResetPassword_Success() {
	s.resetService.On("ConsumeReset", mock.Anything, dto.ResetPasswordRequest{
		Token: "t", Password: "new-password", ConfirmPassword: "new-password",
	}).Return(nil)

	w := s.postJSON("/api/v1/auth/reset-password",
		`{"token":"t","password":"new-password","confirmPassword":"new-password"}`)

	assert.Equal(s.T(), http.StatusOK, w.Code)
}
