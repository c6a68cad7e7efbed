package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adityapw/user_management_app/internal/apperrors"
	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/dto"
)

// UserHandler handles admin-driven user management requests.
type UserHandler struct {
	userService ports.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService ports.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Users retrieved successfully", result)
}

// GetUser handles GET /users/:userID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User retrieved successfully", user)
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "User created successfully", user)
}

// UpdateUser handles PUT /users/:userID.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User updated successfully", user)
}

// DeleteUser handles DELETE /users/:userID.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "User deleted successfully", nil)
}

func parseUserID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidation)
	}
	return id, nil
}
