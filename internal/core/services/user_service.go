package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adityapw/user_management_app/internal/core/domain"
	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/dto"
	"github.com/adityapw/user_management_app/internal/utils"
)

// userService covers admin-driven user management.
type userService struct {
	userRepo   ports.UserRepository
	photoStore ports.PhotoStore
	logger     *slog.Logger
}

// NewUserService creates a new userService.
func NewUserService(userRepo ports.UserRepository, photoStore ports.PhotoStore, logger *slog.Logger) ports.UserSvcFacade {
	return &userService{userRepo: userRepo, photoStore: photoStore, logger: logger}
}

func (s *userService) ListUsers(ctx context.Context, params dto.ListUsersParams) (*dto.ListUsersResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	size := params.Size
	if size < 1 {
		size = 10
	}

	total, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindUsers(ctx, size, (page-1)*size)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = dto.ToUserResponse(&users[i]).WithPhotoURL(s.photoStore.URL)
	}

	totalPage := total / int64(size)
	if total%int64(size) != 0 {
		totalPage++
	}

	return &dto.ListUsersResponse{
		Data: responses,
		Paging: dto.Paging{
			Size:        size,
			TotalPage:   totalPage,
			CurrentPage: page,
		},
	}, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user).WithPhotoURL(s.photoStore.URL)
	return &resp, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(ctx, domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	updated, err := s.userRepo.UpdateUser(ctx, *user)
	if err != nil {
		return nil, err
	}

	resp := dto.ToUserResponse(updated).WithPhotoURL(s.photoStore.URL)
	return &resp, nil
}

// DeleteUser removes the user row; refresh and reset tokens cascade in the
// store. A stored photo blob is removed best-effort afterwards.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return err
	}

	if user.Photo != nil {
		if delErr := s.photoStore.Delete(ctx, *user.Photo); delErr != nil {
			s.logger.WarnContext(ctx, "failed to delete photo of removed user",
				slog.String("key", *user.Photo), slog.String("error", delErr.Error()))
		}
	}

	return nil
}
