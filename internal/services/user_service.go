package services

import (
	"context"

	"devstudio_backend/internal/auth"
	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

type UserService interface {
	GetByID(ctx context.Context, userID string) (*dto.UserDTO, error)
	List(ctx context.Context, filter *dto.UserListFilter) (*dto.PagedResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	UpdateRole(ctx context.Context, userID string, req *dto.UpdateRoleRequest) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetByID(ctx context.Context, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	result := dto.NewUserDTO(user)
	return &result, nil
}

func (s *UserServiceImpl) List(ctx context.Context, filter *dto.UserListFilter) (*dto.PagedResponse, error) {
	filter.Normalize()

	users, err := s.userRepo.FindAll(filter.Limit(), filter.Offset())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserDTO(&users[i]))
	}

	return &dto.PagedResponse{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	if err := s.userRepo.UpdateProfile(userID, req.Name, req.Photo); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrUserNotFound
		case apperrors.Is(err, repositories.ErrNameTaken):
			return nil, apperrors.ErrNameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", userID)
	return s.GetByID(ctx, userID)
}

// UpdateRole - смена роли (только админ). Валидность роли проверяется
// еще раз на случай вызова мимо HTTP-слоя.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, userID string, req *dto.UpdateRoleRequest) (*dto.UserDTO, error) {
	if err := auth.ValidateRole(req.Role); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"role": "Must be a valid user role"})
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetRole(user.ID, req.Role); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "role updated", "user_id", userID, "role", req.Role)
	return s.GetByID(ctx, userID)
}
