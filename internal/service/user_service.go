package service

import (
	"context"
	"time"

	"pawrescue-be/internal/dto"
	"pawrescue-be/internal/entity"
	"pawrescue-be/internal/pkg/apperror"
	"pawrescue-be/internal/repository/scope"
	"pawrescue-be/internal/repository/specification"
	"pawrescue-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserProfileResponse, error)
	UpdateRole(ctx context.Context, req *dto.UpdateUserRoleRequest) (*dto.UpdateUserRoleResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func toProfileResponse(user *entity.User) *dto.UserProfileResponse {
	return &dto.UserProfileResponse{
		Id:        user.Id,
		Name:      user.Name,
		Email:     user.Email,
		Username:  user.Username,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	return toProfileResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.Scoped{Scope: scope.OrderByCreatedAsc})
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	res := make([]*dto.UserProfileResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toProfileResponse(user))
	}
	return res, nil
}

func (s *userService) UpdateRole(ctx context.Context, req *dto.UpdateUserRoleRequest) (*dto.UpdateUserRoleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	user.Role = entity.UserRole(req.Role)
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, apperror.Persistence(err)
	}

	return &dto.UpdateUserRoleResponse{Id: user.Id, Role: string(user.Role)}, nil
}
