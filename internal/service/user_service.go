package service

import (
	"context"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/dto"
	"ai-health-be/internal/repository/specification"
	"ai-health-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserService interface {
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	return &dto.UserResponse{
		Id:                user.Id,
		Email:             user.Email,
		FullName:          user.FullName,
		PreferredLanguage: user.PreferredLanguage,
		CreatedAt:         user.CreatedAt,
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if constant.IsSupportedLanguage(req.Language) {
		user.PreferredLanguage = req.Language
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		Id:                user.Id,
		Email:             user.Email,
		FullName:          user.FullName,
		PreferredLanguage: user.PreferredLanguage,
		CreatedAt:         user.CreatedAt,
	}, nil
}
