package service

import (
	"context"
	"os"
	"time"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/dto"
	"ai-health-be/internal/entity"
	"ai-health-be/internal/repository/specification"
	"ai-health-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 7 * 24 * time.Hour

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fiber.NewError(fiber.StatusConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	lang := req.Language
	if !constant.IsSupportedLanguage(lang) {
		lang = constant.DefaultLanguage
	}

	user := entity.User{
		Id:                uuid.New(),
		Email:             req.Email,
		PasswordHash:      &hashStr,
		FullName:          req.FullName,
		PreferredLanguage: lang,
		CreatedAt:         time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	return s.authResponse(&user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	return s.authResponse(user)
}

func (s *authService) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	})
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: signed,
		User: dto.UserResponse{
			Id:                user.Id,
			Email:             user.Email,
			FullName:          user.FullName,
			PreferredLanguage: user.PreferredLanguage,
			CreatedAt:         user.CreatedAt,
		},
	}, nil
}
