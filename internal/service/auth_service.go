// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"os"
	"time"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func generateJWT(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *authService) login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.New("invalid email or password")
	}
	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("account is blocked")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return user, nil
}

func (s *authService) issueToken(user *entity.User) (*dto.LoginResponse, error) {
	token, err := generateJWT(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		UserId:   user.Id,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

// LoginAdmin is the admin panel entry point; a valid password with a
// non-admin role is still rejected.
func (s *authService) LoginAdmin(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.login(ctx, req)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.UserRoleAdmin {
		return nil, errors.New("admin access required")
	}
	return s.issueToken(user)
}
