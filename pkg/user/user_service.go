package user

import (
	"canteen-queue-optimizer/domain"
	"canteen-queue-optimizer/entities"
	"canteen-queue-optimizer/internal/utils/mailing"
	"canteen-queue-optimizer/pkg/jwt"
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error)
		Me(ctx context.Context, userID uint) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Signup(ctx context.Context, req domain.SignupRequest) (domain.AuthResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Name); err == nil {
		return domain.AuthResponse{}, domain.ErrUsernameAlreadyTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthResponse{}, err
	}

	user := &entities.User{
		Username:     req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.AuthResponse{}, err
	}

	// best effort, an unreachable SMTP server must not fail signup
	go func(email, name string) {
		if err := mailing.SendWelcomeMail(email, name); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", email, err)
		}
	}(user.Email, user.Username)

	return s.buildAuthResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AuthResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.AuthResponse{}, err
	}

	if !user.IsActive {
		return domain.AuthResponse{}, domain.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.AuthResponse{}, domain.ErrCredentialsInvalid
	}

	return s.buildAuthResponse(user), nil
}

func (s *userService) Me(ctx context.Context, userID uint) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:        user.ID,
		Name:      user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) buildAuthResponse(user *entities.User) domain.AuthResponse {
	token := s.jwtService.GenerateTokenUser(user.ID, user.Email)
	return domain.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: domain.UserSummary{
			ID:    user.ID,
			Name:  user.Username,
			Email: user.Email,
		},
	}
}
