package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSignup  = "account created successfully"
	MessageSuccessLogin   = "login successfully"
	MessageSuccessGetUser = "user retrieved successfully"

	MessageFailedSignup  = "failed to create account"
	MessageFailedLogin   = "failed to login"
	MessageFailedGetUser = "failed to retrieve user"

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUsernameAlreadyTaken   = errors.New("username already taken")
	ErrCredentialsInvalid     = errors.New("incorrect email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserInactive           = errors.New("user account is inactive")
)

type (
	SignupRequest struct {
		Name     string `json:"name" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserSummary struct {
		ID    uint   `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	AuthResponse struct {
		AccessToken string      `json:"access_token"`
		TokenType   string      `json:"token_type"`
		User        UserSummary `json:"user"`
	}

	UserResponse struct {
		ID        uint      `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		IsActive  bool      `json:"is_active"`
		CreatedAt time.Time `json:"created_at"`
	}
)
