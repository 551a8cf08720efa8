package dto

import (
	"pengajianku_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserFullName        string `json:"user_full_name" validate:"required,max=100"`
	UserUsername        string `json:"user_username" validate:"required,min=3,max=50"`
	UserEmail           string `json:"user_email" validate:"required,email,max=100"`
	UserPassword        string `json:"user_password" validate:"required,min=8,strong_password"`
	UserConfirmPassword string `json:"user_confirm_password" validate:"required,eqfield=UserPassword"`
}

// LoginRequest: identifier bisa username atau email.
type LoginRequest struct {
	Identifier   string `json:"identifier" validate:"required"`
	UserPassword string `json:"user_password" validate:"required"`
}

type ActivationRequest struct {
	Code string `json:"code" validate:"required"`
}

type UserResponse struct {
	UserID       string `json:"user_id"`
	UserFullName string `json:"user_full_name"`
	UserUsername string `json:"user_username"`
	UserEmail    string `json:"user_email"`
	UserRole     string `json:"user_role"`
	UserIsActive bool   `json:"user_is_active"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:       u.UserID.String(),
		UserFullName: u.UserFullName,
		UserUsername: u.UserUsername,
		UserEmail:    u.UserEmail,
		UserRole:     u.UserRole,
		UserIsActive: u.UserIsActive,
	}
}
