package dto

import "github.com/muzahidswe/fs17-Backend-project/internal/domain"

// RegisterRequest is the payload for POST /users/registration.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	// Optional; default CUSTOMER / ACTIVE.
	Role   domain.Role       `json:"role"`
	Status domain.UserStatus `json:"userStatus"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the freshly minted token pair and the account.
type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         *domain.User `json:"userData"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

type UpdateRoleRequest struct {
	Role domain.Role `json:"role" binding:"required"`
}

type ChangeStatusRequest struct {
	UserID     string            `json:"userId" binding:"required"`
	UserStatus domain.UserStatus `json:"userStatus" binding:"required"`
}
