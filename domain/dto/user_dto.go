package dto

import "vidtube/domain/model"

// RegisterRequest carries the multipart form fields for account creation.
// Avatar and cover image arrive as uploaded files and are handled separately.
type RegisterRequest struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	FullName string `form:"fullName"`
	Password string `form:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type UpdateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// TokenPair is an access/refresh token set issued together. Issuing a pair
// invalidates any previously stored refresh token for the user.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is the login response body: the safe user plus both tokens for
// clients that do not use cookies.
type LoginResult struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}
