package model

import "github.com/golang-jwt/jwt"

// UserClaims is the access-token payload. Short lived, carries enough identity
// for a single request window.
type UserClaims struct {
	UserID   string `json:"_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	jwt.StandardClaims
}

// RefreshClaims is the refresh-token payload. Long lived, carries only the
// subject id plus a unique jti; everything else is re-read from the store
// on rotation.
type RefreshClaims struct {
	UserID string `json:"_id"`
	jwt.StandardClaims
}
