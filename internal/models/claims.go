package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload issued at signup/login. The rest of the
// system only ever consumes the verified UserID.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}
