package models

import (
	"github.com/golang-jwt/jwt"
)

// Claims is the bearer token payload the external identity provider issues.
// The core only verifies the signature and reads the user id.
type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}
