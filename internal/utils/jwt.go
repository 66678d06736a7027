package utils

import (
	"errors"
	"strconv"
	"time"

	"quicktop/internal/config"
	"quicktop/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs an HS256 session token for the given user. The secret
// comes from JWT_SECRET; the expiry from JWT_EXPIRES_IN (default 90 days).
func GenerateToken(userID uint, email string) (string, error) {
	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return "", errors.New("JWT_SECRET not configured")
	}

	now := time.Now()
	expiry := config.GetDurationEnv("JWT_EXPIRES_IN", 90*24*time.Hour)

	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "quicktop-api",
			Subject:   strconv.FormatUint(uint64(userID), 10),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken parses and validates a JWT token string, returning its claims.
func ParseToken(tokenStr string) (*models.UserClaims, error) {
	secret := config.GetEnv("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
