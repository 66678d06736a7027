// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"strings"

	"quicktop/internal/services/auth"
	"quicktop/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates the Bearer token and places the verified claims
// in the request context. Downstream handlers consume only the user id.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "You are not logged in")
	}

	claims, err := utils.ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return utils.Unauthorized(c, "Invalid token")
	}

	// The token may outlive the account.
	if _, err := m.authService.GetUserByID(claims.UserID); err != nil {
		return utils.Unauthorized(c, "User no longer exists")
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}
