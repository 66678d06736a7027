package handlers

import (
	"errors"
	"log"

	"quicktop/internal/models"
	"quicktop/internal/repositories"
	"quicktop/internal/services/auth"
	"quicktop/internal/utils"
	"quicktop/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// extractUserClaims is a helper shared by the protected handlers.
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"passwordConfirm"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Please provide email and password")
	}
	if input.Password != input.PasswordConfirm {
		return utils.BadRequest(c, "Passwords do not match")
	}

	v := validation.New()
	v.Required("name", input.Name)
	v.Email("email", input.Email)
	v.Phone("phone", input.Phone)
	v.MinLength("password", input.Password, 6)
	if !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	user, token, err := h.authService.Signup(auth.SignupInput{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return utils.BadRequest(c, "Email already registered")
		}
		if errors.Is(err, repositories.ErrPhoneTaken) {
			return utils.BadRequest(c, "Phone number already registered")
		}
		log.Printf("signup failed: %v", err)
		return utils.InternalError(c, "Registration failed")
	}

	return utils.Created(c, fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Please provide email and password")
	}

	user, token, err := h.authService.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid email or password")
		}
		log.Printf("login failed: %v", err)
		return utils.InternalError(c, "Authentication failed")
	}

	return utils.Success(c, fiber.Map{
		"token": token,
		"user":  user,
	})
}
