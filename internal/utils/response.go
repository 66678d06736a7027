package utils

import "github.com/gofiber/fiber/v2"

// Response helpers writing the API envelope: {status, message?, data?}.
// status is "success" for 2xx and "error" otherwise.

// Respond sends a JSON envelope with the specified status code.
func Respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{}
	if status >= 200 && status < 300 {
		body["status"] = "success"
	} else {
		body["status"] = "error"
	}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

// Success sends a 200 envelope with data only.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, "", data)
}

// SuccessMessage sends a 200 envelope with a message and data.
func SuccessMessage(c *fiber.Ctx, message string, data interface{}) error {
	return Respond(c, fiber.StatusOK, message, data)
}

// Created sends a 201 envelope.
func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, "", data)
}

// BadRequest sends an error envelope with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, message, nil)
}

// Unauthorized sends an error envelope with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, message, nil)
}

// NotFound sends an error envelope with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, message, nil)
}

// InternalError sends an error envelope with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, message, nil)
}
