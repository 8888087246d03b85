package utils

import "github.com/gofiber/fiber/v2"

// Respond writes a JSON body with the given status code. The error
// helpers below all use the same `{"error": message}` envelope so
// clients parse one shape everywhere.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success writes a 200 with the given body.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// BadRequest writes a 400 error envelope.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// Unauthorized writes a 401 error envelope.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusUnauthorized, fiber.Map{"error": message})
}

// Forbidden writes a 403 error envelope.
func Forbidden(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusForbidden, fiber.Map{"error": message})
}

// NotFound writes a 404 error envelope.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"error": message})
}

// InternalError writes a 500 error envelope.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}
