package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Error writes the uniform JSON error envelope. Every failing API request,
// whatever the cause, answers with the same shape.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// ParseID reads the :id route parameter as an unsigned integer.
func ParseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
