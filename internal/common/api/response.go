package api

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the same envelope:
// {success, data?, error?, details?, count?}.

func Success(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func SuccessList(c *fiber.Ctx, data any, count int) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "count": count})
}

func Created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// ErrorDetails echoes the underlying error message; callers gate it on the
// environment so production responses stay message-only.
func ErrorDetails(c *fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"details": details,
	})
}

// StorageError renders a 500 for an unexpected storage failure. The raw
// error only leaks to the client in development.
func StorageError(c *fiber.Ctx, development bool, message string, err error) error {
	if development {
		return ErrorDetails(c, fiber.StatusInternalServerError, message, err.Error())
	}
	return Error(c, fiber.StatusInternalServerError, message)
}
