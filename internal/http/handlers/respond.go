package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "trendyshop/internal/log"
	"trendyshop/internal/services"
)

// fail turns an error into the JSON error shape. Client mistakes get 400
// with "errors"; anything unexpected gets 500 with the message as-is.
func fail(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		applog.Security(c, "validation.fail", map[string]any{"field": verr.Field})
		return reject(c, fiber.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrWrongEmail),
		errors.Is(err, services.ErrWrongPassword):
		return reject(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidToken):
		return reject(c, fiber.StatusUnauthorized, msgInvalidToken)
	}
	applog.Error(c, "request.fail", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func reject(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "errors": msg})
}

func badBody(c *fiber.Ctx) error {
	applog.Security(c, "validation.fail", map[string]any{"field": "body"})
	return reject(c, fiber.StatusBadRequest, "request body must be JSON")
}

// ErrorHandler catches whatever handlers and middleware let escape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	return c.Status(code).JSON(fiber.Map{"success": false, "error": err.Error()})
}
