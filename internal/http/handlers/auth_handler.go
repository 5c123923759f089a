package handlers

import (
	"errors"

	"trendyshop/internal/log"
	"trendyshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	tok, err := h.Auth.Signup(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			log.Security(c, "auth.signup.duplicate", map[string]any{"email": req.Email})
		}
		return fail(c, err)
	}
	log.Audit(c, "auth.signup.success", map[string]any{"email": req.Email})
	return c.JSON(fiber.Map{"success": true, "token": tok})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	tok, err := h.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrWrongEmail) || errors.Is(err, services.ErrWrongPassword) {
			log.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": err.Error()})
		}
		return fail(c, err)
	}
	log.Audit(c, "auth.login.success", map[string]any{"email": req.Email})
	return c.JSON(fiber.Map{"success": true, "token": tok})
}
