package handlers_fiber

import (
	"net/http"

	"hacker-api/internal/jwt"
	"hacker-api/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// Login issues a bearer token for a known hacker account.
func (h *Handler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if ok, err := h.parseAndValidate(c, &body); !ok {
		return err
	}

	if _, err := h.uc.Hacker(c.Context(), body.AccountID); err != nil {
		return writeError(c, err)
	}

	role := "hacker"
	if h.isAdmin(body.AccountID) {
		role = "admin"
	}

	token, err := jwt.GenerateToken(body.AccountID, role, h.jwtSecret, h.tokenTTL)
	if err != nil {
		h.log.Errorw("failed to issue token", "error", err.Error(), "account_id", body.AccountID)
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.LoginResponse{Token: token})
}
