package handlers_fiber

import (
	"net/http"

	"hacker-api/internal/entities"
	"hacker-api/internal/mapper"
	"hacker-api/internal/transport/http/dto"
	"hacker-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterHacker creates a hacker record for an account.
func (h *Handler) RegisterHacker(c *fiber.Ctx) error {
	var body dto.RegisterHackerRequest
	if ok, err := h.parseAndValidate(c, &body); !ok {
		return err
	}

	hacker, err := h.uc.RegisterHacker(c.Context(), mapper.FromRegisterHackerRequest(body))
	if err != nil {
		h.log.Infow("failed to register hacker", "error", err.Error(), "account_id", body.AccountID)
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Hacker creation successful", mapper.ToDTOHacker(*hacker))
}

// Self returns the hacker record of the authenticated account.
func (h *Handler) Self(c *fiber.Ctx) error {
	hacker, err := h.uc.Hacker(c.Context(), middleware.AccountID(c))
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Successfully retrieved hacker information", mapper.ToDTOHacker(*hacker))
}

// UpdateHackerStatus sets the application status of a hacker.
func (h *Handler) UpdateHackerStatus(c *fiber.Ctx) error {
	var body dto.UpdateHackerStatusRequest
	if ok, err := h.parseAndValidate(c, &body); !ok {
		return err
	}

	hacker, err := h.uc.SetHackerStatus(c.Context(), c.Params("id"), entities.HackerStatus(body.Status))
	if err != nil {
		h.log.Infow("failed to update hacker status", "error", err.Error(), "hacker_id", c.Params("id"))
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Hacker status update successful", mapper.ToDTOHacker(*hacker))
}
