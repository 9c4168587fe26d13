package handlers_fiber

import (
	"net/http"

	"hacker-api/internal/mapper"
	"hacker-api/internal/transport/http/dto"
	"hacker-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateTeam creates a team from the request body. The member list is checked
// for duplicates and cross-team conflicts before anything is written.
func (h *Handler) CreateTeam(c *fiber.Ctx) error {
	var body dto.CreateTeamRequest
	if ok, err := h.parseAndValidate(c, &body); !ok {
		return err
	}

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromCreateTeamRequest(body))
	if err != nil {
		h.log.Infow("failed to create team", "error", err.Error(), "team", body.Name)
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Team creation successful", mapper.ToDTOTeam(*team))
}

// JoinTeam moves the authenticated hacker onto the named team.
func (h *Handler) JoinTeam(c *fiber.Ctx) error {
	var body dto.JoinTeamRequest
	if ok, err := h.parseAndValidate(c, &body); !ok {
		return err
	}

	accountID := middleware.AccountID(c)

	if err := h.uc.EnsureSpace(c.Context(), body.TeamName); err != nil {
		return writeError(c, err)
	}

	team, err := h.uc.JoinTeam(c.Context(), accountID, body.TeamName)
	if err != nil {
		h.log.Errorw("failed to join team", "error", err.Error(), "account_id", accountID, "team", body.TeamName)
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Team join successful", mapper.ToDTOTeam(*team))
}

// TeamByID returns a team's information.
func (h *Handler) TeamByID(c *fiber.Ctx) error {
	team, err := h.uc.TeamByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Successfully retrieved team information", mapper.ToDTOTeam(*team))
}
