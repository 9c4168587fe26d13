package handlers_fiber

import (
	"net/http"

	"hacker-api/internal/entities"
	"hacker-api/internal/mapper"
	"hacker-api/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// CreateRole creates a role with its permitted routes.
func (h *Handler) CreateRole(c *fiber.Ctx) error {
	var body dto.CreateRoleRequest
	if ok, err := h.parseAndValidate(c, &body); !ok {
		return err
	}

	role, err := h.uc.CreateRole(c.Context(), entities.Role{
		Name:   body.Name,
		Routes: mapper.FromDTORoutes(body.Routes),
	})
	if err != nil {
		h.log.Infow("failed to create role", "error", err.Error(), "role", body.Name)
		return writeError(c, err)
	}

	return respond(c, http.StatusCreated, "Role creation successful", mapper.ToDTORole(*role))
}

// UpdateRole adds and removes routes on a role.
func (h *Handler) UpdateRole(c *fiber.Ctx) error {
	var body dto.UpdateRoleRequest
	if ok, err := h.parseAndValidate(c, &body); !ok {
		return err
	}

	role, err := h.uc.UpdateRoleRoutes(c.Context(), body.Name,
		mapper.FromDTORoutes(body.AddRoutes),
		mapper.FromDTORoutes(body.RemoveRoutes),
	)
	if err != nil {
		h.log.Infow("failed to update role", "error", err.Error(), "role", body.Name)
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Role update successful", mapper.ToDTORole(*role))
}

// Roles lists all roles.
func (h *Handler) Roles(c *fiber.Ctx) error {
	roles, err := h.uc.Roles(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return respond(c, http.StatusOK, "Successfully retrieved roles", mapper.ToDTORoles(roles))
}
