package handlers_fiber

import (
	"errors"
	"net/http"

	"hacker-api/internal/entities"
	"hacker-api/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

type successResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(successResponse{Message: message, Data: data})
}

// writeError maps domain errors to HTTP status classes. Conflict and
// validation errors carry the offending payload; internal errors stay generic.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "internal error"
	var data interface{} = struct{}{}

	var memberErr *entities.MemberConflictError
	var fullErr *entities.TeamFullError

	switch {
	case errors.As(err, &memberErr):
		data = memberErr.HackerID
		if errors.Is(err, entities.ErrDuplicateMember) {
			status = http.StatusUnprocessableEntity
			msg = "duplicate member id in request"
		} else {
			status = http.StatusConflict
			msg = "member is already on a team"
		}
	case errors.As(err, &fullErr):
		status = http.StatusUnprocessableEntity
		msg = "team is full"
		data = fullErr.Size
	case errors.Is(err, entities.ErrHackerNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrRoleNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, entities.ErrTeamExists),
		errors.Is(err, entities.ErrHackerExists),
		errors.Is(err, entities.ErrRoleExists):
		status = http.StatusConflict
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusUnprocessableEntity
		msg = err.Error()
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		msg = "unauthorized"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		msg = "forbidden"
	case errors.Is(err, entities.ErrMembershipUpdate):
		status = http.StatusInternalServerError
		msg = "error while updating team membership"
	}

	return c.Status(status).JSON(dto.ErrorResponse{Message: msg, Data: data})
}

// parseAndValidate decodes and validates the request body. When it returns
// false the response has already been written.
func (h *Handler) parseAndValidate(c *fiber.Ctx, body interface{}) (bool, error) {
	if err := c.BodyParser(body); err != nil {
		return false, c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body", Data: struct{}{}})
	}
	if err := h.validate.Struct(body); err != nil {
		return false, c.Status(http.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Message: err.Error(), Data: struct{}{}})
	}
	return true, nil
}
