package handlers_fiber

import (
	"hacker-api/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts all API routes on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	authenticated := middleware.EnsureAuthenticated(h.jwtSecret)
	authorized := middleware.EnsureAuthorized(h.uc, h.adminAccounts)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", h.Login)

	hacker := api.Group("/hacker")
	hacker.Post("/", h.RegisterHacker)
	hacker.Get("/self", authenticated, h.Self)
	hacker.Patch("/status/:id", authenticated, authorized, h.UpdateHackerStatus)

	team := api.Group("/team")
	team.Post("/", authenticated, h.CreateTeam)
	team.Patch("/join", authenticated, h.JoinTeam)
	team.Get("/:id", h.TeamByID)

	role := api.Group("/role")
	role.Post("/", authenticated, authorized, h.CreateRole)
	role.Patch("/", authenticated, authorized, h.UpdateRole)
	role.Get("/", h.Roles)
}
