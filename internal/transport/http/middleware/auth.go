package middleware

import (
	"net/http"
	"strings"

	"hacker-api/internal/jwt"
	"hacker-api/internal/transport/http/dto"
	"hacker-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// AccountIDKey is the Locals key under which the authenticated account id is stored.
const AccountIDKey = "account_id"

// RoleKey is the Locals key under which the token's role name is stored.
const RoleKey = "role"

// EnsureAuthenticated verifies the bearer token and stores the account id in
// request locals.
func EnsureAuthenticated(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return unauthorized(c, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return unauthorized(c, "invalid authorization header format")
		}

		claims, err := jwt.ParseToken(parts[1], secret)
		if err != nil {
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals(AccountIDKey, claims.AccountID)
		c.Locals(RoleKey, claims.Role)
		return c.Next()
	}
}

// EnsureAuthorized gates a route on the caller's role. Accounts listed in the
// admin set pass unconditionally; everyone else needs a stored role whose
// route list permits the request's method and path pattern.
func EnsureAuthorized(roles usecase.RoleUsecaseInterface, adminAccounts []string) fiber.Handler {
	admins := make(map[string]struct{}, len(adminAccounts))
	for _, acc := range adminAccounts {
		admins[acc] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if _, ok := admins[AccountID(c)]; ok {
			return c.Next()
		}

		roleName, _ := c.Locals(RoleKey).(string)
		if roleName == "" {
			return forbidden(c)
		}

		role, err := roles.Role(c.Context(), roleName)
		if err != nil {
			return forbidden(c)
		}

		// Group-mounted routes register with a trailing slash.
		path := c.Route().Path
		if len(path) > 1 {
			path = strings.TrimSuffix(path, "/")
		}
		if !role.Allows(c.Method(), path) {
			return forbidden(c)
		}
		return c.Next()
	}
}

// AccountID returns the authenticated account id from request locals.
func AccountID(c *fiber.Ctx) string {
	id, _ := c.Locals(AccountIDKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(dto.ErrorResponse{
		Message: msg,
		Data:    struct{}{},
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(http.StatusForbidden).JSON(dto.ErrorResponse{
		Message: "forbidden",
		Data:    struct{}{},
	})
}
