// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"hacker-api/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler serves the API routes using the usecase layer.
type Handler struct {
	log           *zap.SugaredLogger
	uc            usecase.InterfaceUsecase
	validate      *validator.Validate
	jwtSecret     string
	tokenTTL      time.Duration
	adminAccounts []string
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, jwtSecret string, tokenTTL time.Duration, adminAccounts []string) *Handler {
	return &Handler{
		log:           log,
		uc:            uc,
		validate:      validator.New(),
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		adminAccounts: adminAccounts,
	}
}

func (h *Handler) isAdmin(accountID string) bool {
	for _, acc := range h.adminAccounts {
		if acc == accountID {
			return true
		}
	}
	return false
}
