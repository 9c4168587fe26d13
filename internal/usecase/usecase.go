package usecase

import (
	"context"
	"time"

	"hacker-api/internal/notify"
	"hacker-api/internal/repository"
	"hacker-api/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	HackerUsecaseInterface
	TeamUsecaseInterface
	RoleUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	maxTeamSize int,
	notifier notify.Notifier,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, maxTeamSize, notifier)
}
