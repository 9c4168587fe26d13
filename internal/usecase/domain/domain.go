package domain

import (
	"context"
	"time"

	"hacker-api/internal/notify"
	"hacker-api/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx         context.Context
	log         *zap.SugaredLogger
	repo        repository.Repository
	timeout     time.Duration
	maxTeamSize int
	notifier    notify.Notifier
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	maxTeamSize int,
	notifier notify.Notifier,
) *Usecase {
	return &Usecase{
		ctx:         ctx,
		log:         log,
		repo:        repo,
		timeout:     timeout,
		maxTeamSize: maxTeamSize,
		notifier:    notifier,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
