// Package domain contains application Usecases orchestrating domain logic by hacker.
package domain

import (
	"context"
	"fmt"

	"hacker-api/internal/entities"

	"github.com/google/uuid"
)

// RegisterHacker creates a hacker record for an account.
func (u *Usecase) RegisterHacker(ctx context.Context, hacker entities.Hacker) (*entities.Hacker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if hacker.AccountID == "" {
		return nil, fmt.Errorf("%w: account_id is required", entities.ErrInvalidArgument)
	}
	if hacker.ID == "" {
		hacker.ID = uuid.NewString()
	}
	if hacker.Status == "" {
		hacker.Status = entities.StatusApplied
	}

	created, err := u.repo.CreateHacker(ctx, hacker)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, created.AccountID, "Application received", "Your hacker application has been received.")
	return created, nil
}

// Hacker returns the hacker behind an account id.
func (u *Usecase) Hacker(ctx context.Context, accountID string) (*entities.Hacker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if accountID == "" {
		return nil, fmt.Errorf("%w: account_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.FindHackerByAccountID(ctx, accountID)
}

// SetHackerStatus updates a hacker's application status.
func (u *Usecase) SetHackerStatus(ctx context.Context, id string, status entities.HackerStatus) (*entities.Hacker, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: hacker id is required", entities.ErrInvalidArgument)
	}
	switch status {
	case entities.StatusApplied, entities.StatusAccepted, entities.StatusConfirmed, entities.StatusCheckedIn:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, status)
	}

	updated, err := u.repo.UpdateHackerStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(ctx, updated.AccountID, "Status updated", fmt.Sprintf("Your status is now %s.", status))
	return updated, nil
}
