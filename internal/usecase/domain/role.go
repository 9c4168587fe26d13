// Package domain contains application Usecases orchestrating domain logic by role.
package domain

import (
	"context"
	"fmt"

	"hacker-api/internal/entities"

	"github.com/google/uuid"
)

// CreateRole persists a new role.
func (u *Usecase) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if role.Name == "" {
		return nil, fmt.Errorf("%w: role name is required", entities.ErrInvalidArgument)
	}
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	return u.repo.CreateRole(ctx, role)
}

// Role returns role by name.
func (u *Usecase) Role(ctx context.Context, name string) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: role name is required", entities.ErrInvalidArgument)
	}
	return u.repo.RoleByName(ctx, name)
}

// Roles returns all roles.
func (u *Usecase) Roles(ctx context.Context) ([]entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Roles(ctx)
}

// UpdateRoleRoutes adds and removes routes on an existing role and returns the
// resulting role.
func (u *Usecase) UpdateRoleRoutes(ctx context.Context, name string, add, remove []entities.Route) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: role name is required", entities.ErrInvalidArgument)
	}
	if len(add) == 0 && len(remove) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", entities.ErrInvalidArgument)
	}

	role, err := u.repo.RoleByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(add) > 0 {
		if role, err = u.repo.AddRoutes(ctx, name, add); err != nil {
			return nil, err
		}
	}
	if len(remove) > 0 {
		if role, err = u.repo.RemoveRoutes(ctx, name, remove); err != nil {
			return nil, err
		}
	}

	u.log.Infow("role routes updated", "role", name, "added", len(add), "removed", len(remove))
	return role, nil
}
