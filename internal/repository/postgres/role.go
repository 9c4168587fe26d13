package postgres

import (
	"context"
	"errors"
	"fmt"

	"hacker-api/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertRoleQuery       = `INSERT INTO roles(id, name) VALUES($1, $2)`
	insertRouteQuery      = `INSERT INTO role_routes(role_id, uri, request_type) VALUES($1, $2, $3) ON CONFLICT DO NOTHING`
	deleteRouteQuery      = `DELETE FROM role_routes WHERE role_id=$1 AND uri=$2 AND request_type=$3`
	selectRoleByNameQuery = `SELECT id, name FROM roles WHERE name=$1`
	selectAllRolesQuery   = `SELECT id, name FROM roles ORDER BY name`
	selectRoleRoutesQuery = `SELECT uri, request_type FROM role_routes WHERE role_id=$1 ORDER BY uri, request_type`
)

// CreateRole inserts a role with its routes.
func (p *Postgres) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertRoleQuery, role.ID, role.Name); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	for _, rt := range role.Routes {
		if _, err := tx.Exec(ctx, insertRouteQuery, role.ID, rt.URI, rt.RequestType); err != nil {
			return nil, fmt.Errorf("insert route: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("role created", "role", role.Name, "routes", len(role.Routes))
	return p.RoleByName(ctx, role.Name)
}

// RoleByName fetches a role with its routes.
func (p *Postgres) RoleByName(ctx context.Context, name string) (*entities.Role, error) {
	var r entities.Role
	if err := p.db.QueryRow(ctx, selectRoleByNameQuery, name).Scan(&r.ID, &r.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}

	routes, err := p.roleRoutes(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	r.Routes = routes
	return &r, nil
}

// Roles returns all roles with their routes.
func (p *Postgres) Roles(ctx context.Context) ([]entities.Role, error) {
	rows, err := p.db.Query(ctx, selectAllRolesQuery)
	if err != nil {
		return nil, fmt.Errorf("get roles: %w", err)
	}
	defer rows.Close()

	roles := make([]entities.Role, 0)
	for rows.Next() {
		var r entities.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}

	for i := range roles {
		routes, err := p.roleRoutes(ctx, roles[i].ID)
		if err != nil {
			return nil, err
		}
		roles[i].Routes = routes
	}
	return roles, nil
}

// AddRoutes appends routes to a role.
func (p *Postgres) AddRoutes(ctx context.Context, name string, routes []entities.Route) (*entities.Role, error) {
	role, err := p.RoleByName(ctx, name)
	if err != nil {
		return nil, err
	}

	for _, rt := range routes {
		if _, err := p.db.Exec(ctx, insertRouteQuery, role.ID, rt.URI, rt.RequestType); err != nil {
			return nil, fmt.Errorf("add route: %w", err)
		}
	}
	return p.RoleByName(ctx, name)
}

// RemoveRoutes deletes routes from a role.
func (p *Postgres) RemoveRoutes(ctx context.Context, name string, routes []entities.Route) (*entities.Role, error) {
	role, err := p.RoleByName(ctx, name)
	if err != nil {
		return nil, err
	}

	for _, rt := range routes {
		if _, err := p.db.Exec(ctx, deleteRouteQuery, role.ID, rt.URI, rt.RequestType); err != nil {
			return nil, fmt.Errorf("remove route: %w", err)
		}
	}
	return p.RoleByName(ctx, name)
}

func (p *Postgres) roleRoutes(ctx context.Context, roleID string) ([]entities.Route, error) {
	rows, err := p.db.Query(ctx, selectRoleRoutesQuery, roleID)
	if err != nil {
		return nil, fmt.Errorf("get role routes: %w", err)
	}
	defer rows.Close()

	routes := make([]entities.Route, 0)
	for rows.Next() {
		var rt entities.Route
		if err := rows.Scan(&rt.URI, &rt.RequestType); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}
	return routes, nil
}
