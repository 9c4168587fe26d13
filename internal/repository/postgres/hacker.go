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
	insertHackerQuery = `
INSERT INTO hackers(id, account_id, school, status)
VALUES ($1, $2, $3, $4)
RETURNING id, account_id, COALESCE(team_id, ''), school, status`
	selectHackerByAccountQuery = `
SELECT id, account_id, COALESCE(team_id, ''), school, status FROM hackers WHERE account_id=$1`
	selectHackerByIDQuery = `
SELECT id, account_id, COALESCE(team_id, ''), school, status FROM hackers WHERE id=$1`
	updateHackerStatusQuery = `
UPDATE hackers SET status=$2 WHERE id=$1
RETURNING id, account_id, COALESCE(team_id, ''), school, status`
)

// CreateHacker inserts a new hacker record.
func (p *Postgres) CreateHacker(ctx context.Context, hacker entities.Hacker) (*entities.Hacker, error) {
	var h entities.Hacker
	err := p.db.QueryRow(ctx, insertHackerQuery, hacker.ID, hacker.AccountID, hacker.School, hacker.Status).
		Scan(&h.ID, &h.AccountID, &h.TeamID, &h.School, &h.Status)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrHackerExists
		}
		return nil, fmt.Errorf("insert hacker: %w", err)
	}

	p.log.Infow("hacker created", "hacker_id", h.ID, "account_id", h.AccountID)
	return &h, nil
}

// FindHackerByAccountID resolves a hacker by external account identity.
func (p *Postgres) FindHackerByAccountID(ctx context.Context, accountID string) (*entities.Hacker, error) {
	return p.scanHacker(ctx, selectHackerByAccountQuery, accountID)
}

// FindHackerByID resolves a hacker by id.
func (p *Postgres) FindHackerByID(ctx context.Context, id string) (*entities.Hacker, error) {
	return p.scanHacker(ctx, selectHackerByIDQuery, id)
}

// UpdateHackerStatus sets the application status and returns the updated hacker.
func (p *Postgres) UpdateHackerStatus(ctx context.Context, id string, status entities.HackerStatus) (*entities.Hacker, error) {
	var h entities.Hacker
	err := p.db.QueryRow(ctx, updateHackerStatusQuery, id, status).
		Scan(&h.ID, &h.AccountID, &h.TeamID, &h.School, &h.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrHackerNotFound
		}
		return nil, fmt.Errorf("update hacker status: %w", err)
	}

	p.log.Infow("hacker status updated", "hacker_id", id, "status", status)
	return &h, nil
}

func (p *Postgres) scanHacker(ctx context.Context, query, arg string) (*entities.Hacker, error) {
	var h entities.Hacker
	err := p.db.QueryRow(ctx, query, arg).
		Scan(&h.ID, &h.AccountID, &h.TeamID, &h.School, &h.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrHackerNotFound
		}
		return nil, fmt.Errorf("get hacker: %w", err)
	}
	return &h, nil
}
