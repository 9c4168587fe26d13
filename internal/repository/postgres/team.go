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
	insertTeamQuery       = `INSERT INTO teams(id, name, project_name, devpost_url) VALUES($1, $2, $3, $4)`
	selectTeamByIDQuery   = `SELECT id, name, project_name, devpost_url FROM teams WHERE id=$1`
	selectTeamByNameQuery = `SELECT id, name, project_name, devpost_url FROM teams WHERE name=$1`
	selectTeamByHackerQuery = `
SELECT t.id, t.name, t.project_name, t.devpost_url
FROM teams t
JOIN hackers h ON h.team_id = t.id
WHERE h.id=$1`
	selectTeamMembersQuery = `SELECT id FROM hackers WHERE team_id=$1 ORDER BY id`
	selectTeamSizeQuery    = `
SELECT t.id, COUNT(h.id)
FROM teams t
LEFT JOIN hackers h ON h.team_id = t.id
WHERE t.name=$1
GROUP BY t.id`
	lockTeamQuery      = `SELECT id FROM teams WHERE id=$1 FOR UPDATE`
	countMembersQuery  = `SELECT COUNT(*) FROM hackers WHERE team_id=$1`
	attachHackerQuery  = `UPDATE hackers SET team_id=$1 WHERE id=$2 RETURNING id`
	detachHackerQuery  = `UPDATE hackers SET team_id=NULL WHERE id=$2 AND team_id=$1`
	detachAllQuery     = `UPDATE hackers SET team_id=NULL WHERE team_id=$1`
	deleteTeamQuery    = `DELETE FROM teams WHERE id=$1`
)

// CreateTeam inserts a team and attaches its initial members, all in one
// transaction so a half-built team never becomes visible.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, insertTeamQuery, team.ID, team.Name, team.ProjectName, team.DevpostURL); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	for _, m := range team.Members {
		var id string
		if err := tx.QueryRow(ctx, attachHackerQuery, team.ID, m).Scan(&id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("%w: hacker %s", entities.ErrMembershipUpdate, m)
			}
			return nil, fmt.Errorf("attach member: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("team created", "team", team.Name, "members", len(team.Members))
	return p.FindTeamByName(ctx, team.Name)
}

// FindTeamByID fetches a team with members by id.
func (p *Postgres) FindTeamByID(ctx context.Context, id string) (*entities.Team, error) {
	return p.scanTeam(ctx, selectTeamByIDQuery, id)
}

// FindTeamByName fetches a team with members by name.
func (p *Postgres) FindTeamByName(ctx context.Context, name string) (*entities.Team, error) {
	return p.scanTeam(ctx, selectTeamByNameQuery, name)
}

// FindTeamByHackerID fetches the team a hacker currently belongs to.
// ErrTeamNotFound means the hacker is unaffiliated.
func (p *Postgres) FindTeamByHackerID(ctx context.Context, hackerID string) (*entities.Team, error) {
	return p.scanTeam(ctx, selectTeamByHackerQuery, hackerID)
}

// TeamSizeByName returns the member count, distinguishing a missing team from
// an empty one.
func (p *Postgres) TeamSizeByName(ctx context.Context, name string) (int, error) {
	var teamID string
	var size int
	if err := p.db.QueryRow(ctx, selectTeamSizeQuery, name).Scan(&teamID, &size); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entities.ErrTeamNotFound
		}
		return 0, fmt.Errorf("team size: %w", err)
	}
	return size, nil
}

// AddMember attaches a hacker to a team, re-checking capacity at write time.
// The team row is locked so concurrent joins near capacity serialize instead of
// both passing the size check.
func (p *Postgres) AddMember(ctx context.Context, teamID, hackerID string, maxSize int) (*entities.Team, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked string
	if err := tx.QueryRow(ctx, lockTeamQuery, teamID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("lock team: %w", err)
	}

	var size int
	if err := tx.QueryRow(ctx, countMembersQuery, teamID).Scan(&size); err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	if size >= maxSize {
		return nil, &entities.TeamFullError{Size: size}
	}

	var id string
	if err := tx.QueryRow(ctx, attachHackerQuery, teamID, hackerID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: hacker %s", entities.ErrMembershipUpdate, hackerID)
		}
		return nil, fmt.Errorf("attach member: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	p.log.Infow("member added", "team_id", teamID, "hacker_id", hackerID)
	return p.FindTeamByID(ctx, teamID)
}

// RemoveMember detaches a hacker from a team. Idempotent: a hacker whose
// team_id already moved elsewhere is left alone.
func (p *Postgres) RemoveMember(ctx context.Context, teamID, hackerID string) error {
	tag, err := p.db.Exec(ctx, detachHackerQuery, teamID, hackerID)
	if err != nil {
		return fmt.Errorf("detach member: %w", err)
	}

	p.log.Infow("member removed", "team_id", teamID, "hacker_id", hackerID, "detached", tag.RowsAffected())
	return nil
}

// RemoveTeam deletes a team and detaches any remaining members.
func (p *Postgres) RemoveTeam(ctx context.Context, teamID string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, detachAllQuery, teamID); err != nil {
		return fmt.Errorf("detach members: %w", err)
	}

	tag, err := tx.Exec(ctx, deleteTeamQuery, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("team removed", "team_id", teamID)
	return nil
}

func (p *Postgres) scanTeam(ctx context.Context, query, arg string) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, query, arg).
		Scan(&t.ID, &t.Name, &t.ProjectName, &t.DevpostURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	rows, err := p.db.Query(ctx, selectTeamMembersQuery, t.ID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	defer rows.Close()

	members := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		members = append(members, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	t.Members = members
	return &t, nil
}
