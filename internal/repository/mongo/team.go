package mongo

import (
	"context"
	"errors"
	"fmt"

	"hacker-api/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type teamDoc struct {
	ID          string   `bson:"_id"`
	Name        string   `bson:"name"`
	Members     []string `bson:"members"`
	ProjectName string   `bson:"project_name"`
	DevpostURL  string   `bson:"devpost_url,omitempty"`
}

func (d teamDoc) toEntity() *entities.Team {
	members := d.Members
	if members == nil {
		members = []string{}
	}
	return &entities.Team{
		ID:          d.ID,
		Name:        d.Name,
		Members:     members,
		ProjectName: d.ProjectName,
		DevpostURL:  d.DevpostURL,
	}
}

// CreateTeam inserts a team document and points its members at it. If any
// member document is missing the insert is compensated by deleting the team.
func (m *Mongo) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	doc := teamDoc{
		ID:          team.ID,
		Name:        team.Name,
		Members:     team.Members,
		ProjectName: team.ProjectName,
		DevpostURL:  team.DevpostURL,
	}
	if doc.Members == nil {
		doc.Members = []string{}
	}

	if _, err := m.teams().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrTeamExists
		}
		return nil, fmt.Errorf("insert team: %w", err)
	}

	for _, member := range doc.Members {
		res, err := m.hackers().UpdateOne(ctx,
			bson.M{"_id": member},
			bson.M{"$set": bson.M{"team_id": team.ID}},
		)
		if err == nil && res.MatchedCount == 0 {
			err = fmt.Errorf("%w: hacker %s", entities.ErrMembershipUpdate, member)
		}
		if err != nil {
			m.rollbackTeamCreate(ctx, team.ID, doc.Members)
			return nil, err
		}
	}

	m.log.Infow("team created", "team", team.Name, "members", len(doc.Members))
	return doc.toEntity(), nil
}

func (m *Mongo) rollbackTeamCreate(ctx context.Context, teamID string, members []string) {
	if _, err := m.hackers().UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": members}, "team_id": teamID},
		bson.M{"$unset": bson.M{"team_id": ""}},
	); err != nil {
		m.log.Errorw("rollback team members failed", "error", err, "team_id", teamID)
	}
	if _, err := m.teams().DeleteOne(ctx, bson.M{"_id": teamID}); err != nil {
		m.log.Errorw("rollback team delete failed", "error", err, "team_id", teamID)
	}
}

// FindTeamByID fetches a team by id.
func (m *Mongo) FindTeamByID(ctx context.Context, id string) (*entities.Team, error) {
	return m.findTeam(ctx, bson.M{"_id": id})
}

// FindTeamByName fetches a team by name.
func (m *Mongo) FindTeamByName(ctx context.Context, name string) (*entities.Team, error) {
	return m.findTeam(ctx, bson.M{"name": name})
}

// FindTeamByHackerID fetches the team whose member set contains the hacker.
func (m *Mongo) FindTeamByHackerID(ctx context.Context, hackerID string) (*entities.Team, error) {
	return m.findTeam(ctx, bson.M{"members": hackerID})
}

// TeamSizeByName returns the member count, distinguishing a missing team from
// an empty one.
func (m *Mongo) TeamSizeByName(ctx context.Context, name string) (int, error) {
	team, err := m.findTeam(ctx, bson.M{"name": name})
	if err != nil {
		return 0, err
	}
	return len(team.Members), nil
}

// AddMember attaches a hacker to a team with the capacity guard folded into the
// update filter, so a join past MaxTeamSize loses the race instead of winning it.
func (m *Mongo) AddMember(ctx context.Context, teamID, hackerID string, maxSize int) (*entities.Team, error) {
	filter := bson.M{
		"_id":   teamID,
		"$expr": bson.M{"$lt": bson.A{bson.M{"$size": "$members"}, maxSize}},
	}

	var doc teamDoc
	err := m.teams().FindOneAndUpdate(ctx,
		filter,
		bson.M{"$addToSet": bson.M{"members": hackerID}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("add member: %w", err)
		}
		// Either the team is gone or the size guard rejected the update.
		team, ferr := m.FindTeamByID(ctx, teamID)
		if ferr != nil {
			return nil, ferr
		}
		return nil, &entities.TeamFullError{Size: len(team.Members)}
	}

	res, err := m.hackers().UpdateOne(ctx,
		bson.M{"_id": hackerID},
		bson.M{"$set": bson.M{"team_id": teamID}},
	)
	if err == nil && res.MatchedCount == 0 {
		err = fmt.Errorf("%w: hacker %s", entities.ErrMembershipUpdate, hackerID)
	}
	if err != nil {
		if _, perr := m.teams().UpdateOne(ctx,
			bson.M{"_id": teamID},
			bson.M{"$pull": bson.M{"members": hackerID}},
		); perr != nil {
			m.log.Errorw("rollback add member failed", "error", perr, "team_id", teamID, "hacker_id", hackerID)
		}
		return nil, err
	}

	m.log.Infow("member added", "team_id", teamID, "hacker_id", hackerID)
	return doc.toEntity(), nil
}

// RemoveMember detaches a hacker from a team.
func (m *Mongo) RemoveMember(ctx context.Context, teamID, hackerID string) error {
	res, err := m.teams().UpdateOne(ctx,
		bson.M{"_id": teamID},
		bson.M{"$pull": bson.M{"members": hackerID}},
	)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if res.MatchedCount == 0 {
		return entities.ErrTeamNotFound
	}

	if _, err := m.hackers().UpdateOne(ctx,
		bson.M{"_id": hackerID, "team_id": teamID},
		bson.M{"$unset": bson.M{"team_id": ""}},
	); err != nil {
		return fmt.Errorf("detach hacker: %w", err)
	}

	m.log.Infow("member removed", "team_id", teamID, "hacker_id", hackerID)
	return nil
}

// RemoveTeam deletes a team document and detaches any remaining members.
func (m *Mongo) RemoveTeam(ctx context.Context, teamID string) error {
	if _, err := m.hackers().UpdateMany(ctx,
		bson.M{"team_id": teamID},
		bson.M{"$unset": bson.M{"team_id": ""}},
	); err != nil {
		return fmt.Errorf("detach members: %w", err)
	}

	res, err := m.teams().DeleteOne(ctx, bson.M{"_id": teamID})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if res.DeletedCount == 0 {
		return entities.ErrTeamNotFound
	}

	m.log.Infow("team removed", "team_id", teamID)
	return nil
}

func (m *Mongo) findTeam(ctx context.Context, filter bson.M) (*entities.Team, error) {
	var doc teamDoc
	if err := m.teams().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return doc.toEntity(), nil
}
