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

type hackerDoc struct {
	ID        string `bson:"_id"`
	AccountID string `bson:"account_id"`
	TeamID    string `bson:"team_id,omitempty"`
	School    string `bson:"school"`
	Status    string `bson:"status"`
}

func (d hackerDoc) toEntity() *entities.Hacker {
	return &entities.Hacker{
		ID:        d.ID,
		AccountID: d.AccountID,
		TeamID:    d.TeamID,
		School:    d.School,
		Status:    entities.HackerStatus(d.Status),
	}
}

// CreateHacker inserts a new hacker document.
func (m *Mongo) CreateHacker(ctx context.Context, hacker entities.Hacker) (*entities.Hacker, error) {
	doc := hackerDoc{
		ID:        hacker.ID,
		AccountID: hacker.AccountID,
		School:    hacker.School,
		Status:    string(hacker.Status),
	}
	if _, err := m.hackers().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrHackerExists
		}
		return nil, fmt.Errorf("insert hacker: %w", err)
	}

	m.log.Infow("hacker created", "hacker_id", hacker.ID, "account_id", hacker.AccountID)
	return doc.toEntity(), nil
}

// FindHackerByAccountID resolves a hacker by external account identity.
func (m *Mongo) FindHackerByAccountID(ctx context.Context, accountID string) (*entities.Hacker, error) {
	return m.findHacker(ctx, bson.M{"account_id": accountID})
}

// FindHackerByID resolves a hacker by id.
func (m *Mongo) FindHackerByID(ctx context.Context, id string) (*entities.Hacker, error) {
	return m.findHacker(ctx, bson.M{"_id": id})
}

// UpdateHackerStatus sets the application status and returns the updated hacker.
func (m *Mongo) UpdateHackerStatus(ctx context.Context, id string, status entities.HackerStatus) (*entities.Hacker, error) {
	var doc hackerDoc
	err := m.hackers().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrHackerNotFound
		}
		return nil, fmt.Errorf("update hacker status: %w", err)
	}

	m.log.Infow("hacker status updated", "hacker_id", id, "status", status)
	return doc.toEntity(), nil
}

func (m *Mongo) findHacker(ctx context.Context, filter bson.M) (*entities.Hacker, error) {
	var doc hackerDoc
	if err := m.hackers().FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrHackerNotFound
		}
		return nil, fmt.Errorf("get hacker: %w", err)
	}
	return doc.toEntity(), nil
}
