// Package mongo implements the repository against a MongoDB document store.
package mongo

import (
	"context"
	"fmt"

	"hacker-api/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	teamsCollection   = "teams"
	hackersCollection = "hackers"
	rolesCollection   = "roles"
)

// Mongo wraps a mongo client and configuration.
type Mongo struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.MongoConfig
	client  *mongo.Client
	db      *mongo.Database
}

// New creates a Mongo repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Mongo {
	return &Mongo{
		baseCtx: ctx,
		log:     log.Named("repo.mongo"),
		cfg:     cfg.Mongo,
	}
}

// OnStart connects the client and ensures unique indexes.
func (m *Mongo) OnStart(_ context.Context) error {
	connectCtx, cancel := context.WithTimeout(m.baseCtx, m.cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(m.cfg.URI))
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}

	m.client = client
	m.db = client.Database(m.cfg.DBName)

	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		teamsCollection:   {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		hackersCollection: {Keys: bson.D{{Key: "account_id", Value: 1}}, Options: unique},
		rolesCollection:   {Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
	}
	for coll, model := range indexes {
		if _, err := m.db.Collection(coll).Indexes().CreateOne(connectCtx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", coll, err)
		}
	}

	m.log.Infow("mongo ready", "db", m.cfg.DBName)
	return nil
}

// OnStop disconnects the client.
func (m *Mongo) OnStop(ctx context.Context) error {
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}
	return nil
}

func (m *Mongo) teams() *mongo.Collection   { return m.db.Collection(teamsCollection) }
func (m *Mongo) hackers() *mongo.Collection { return m.db.Collection(hackersCollection) }
func (m *Mongo) roles() *mongo.Collection   { return m.db.Collection(rolesCollection) }
