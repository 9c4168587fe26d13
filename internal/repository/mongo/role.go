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

type routeDoc struct {
	URI         string `bson:"uri"`
	RequestType string `bson:"request_type"`
}

type roleDoc struct {
	ID     string     `bson:"_id"`
	Name   string     `bson:"name"`
	Routes []routeDoc `bson:"routes"`
}

func (d roleDoc) toEntity() *entities.Role {
	routes := make([]entities.Route, 0, len(d.Routes))
	for _, rt := range d.Routes {
		routes = append(routes, entities.Route{URI: rt.URI, RequestType: rt.RequestType})
	}
	return &entities.Role{ID: d.ID, Name: d.Name, Routes: routes}
}

func toRouteDocs(routes []entities.Route) []routeDoc {
	docs := make([]routeDoc, 0, len(routes))
	for _, rt := range routes {
		docs = append(docs, routeDoc{URI: rt.URI, RequestType: rt.RequestType})
	}
	return docs
}

// CreateRole inserts a role document.
func (m *Mongo) CreateRole(ctx context.Context, role entities.Role) (*entities.Role, error) {
	doc := roleDoc{ID: role.ID, Name: role.Name, Routes: toRouteDocs(role.Routes)}
	if _, err := m.roles().InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, entities.ErrRoleExists
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}

	m.log.Infow("role created", "role", role.Name, "routes", len(role.Routes))
	return doc.toEntity(), nil
}

// RoleByName fetches a role by name.
func (m *Mongo) RoleByName(ctx context.Context, name string) (*entities.Role, error) {
	var doc roleDoc
	if err := m.roles().FindOne(ctx, bson.M{"name": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrRoleNotFound
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return doc.toEntity(), nil
}

// Roles returns all roles.
func (m *Mongo) Roles(ctx context.Context) ([]entities.Role, error) {
	cur, err := m.roles().Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("get roles: %w", err)
	}
	defer cur.Close(ctx)

	roles := make([]entities.Role, 0)
	for cur.Next(ctx) {
		var doc roleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode role: %w", err)
		}
		roles = append(roles, *doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate roles: %w", err)
	}
	return roles, nil
}

// AddRoutes pushes routes onto a role's route list.
func (m *Mongo) AddRoutes(ctx context.Context, name string, routes []entities.Route) (*entities.Role, error) {
	var doc roleDoc
	err := m.roles().FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$addToSet": bson.M{"routes": bson.M{"$each": toRouteDocs(routes)}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrRoleNotFound
		}
		return nil, fmt.Errorf("add routes: %w", err)
	}
	return doc.toEntity(), nil
}

// RemoveRoutes pulls routes from a role's route list.
func (m *Mongo) RemoveRoutes(ctx context.Context, name string, routes []entities.Route) (*entities.Role, error) {
	var doc roleDoc
	err := m.roles().FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$pull": bson.M{"routes": bson.M{"$in": toRouteDocs(routes)}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entities.ErrRoleNotFound
		}
		return nil, fmt.Errorf("remove routes: %w", err)
	}
	return doc.toEntity(), nil
}
