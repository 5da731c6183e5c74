package repository

import (
	"context"
	"fmt"

	"minimart-backend/internal/domain"
	"minimart-backend/internal/infrastructure/repository/entity"
	"minimart-backend/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTenantRepository implements TenantRepository using MongoDB
type MongoTenantRepository struct {
	collection *mongo.Collection
}

// NewMongoTenantRepository creates a new MongoDB tenant repository
func NewMongoTenantRepository(db *mongo.Database) ports.TenantRepository {
	return &MongoTenantRepository{
		collection: db.Collection("businesses"),
	}
}

// GetTenant retrieves a tenant by store id
func (r *MongoTenantRepository) GetTenant(ctx context.Context, id string) (*domain.Tenant, error) {
	var doc entity.MongoBusinessDoc
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.TransportError{Op: "get tenant", Err: fmt.Errorf("failed to get tenant: %w", err)}
	}

	return doc.ToDomain(), nil
}
