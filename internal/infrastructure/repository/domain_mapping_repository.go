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

// MongoDomainMappingRepository implements DomainMappingRepository using MongoDB
type MongoDomainMappingRepository struct {
	collection *mongo.Collection
}

// NewMongoDomainMappingRepository creates a new MongoDB domain mapping repository
func NewMongoDomainMappingRepository(db *mongo.Database) ports.DomainMappingRepository {
	return &MongoDomainMappingRepository{
		collection: db.Collection("customDomains"),
	}
}

// GetByDomain retrieves the mapping for an exact domain match. FindOne takes
// the first document, so a duplicate row (which provisioning should prevent)
// never yields more than one tenant.
func (r *MongoDomainMappingRepository) GetByDomain(ctx context.Context, name string) (*domain.DomainMapping, error) {
	var doc entity.MongoDomainMappingDoc
	filter := bson.M{"domain": name}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.TransportError{Op: "get domain mapping", Err: fmt.Errorf("failed to get domain mapping: %w", err)}
	}

	return doc.ToDomain(), nil
}
