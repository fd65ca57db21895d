// Package mongodb is a PropertyRepository backed by a MongoDB collection.
// The catalog core only requires the in-memory repository; this adapter
// exists for deployments that want the catalog to survive restarts.
package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/property/domain"
)

type PropertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{collection: db.Collection("properties")}
}

func (r *PropertyRepository) Add(ctx context.Context, property *domain.Property) error {
	if property == nil {
		return nil
	}
	_, err := r.collection.InsertOne(ctx, toModel(property))
	return err
}

func (r *PropertyRepository) Remove(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	if property == nil {
		return domain.ErrInvalidPropertyData
	}
	result, err := r.collection.UpdateByID(ctx, property.ID, bson.M{"$set": toModel(property)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	var model propertyModel
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPropertyNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*domain.Property, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var models []*propertyModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, err
	}
	properties := make([]*domain.Property, len(models))
	for i, m := range models {
		properties[i] = m.toDomain()
	}
	return properties, nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	return int(count), err
}

func (r *PropertyRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{})
	return err
}
