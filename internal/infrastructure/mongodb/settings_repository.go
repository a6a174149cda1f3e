package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"
)

// SettingsRepositoryMongo stores the restaurant settings as a single
// document in the restaurant_settings collection.
type SettingsRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewSettingsRepositoryMongo(db *mongo.Database, logger *logger.Logger) *SettingsRepositoryMongo {
	return &SettingsRepositoryMongo{
		collection: db.Collection("restaurant_settings"),
		logger:     logger,
	}
}

func (r *SettingsRepositoryMongo) Get(ctx context.Context) (*entities.RestaurantSettings, error) {
	var doc SettingsDocument
	err := r.collection.FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	return toSettingsEntity(&doc), nil
}

func (r *SettingsRepositoryMongo) Upsert(ctx context.Context, settings *entities.RestaurantSettings) error {
	doc := toSettingsDocument(settings)

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert settings: %w", err)
	}
	return nil
}
