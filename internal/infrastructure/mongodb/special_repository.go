package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pizzeria-backend/internal/domain/entities"
	"pizzeria-backend/internal/domain/repositories"
	"pizzeria-backend/internal/infrastructure/logger"
)

type SpecialRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewSpecialRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*SpecialRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("specials")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "special_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create special index: %w", err)
	}

	return &SpecialRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *SpecialRepositoryMongo) Create(ctx context.Context, special *entities.Special) error {
	_, err := r.collection.InsertOne(ctx, toSpecialDocument(special))
	if err != nil {
		return fmt.Errorf("failed to insert special: %w", err)
	}
	return nil
}

func (r *SpecialRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Special, error) {
	var doc SpecialDocument
	err := r.collection.FindOne(ctx, bson.M{"special_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrSpecialNotFound
		}
		return nil, fmt.Errorf("failed to find special: %w", err)
	}
	return toSpecialEntity(&doc), nil
}

func (r *SpecialRepositoryMongo) List(ctx context.Context) ([]*entities.Special, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list specials: %w", err)
	}
	defer cursor.Close(ctx)

	specials := []*entities.Special{}
	for cursor.Next(ctx) {
		var doc SpecialDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode special: %w", err)
		}
		specials = append(specials, toSpecialEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("special cursor error: %w", err)
	}
	return specials, nil
}

func (r *SpecialRepositoryMongo) Update(ctx context.Context, special *entities.Special) error {
	doc := toSpecialDocument(special)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"special_id": special.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update special: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrSpecialNotFound
	}
	return nil
}

func (r *SpecialRepositoryMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"special_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete special: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrSpecialNotFound
	}
	return nil
}
