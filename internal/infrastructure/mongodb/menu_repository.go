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

type MenuRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewMenuRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*MenuRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("menu_items")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "item_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create menu indexes: %w", err)
	}

	return &MenuRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *MenuRepositoryMongo) Create(ctx context.Context, item *entities.MenuItem) error {
	_, err := r.collection.InsertOne(ctx, toMenuItemDocument(item))
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *MenuRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var doc MenuItemDocument
	err := r.collection.FindOne(ctx, bson.M{"item_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}
	return toMenuItemEntity(&doc), nil
}

func (r *MenuRepositoryMongo) List(ctx context.Context, query repositories.ListMenuQuery) ([]*entities.MenuItem, int64, error) {
	filter := bson.M{}
	if query.Category != "" && query.Category != "all" {
		filter["category"] = query.Category
	}
	if query.OnlyAvailable {
		filter["available"] = true
	}
	if query.Search != "" {
		pattern := bson.M{"$regex": query.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count menu items: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}).
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	items, err := decodeMenuItems(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MenuRepositoryMongo) ListAll(ctx context.Context) ([]*entities.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeMenuItems(ctx, cursor)
}

func (r *MenuRepositoryMongo) Update(ctx context.Context, item *entities.MenuItem) error {
	doc := toMenuItemDocument(item)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"item_id": item.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepositoryMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"item_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrMenuItemNotFound
	}
	return nil
}

func decodeMenuItems(ctx context.Context, cursor *mongo.Cursor) ([]*entities.MenuItem, error) {
	items := []*entities.MenuItem{}
	for cursor.Next(ctx) {
		var doc MenuItemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode menu item: %w", err)
		}
		items = append(items, toMenuItemEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("menu cursor error: %w", err)
	}
	return items, nil
}
