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

type CustomerRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewCustomerRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*CustomerRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("customers")

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer indexes: %w", err)
	}

	return &CustomerRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *CustomerRepositoryMongo) Create(ctx context.Context, customer *entities.Customer) error {
	_, err := r.collection.InsertOne(ctx, toCustomerDocument(customer))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrCustomerAlreadyExists
		}
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepositoryMongo) GetByID(ctx context.Context, id string) (*entities.Customer, error) {
	return r.findOne(ctx, bson.M{"customer_id": id})
}

func (r *CustomerRepositoryMongo) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *CustomerRepositoryMongo) findOne(ctx context.Context, filter bson.M) (*entities.Customer, error) {
	var doc CustomerDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repositories.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return toCustomerEntity(&doc), nil
}

func (r *CustomerRepositoryMongo) List(ctx context.Context, query repositories.ListCustomersQuery) ([]*entities.Customer, int64, error) {
	filter := bson.M{}
	if query.Search != "" {
		pattern := bson.M{"$regex": query.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"email": pattern},
			bson.M{"phone": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((query.Page - 1) * query.Limit)).
		SetLimit(int64(query.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []*entities.Customer{}
	for cursor.Next(ctx) {
		var doc CustomerDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode customer: %w", err)
		}
		customers = append(customers, toCustomerEntity(&doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("customer cursor error: %w", err)
	}

	return customers, total, nil
}

func (r *CustomerRepositoryMongo) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}

func (r *CustomerRepositoryMongo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": since}})
	if err != nil {
		return 0, fmt.Errorf("failed to count new customers: %w", err)
	}
	return count, nil
}

func (r *CustomerRepositoryMongo) CountReturning(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"total_orders": bson.M{"$gt": 1}})
	if err != nil {
		return 0, fmt.Errorf("failed to count returning customers: %w", err)
	}
	return count, nil
}

func (r *CustomerRepositoryMongo) Update(ctx context.Context, customer *entities.Customer) error {
	doc := toCustomerDocument(customer)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"customer_id": customer.ID}, doc)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepositoryMongo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"customer_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if result.DeletedCount == 0 {
		return repositories.ErrCustomerNotFound
	}
	return nil
}

// RecordOrder bumps the customer's counters atomically. One loyalty point
// per full euro spent, matching the storefront's loyalty copy.
func (r *CustomerRepositoryMongo) RecordOrder(ctx context.Context, id string, total float64, at time.Time) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"customer_id": id},
		bson.M{
			"$inc": bson.M{
				"total_orders":   1,
				"total_spent":    total,
				"loyalty_points": int(total),
			},
			"$set": bson.M{"last_order_at": at},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to record order on customer: %w", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrCustomerNotFound
	}
	return nil
}
