package repository

import (
	"context"
	"errors"
	"time"

	"portfolio-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *MongoOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

func (r *MongoOrderRepository) FindByAnyID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err == nil {
		return &order, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	// Fall back to the gateway session id, so orders only known by their
	// session id (orphaned ledger writes) stay reachable.
	err = r.collection.FindOne(ctx, bson.M{"paymentSessionId": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MongoOrderRepository) List(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		findOptions.SetLimit(filter.Limit)
	}

	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// markPaidFilter matches the one order a verified payment event may
// transition. The method is part of the filter so a webhook from one
// gateway can never transition an order created through another, and only
// pending orders qualify: redelivery to an already paid order is a no-op,
// and a late event can never resurrect a cancelled or refunded one.
func markPaidFilter(sessionID, method string) bson.M {
	return bson.M{
		"paymentSessionId": sessionID,
		"paymentMethod":    method,
		"status":           models.OrderStatusPending,
	}
}

func (r *MongoOrderRepository) MarkPaid(ctx context.Context, sessionID, method, paymentIntentID string) (int64, error) {
	filter := markPaidFilter(sessionID, method)
	update := bson.M{"$set": bson.M{
		"status":          models.OrderStatusPaid,
		"paymentIntentId": paymentIntentID,
		"updatedAt":       time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *MongoOrderRepository) UpdateStatusByAnyID(ctx context.Context, id, status string) (int64, error) {
	update := bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return 0, err
	}
	if result.MatchedCount > 0 {
		return result.MatchedCount, nil
	}
	result, err = r.collection.UpdateOne(ctx, bson.M{"paymentSessionId": id}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
