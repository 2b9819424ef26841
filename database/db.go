package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	MongoClient *mongo.Client
	DB          *mongo.Database
)

// Connect creates the MongoDB client. A short server-selection timeout makes
// queries fail fast when the database is down, so read endpoints can fall
// back to defaults quickly instead of hanging. An unreachable server is not
// fatal here: the handle is still set and later operations surface errors.
func Connect(mongoURL, dbName string) error {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(1500 * time.Millisecond)

	client, err := mongo.Connect(timeoutCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to create MongoDB client: %w", err)
	}
	MongoClient = client
	DB = client.Database(dbName)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Printf("MongoDB unreachable at startup (%v); serving defaults until it comes back", err)
		return nil
	}

	log.Println("Successfully connected to MongoDB")
	return nil
}

// Close disconnects from MongoDB.
func Close() error {
	if MongoClient == nil {
		return nil
	}
	disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := MongoClient.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
