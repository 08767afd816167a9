package main

import (
	"context"
	"log"
	"time"

	"beautybook/internal/config"
	"beautybook/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})

	// Beauty packages indexes
	createIndex(ctx, db, "beauty_packages", bson.D{{Key: "title", Value: 1}}, nil)
	createIndex(ctx, db, "beauty_packages", bson.D{{Key: "category", Value: 1}}, nil)
	createIndex(ctx, db, "beauty_packages", bson.D{{Key: "createdAt", Value: 1}}, nil)

	// Bookings indexes. The unique compound index is the authoritative guard
	// against a user booking the same package twice.
	createIndex(ctx, db, "bookings", bson.D{
		{Key: "userId", Value: 1},
		{Key: "packageId", Value: 1},
	}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "bookings", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "bookings", bson.D{{Key: "packageId", Value: 1}}, nil)
	createIndex(ctx, db, "bookings", bson.D{{Key: "createdAt", Value: -1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
