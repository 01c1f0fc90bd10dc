package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client *mongo.Client
	dbName string
)

func ConnectDB(cfg *Config) *mongo.Client {

	log.Println("Attempting to connect to MongoDB...")

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		log.Fatalf("MongoDB is not reachable: %v", err)
	}

	log.Println("Successfully connected to MongoDB!")
	client = c
	dbName = cfg.MongoDB
	return c
}

func OpenCollection(collectionName string) *mongo.Collection {

	if client == nil {
		log.Fatal("MongoDB client is not initialized.")
	}

	return client.Database(dbName).Collection(collectionName)
}
