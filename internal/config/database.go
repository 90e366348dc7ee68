package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

type MongoDBConfig struct {
	URI      string
	Database string
}

func NewMongoDBConfig() *MongoDBConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("DB uri not set")
	}
	dbName := os.Getenv("MONGO_DATABASE")
	if dbName == "" {
		dbName = "career_connect"
	}
	return &MongoDBConfig{URI: uri, Database: dbName}
}

func NewMongoDBClient(lc fx.Lifecycle, config *MongoDBConfig) (*mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(config.URI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB")

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			log.Println("MongoDB connection verified on startup")
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Println("Closing MongoDB connection ...")
			return client.Disconnect(stopCtx)
		},
	})
	return client.Database(config.Database), nil
}

// UniqueEmailIndex makes user emails unique at the store level so duplicate
// registrations lose the race instead of both inserting.
func UniqueEmailIndex(collection *mongo.Collection) {
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_, err := collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Fatal("Failed to create unique index on email:", err)
	}

	log.Println("Unique index on email created successfully")
}
