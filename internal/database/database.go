package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect abre el cliente compartido y verifica la conexión con un ping.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea los índices únicos y los secundarios que respaldan
// los filtros del API.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"media": {
			{Keys: bson.D{{Key: "public_id", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "folder", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		"colors": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"countries": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"leagues": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "country", Value: 1}}},
		},
		"teams": {
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "short_name", Value: 1}}},
			{Keys: bson.D{{Key: "league", Value: 1}}},
		},
		"products": {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "team", Value: 1}}},
			{Keys: bson.D{{Key: "league", Value: 1}}},
			{Keys: bson.D{{Key: "country", Value: 1}}},
			{Keys: bson.D{{Key: "season.from", Value: 1}, {Key: "season.to", Value: 1}}},
			{Keys: bson.D{{Key: "is_featured", Value: 1}}},
			{Keys: bson.D{{Key: "price", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", collection, err)
		}
	}
	return nil
}
