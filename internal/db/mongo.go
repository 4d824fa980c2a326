package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the service.
const (
	ProfilesCollection      = "wizard_profiles"
	ConsultationsCollection = "consultations"
)

var errNilCollection = errors.New("mongo collection is nil")

// ConnectMongo connects to MongoDB and pings the server.
func ConnectMongo(uri string) (*mongo.Client, error) {
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the collections rely on. Profiles get a
// unique session index and a TTL index so abandoned wizards age out.
func EnsureIndexes(ctx context.Context, database *mongo.Database, profileTTL time.Duration) error {
	profiles := database.Collection(ProfilesCollection)
	_, err := profiles.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(profileTTL.Seconds())),
		},
	})
	if err != nil {
		return fmt.Errorf("create profile indexes: %w", err)
	}

	consultations := database.Collection(ConsultationsCollection)
	_, err = consultations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create consultation indexes: %w", err)
	}
	return nil
}
