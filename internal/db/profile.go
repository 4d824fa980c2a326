package db

import (
	"context"
	"errors"
	"time"

	"github.com/ukydev/sahigaadi/internal/models"
	"github.com/ukydev/sahigaadi/internal/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileCollection implements session.Store for MongoDB.
type MongoProfileCollection struct {
	Collection *mongo.Collection
	TTL        time.Duration
}

var _ session.Store = (*MongoProfileCollection)(nil)

// Save upserts the profile for a session.
func (c *MongoProfileCollection) Save(ctx context.Context, sessionID string, profile models.WizardProfile) error {
	if c.Collection == nil {
		return errNilCollection
	}
	if sessionID == "" {
		return errors.New("session id is empty")
	}

	now := time.Now()
	_, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"session_id": sessionID},
		bson.M{
			"$set":         bson.M{"profile": profile, "updated_at": now},
			"$setOnInsert": bson.M{"session_id": sessionID, "created_at": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Load finds the profile for a session. Missing and stale entries return session.ErrNoProfile.
func (c *MongoProfileCollection) Load(ctx context.Context, sessionID string) (*models.StoredProfile, error) {
	if c.Collection == nil {
		return nil, errNilCollection
	}

	var stored models.StoredProfile
	err := c.Collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&stored)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrNoProfile
		}
		return nil, err
	}

	// The TTL monitor runs about once a minute, so expiry is checked here too.
	if c.TTL > 0 && time.Since(stored.UpdatedAt) > c.TTL {
		return nil, session.ErrNoProfile
	}
	return &stored, nil
}

// Delete removes the profile for a session.
func (c *MongoProfileCollection) Delete(ctx context.Context, sessionID string) error {
	if c.Collection == nil {
		return errNilCollection
	}
	_, err := c.Collection.DeleteOne(ctx, bson.M{"session_id": sessionID})
	return err
}
