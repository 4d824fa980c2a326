package db

import (
	"context"
	"sort"
	"sync"

	"github.com/ukydev/sahigaadi/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConsultationCollection stores consultation leads in MongoDB.
type MongoConsultationCollection struct {
	Collection *mongo.Collection
}

// InsertConsultation inserts a lead.
func (c *MongoConsultationCollection) InsertConsultation(ctx context.Context, consultation models.Consultation) error {
	if c.Collection == nil {
		return errNilCollection
	}
	_, err := c.Collection.InsertOne(ctx, consultation)
	return err
}

// FindConsultations returns leads newest first. A non-positive limit returns all.
func (c *MongoConsultationCollection) FindConsultations(ctx context.Context, limit int64) ([]models.Consultation, error) {
	if c.Collection == nil {
		return nil, errNilCollection
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := c.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	consultations := []models.Consultation{}
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, err
	}
	return consultations, nil
}

// MemoryConsultationCollection keeps leads in process when no database is configured.
type MemoryConsultationCollection struct {
	mu    sync.RWMutex
	items []models.Consultation
}

// NewMemoryConsultationCollection creates an empty in-memory lead store.
func NewMemoryConsultationCollection() *MemoryConsultationCollection {
	return &MemoryConsultationCollection{}
}

// InsertConsultation appends a lead.
func (c *MemoryConsultationCollection) InsertConsultation(ctx context.Context, consultation models.Consultation) error {
	c.mu.Lock()
	c.items = append(c.items, consultation)
	c.mu.Unlock()
	return nil
}

// FindConsultations returns leads newest first. A non-positive limit returns all.
func (c *MemoryConsultationCollection) FindConsultations(ctx context.Context, limit int64) ([]models.Consultation, error) {
	c.mu.RLock()
	out := make([]models.Consultation, len(c.items))
	copy(out, c.items)
	c.mu.RUnlock()

	// Insertion order breaks ties between equal timestamps, latest insert first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}
