package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"myovai/config"
	"myovai/models"
)

// CycleRepository is the persistence contract for a user's cycle collection.
// SaveCycles always overwrites the whole collection; there are no delta or
// per-cycle writes.
type CycleRepository interface {
	GetCycles(ctx context.Context, userID string) ([]models.Cycle, error)
	SaveCycles(ctx context.Context, userID string, cycles []models.Cycle) error
}

// MongoCycleRepository stores cycles on the user document in the users
// collection, mirroring a document-store record keyed by user ID.
type MongoCycleRepository struct{}

func NewMongoCycleRepository() *MongoCycleRepository {
	return &MongoCycleRepository{}
}

func (r *MongoCycleRepository) GetCycles(ctx context.Context, userID string) ([]models.Cycle, error) {
	coll := config.OpenCollection("users")

	var doc struct {
		Cycles []models.Cycle `bson:"cycles"`
	}
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// No record yet: initialize an empty persisted collection.
		if err := r.SaveCycles(ctx, userID, []models.Cycle{}); err != nil {
			return nil, err
		}
		return []models.Cycle{}, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Cycles == nil {
		return []models.Cycle{}, nil
	}
	return doc.Cycles, nil
}

func (r *MongoCycleRepository) SaveCycles(ctx context.Context, userID string, cycles []models.Cycle) error {
	coll := config.OpenCollection("users")

	// The cycles field is replaced wholesale; other user fields are untouched.
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "cycles", Value: cycles}}}}
	opts := options.Update().SetUpsert(true)
	_, err := coll.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts)
	return err
}
