package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/domain/repository"
)

// MongoSnapshotRepository archives one document per pipeline run
type MongoSnapshotRepository struct {
	collection *mongo.Collection
}

// NewMongoSnapshotRepository creates a new snapshot repository
func NewMongoSnapshotRepository(db *mongo.Database) repository.SnapshotRepository {
	collection := db.Collection("run_snapshots")

	// Index on fetchedAt for time-ordered audit queries
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys: bson.M{"fetchedAt": -1},
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoSnapshotRepository{
		collection: collection,
	}
}

// Save inserts a run snapshot
func (r *MongoSnapshotRepository) Save(ctx context.Context, snapshot *entity.RunSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = primitive.NewObjectID().Hex()
	}
	snapshot.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}

// NoopSnapshotRepository is used when archiving is disabled
type NoopSnapshotRepository struct{}

// NewNoopSnapshotRepository creates a snapshot repository that drops everything
func NewNoopSnapshotRepository() repository.SnapshotRepository {
	return &NoopSnapshotRepository{}
}

// Save discards the snapshot
func (r *NoopSnapshotRepository) Save(_ context.Context, _ *entity.RunSnapshot) error {
	return nil
}
