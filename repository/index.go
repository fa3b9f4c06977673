package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"dailysync/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the per-user indexes every entity collection relies
// on, plus the comparator-specific ones for tasks and notes.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetName("user_id_index"),
	}

	for _, collection := range model.EntityCollections {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, userIndex); err != nil {
			return fmt.Errorf("failed to create user index on %s: %w", collection, err)
		}
	}

	taskIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "order", Value: 1},
			},
			Options: options.Index().SetName("user_tasks_order"),
		},
	}
	if _, err := db.Collection(model.CollectionTodos).Indexes().CreateMany(ctx, taskIndexes); err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "pinned", Value: -1},
				{Key: "updated_at", Value: -1},
			},
			Options: options.Index().SetName("user_notes_pinned"),
		},
	}
	if _, err := db.Collection(model.CollectionNotes).Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("failed to create note indexes: %w", err)
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_id", Value: 1}},
			Options: options.Index().SetName("session_id_index").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("user_active_sessions"),
		},
	}
	if _, err := db.Collection("sessions").Indexes().CreateMany(ctx, sessionIndexes); err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}

	log.Println("Database indexes created")
	return nil
}
