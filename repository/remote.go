package repository

import (
	"context"
	"errors"

	"dailysync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a record does not exist under the caller's
// namespace.
var ErrNotFound = errors.New("record not found")

// RemoteStore is the remote document store the sync layer treats as the
// single source of truth. Paths of the shape users/{uid}/{collection}/{id}
// map to a Mongo collection plus a user_id filter.
type RemoteStore interface {
	Insert(ctx context.Context, collection string, rec any) error
	FindOne(ctx context.Context, userID, collection, id string, out any) error
	FindAll(ctx context.Context, userID, collection string, out any) error
	Update(ctx context.Context, userID, collection, id string, fields bson.M) error
	Replace(ctx context.Context, userID, collection, id string, rec any) error
	Delete(ctx context.Context, userID, collection, id string) error
}

type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Insert(ctx context.Context, collection string, rec any) error {
	timer := utils.TrackDBOperation("insert", collection)
	defer timer.ObserveDuration()

	_, err := s.db.Collection(collection).InsertOne(ctx, rec)
	if err != nil {
		utils.TrackError("database", collection+"_insert_failed")
	}
	return err
}

func (s *MongoStore) FindOne(ctx context.Context, userID, collection, id string, out any) error {
	timer := utils.TrackDBOperation("find", collection)
	defer timer.ObserveDuration()

	filter := bson.M{"_id": id, "user_id": userID}
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		utils.TrackError("database", collection+"_fetch_failed")
	}
	return err
}

func (s *MongoStore) FindAll(ctx context.Context, userID, collection string, out any) error {
	timer := utils.TrackDBOperation("find", collection)
	defer timer.ObserveDuration()

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		utils.TrackError("database", collection+"_fetch_failed")
		return err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, out); err != nil {
		utils.TrackError("database", collection+"_decode_failed")
		return err
	}
	return nil
}

// Update merges fields into the existing record. Fields omitted from the
// partial payload are left untouched; the caller stamps updated_at.
func (s *MongoStore) Update(ctx context.Context, userID, collection, id string, fields bson.M) error {
	timer := utils.TrackDBOperation("update", collection)
	defer timer.ObserveDuration()

	filter := bson.M{"_id": id, "user_id": userID}
	result, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", collection+"_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		utils.TrackError("database", collection+"_not_found")
		return ErrNotFound
	}
	return nil
}

// Replace overwrites the whole document, creating it if absent. Used for
// singleton documents (profile), never for entity collections.
func (s *MongoStore) Replace(ctx context.Context, userID, collection, id string, rec any) error {
	timer := utils.TrackDBOperation("replace", collection)
	defer timer.ObserveDuration()

	filter := bson.M{"_id": id, "user_id": userID}
	if collection == "profile" {
		// The profile document is keyed by the user id itself.
		filter = bson.M{"_id": id}
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(collection).ReplaceOne(ctx, filter, rec, opts)
	if err != nil {
		utils.TrackError("database", collection+"_replace_failed")
	}
	return err
}

func (s *MongoStore) Delete(ctx context.Context, userID, collection, id string) error {
	timer := utils.TrackDBOperation("delete", collection)
	defer timer.ObserveDuration()

	filter := bson.M{"_id": id, "user_id": userID}
	result, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		utils.TrackError("database", collection+"_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		utils.TrackError("database", collection+"_not_found")
		return ErrNotFound
	}
	return nil
}
