package repository

import (
	"context"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testMongoClient builds a client without contacting a server; the driver
// only dials on the first operation.
func testMongoClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("building mongo client: %v", err)
	}
	return client
}

func TestGetUserRepoCollectionName(t *testing.T) {
	client := testMongoClient(t)

	os.Unsetenv("USERS_COLLECTION")
	if name := GetUserRepo(client).MongoCollection.Name(); name != "users" {
		t.Errorf("default collection = %q, want %q", name, "users")
	}

	t.Setenv("USERS_COLLECTION", "accounts")
	if name := GetUserRepo(client).MongoCollection.Name(); name != "accounts" {
		t.Errorf("overridden collection = %q, want %q", name, "accounts")
	}
}

func TestGetSessionRepoCollectionName(t *testing.T) {
	client := testMongoClient(t)

	os.Unsetenv("SESSIONS_COLLECTION")
	if name := GetSessionRepo(client).MongoCollection.Name(); name != "sessions" {
		t.Errorf("default collection = %q, want %q", name, "sessions")
	}

	t.Setenv("SESSIONS_COLLECTION", "user_sessions")
	if name := GetSessionRepo(client).MongoCollection.Name(); name != "user_sessions" {
		t.Errorf("overridden collection = %q, want %q", name, "user_sessions")
	}
}
