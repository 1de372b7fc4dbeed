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

// storageDoc is the document shape kept in the Mongo collection.
type storageDoc struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoRepository is the MongoDB flavour of the profile key-value storage.
type MongoRepository struct {
	Collection *mongo.Collection
}

// ConnectMongo opens a client and verifies it with a ping.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

// NewMongoRepository returns a repository over database.profile_storage.
func NewMongoRepository(client *mongo.Client, database string) *MongoRepository {
	return &MongoRepository{Collection: client.Database(database).Collection("profile_storage")}
}

func (m *MongoRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc storageDoc
	err := m.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(doc.Value), true, nil
}

func (m *MongoRepository) Put(ctx context.Context, key string, value []byte) error {
	doc := storageDoc{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := m.Collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (m *MongoRepository) Delete(ctx context.Context, key string) error {
	if _, err := m.Collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
