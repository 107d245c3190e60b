// Package mongo implements the document store on a MongoDB collection.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Rrens/kopiloka/internal/store"
)

const collectionName = "documents"

// record is the stored shape. The value is JSON text so documents decode
// the same way they do in the other stores.
type record struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Store implements domain.DocumentStore
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Open connects to uri and uses the documents collection of database
func Open(ctx context.Context, uri, database string) (*Store, error) {
	if database == "" {
		return nil, fmt.Errorf("mongo database name is required")
	}

	clientOpts := options.Client().ApplyURI(uri).SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &Store{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
	}, nil
}

func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	if err := store.CheckKey(key); err != nil {
		return false, err
	}
	var rec record
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get document %q: %w", key, err)
	}

	if err := decode(rec.Value, dst); err != nil {
		return false, fmt.Errorf("failed to decode document %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) Put(ctx context.Context, key string, value any) error {
	if err := store.CheckKey(key); err != nil {
		return err
	}
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode document %q: %w", key, err)
	}

	rec := record{Key: key, Value: data, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, rec, opts); err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := store.CheckKey(key); err != nil {
		return err
	}
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}
