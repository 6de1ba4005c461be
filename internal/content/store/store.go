package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rechargetravels/pkg/config"
)

// ErrNotFound is returned when a document id has no match.
var ErrNotFound = errors.New("document not found")

const defaultTimeout = 10 * time.Second

// Store is a Mongo-backed collection of whole documents of type T.
// Writes are replace-or-insert: the caller always sends the full
// document and the store upserts it under its id.
type Store[T any] struct {
	cfg        *config.Config
	collection *mongo.Collection
	sort       bson.D
}

// New binds a store to a collection. The sort order applies to List;
// pass nil for natural order.
func New[T any](cfg *config.Config, collection string, sort bson.D) *Store[T] {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &Store[T]{
		cfg:        cfg,
		collection: db.Collection(collection),
		sort:       sort,
	}
}

func (s *Store[T]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultTimeout)
}

func (s *Store[T]) List(ctx context.Context) ([]*T, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	opts := options.Find()
	if s.sort != nil {
		opts.SetSort(s.sort)
	}

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc T
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Replace upserts the full document under id.
func (s *Store[T]) Replace(ctx context.Context, id string, doc *T) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *Store[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.collection.CountDocuments(ctx, bson.M{})
}
