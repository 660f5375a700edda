package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names. Each collection is independently accessible; there
// is no transaction spanning two of them, so a multi-collection update
// interrupted between writes leaves a partial result.
const (
	Customers    = "customers"
	Forklifts    = "forklifts"
	ServiceParts = "service_parts"
	Sales        = "sales"
)

// ErrNotFound is returned when a lookup by id or name matches nothing.
var ErrNotFound = errors.New("record not found")

// Store is the document-store client. Callers construct it once at
// startup and pass it into whatever needs persistence; there are no
// package-level collection handles.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return s.db.Client().Ping(checkCtx, readpref.Primary())
}

// FetchAll returns every document of a collection, key field stripped,
// in the store's natural cursor order. That order is also the
// tie-break for name lookups: first fetched wins.
func (s *Store) FetchAll(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	for _, doc := range docs {
		delete(doc, "_id")
	}
	return docs, nil
}

// Put upserts a whole document under its domain id. This is a
// full-document overwrite, not a field-level patch: two writers
// racing on the same record clobber each other. Acceptable for the
// single-operator usage this system serves.
func (s *Store) Put(ctx context.Context, collection string, id int, doc interface{}) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"id": id}, doc, opts)
	return err
}

// NextID generates an id for a new top-level record as count of
// existing records plus one. Two near-simultaneous creations can
// collide on the same id; that is long-standing, documented behavior,
// not something to quietly replace with UUIDs.
func (s *Store) NextID(ctx context.Context, collection string) (int, error) {
	docs, err := s.FetchAll(ctx, collection)
	if err != nil {
		return 0, err
	}
	return len(docs) + 1, nil
}
