package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrNotFound is returned by FindOne when no document matches the filter.
	ErrNotFound = errors.New("store: document not found")
	// ErrDuplicateKey is returned by InsertOne when a unique index rejects
	// the document.
	ErrDuplicateKey = errors.New("store: duplicate key")
)

// FindOptions carries the cursor modifiers supported by Find.
type FindOptions struct {
	Sort       bson.D
	Skip       int64
	Limit      int64
	Projection bson.M
}

// Store is the document-store client handed to each manager at construction.
// Documents are addressed by collection name; filters and updates use the
// bson operators understood by MongoDB ($set, $inc, $gt). Increments run as
// atomic document-level updates, never read-modify-write in the caller.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc interface{}) error
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error
	Find(ctx context.Context, collection string, filter bson.M, opts FindOptions, out interface{}) error
	UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error)
	DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error)
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
}
