package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store on top of a *mongo.Database.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc interface{}) error {
	_, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (m *Mongo) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Find(ctx context.Context, collection string, filter bson.M, opts FindOptions, out interface{}) error {
	fo := options.Find()
	if opts.Sort != nil {
		fo.SetSort(opts.Sort)
	}
	if opts.Skip > 0 {
		fo.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		fo.SetLimit(opts.Limit)
	}
	if opts.Projection != nil {
		fo.SetProjection(opts.Projection)
	}
	cursor, err := m.db.Collection(collection).Find(ctx, filter, fo)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (m *Mongo) UpdateOne(ctx context.Context, collection string, filter, update bson.M) (int64, error) {
	res, err := m.db.Collection(collection).UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (m *Mongo) DeleteOne(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := m.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *Mongo) DeleteMany(ctx context.Context, collection string, filter bson.M) (int64, error) {
	res, err := m.db.Collection(collection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *Mongo) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	return m.db.Collection(collection).CountDocuments(ctx, filter)
}
