package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo implements Store on a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Name() string {
	return m.db.Name()
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func (q Query) filter() bson.M {
	if q.Term == "" {
		return bson.M{}
	}
	or := make([]bson.M, 0, len(q.Fields))
	for _, f := range q.Fields {
		or = append(or, bson.M{f: bson.M{"$regex": regexp.QuoteMeta(q.Term), "$options": "i"}})
	}
	return bson.M{"$or": or}
}

func (m *Mongo) Create(ctx context.Context, collection string, doc any) (string, error) {
	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

func (m *Mongo) Find(ctx context.Context, collection string, q Query, out any) error {
	cursor, err := m.db.Collection(collection).Find(ctx, q.filter())
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	return cursor.All(ctx, out)
}

func (m *Mongo) FindByID(ctx context.Context, collection, id string, out any) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	err = m.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Delete(ctx context.Context, collection, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", collection, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementGuarded relies on MongoDB's single-document atomicity: the guard
// and the $inc are one operation, so concurrent decrements cannot oversell.
func (m *Mongo) DecrementGuarded(ctx context.Context, collection, id, field string, by int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": oid, field: bson.M{"$gte": by}},
		bson.M{"$inc": bson.M{field: -by}},
	)
	if err != nil {
		return fmt.Errorf("decrement %s.%s: %w", collection, field, err)
	}
	if res.MatchedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}

func (m *Mongo) IncrementField(ctx context.Context, collection, id, field string, by int) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := m.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{field: by}},
	)
	if err != nil {
		return fmt.Errorf("increment %s.%s: %w", collection, field, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Count(ctx context.Context, collection string) (int64, error) {
	return m.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}
