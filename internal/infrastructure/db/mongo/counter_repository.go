package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionCounters = "counters"

// CounterRepository keeps one document per named sequence.
type CounterRepository struct {
	col *mongo.Collection
}

func NewCounterRepository(db *mongo.Database) *CounterRepository {
	return &CounterRepository{col: db.Collection(collectionCounters)}
}

type counterDocument struct {
	Name  string `bson:"_id"`
	Value int64  `bson:"value"`
}

// Increment is a single upserting $inc, so concurrent callers never observe
// the same value.
func (r *CounterRepository) Increment(ctx context.Context, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc counterDocument
	err := r.col.FindOneAndUpdate(ctx, idFilter(name), bson.M{"$inc": bson.M{"value": int64(1)}}, opts).Decode(&doc)
	if err != nil {
		return 0, err
	}
	return doc.Value, nil
}
