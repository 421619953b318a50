package sequence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// MongoAllocator implements Allocator on a counters collection. Each id
// space is a single document keyed by the space name; the increment relies
// on FindOneAndUpdate being atomic on the server, with the upsert creating
// the counter on first use.
type MongoAllocator struct {
	col *mongo.Collection
}

// NewMongoAllocator builds a Mongo-backed sequence allocator.
func NewMongoAllocator(db *mongo.Database) *MongoAllocator {
	return &MongoAllocator{col: db.Collection(countersCollection)}
}

// Next atomically increments the counter for space and returns the new value.
func (a *MongoAllocator) Next(ctx context.Context, space string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	res := a.col.FindOneAndUpdate(ctx,
		bson.M{"_id": space},
		bson.M{"$inc": bson.M{"sequence_value": int64(1)}},
		opts,
	)

	var counter struct {
		SequenceValue int64 `bson:"sequence_value"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", space, err)
	}

	return counter.SequenceValue, nil
}
