package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound indicates the requested catalog document is not stored.
var ErrNotFound = errors.New("catalog record not found")

const (
	transactionsCollection = "transactions"
	gamesCollection        = "games"
)

// Repository reads the stored catalog documents. Each collection holds a
// single document in this revision; the read is a plain passthrough.
type Repository interface {
	TransactionHistory(ctx context.Context) (TransactionHistory, error)
	Game(ctx context.Context) (Game, error)
}

// MongoRepository implements Repository on the catalog collections.
type MongoRepository struct {
	transactions *mongo.Collection
	games        *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed catalog repository.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		transactions: db.Collection(transactionsCollection),
		games:        db.Collection(gamesCollection),
	}
}

func (r *MongoRepository) TransactionHistory(ctx context.Context) (TransactionHistory, error) {
	var history TransactionHistory
	err := r.transactions.FindOne(ctx, bson.D{}).Decode(&history)
	if err == mongo.ErrNoDocuments {
		return TransactionHistory{}, ErrNotFound
	}
	if err != nil {
		return TransactionHistory{}, fmt.Errorf("find transaction history: %w", err)
	}
	return history, nil
}

func (r *MongoRepository) Game(ctx context.Context) (Game, error) {
	var game Game
	err := r.games.FindOne(ctx, bson.D{}).Decode(&game)
	if err == mongo.ErrNoDocuments {
		return Game{}, ErrNotFound
	}
	if err != nil {
		return Game{}, fmt.Errorf("find game: %w", err)
	}
	return game, nil
}
