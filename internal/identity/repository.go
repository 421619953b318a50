package identity

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const usersCollection = "users"

// Repository persists users. Exactly one record exists per phone number;
// CreateIfAbsent carries the uniqueness guarantee so concurrent first
// requests for the same phone cannot produce duplicates.
type Repository interface {
	// CreateIfAbsent inserts user unless a record for its phone already
	// exists, in which case the existing record is returned with created
	// set to false.
	CreateIfAbsent(ctx context.Context, user User) (User, bool, error)
	FindByPhone(ctx context.Context, phone string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	// Update applies the non-empty fields and refreshes last_login.
	Update(ctx context.Context, id string, fields UserUpdate) (User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	SetActiveOTP(ctx context.Context, id, code string) error
}

// MongoRepository implements Repository on a users collection.
type MongoRepository struct {
	col *mongo.Collection
}

// NewMongoRepository builds a Mongo-backed identity repository. The unique
// indexes back the one-record-per-phone invariant; index creation is
// idempotent and failures surface on the first conflicting write instead.
func NewMongoRepository(db *mongo.Database) *MongoRepository {
	col := db.Collection(usersCollection)
	_, _ = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return &MongoRepository{col: col}
}

func (r *MongoRepository) CreateIfAbsent(ctx context.Context, user User) (User, bool, error) {
	_, err := r.col.InsertOne(ctx, user)
	if err == nil {
		return user, true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return User{}, false, fmt.Errorf("insert user: %w", err)
	}
	existing, err := r.FindByPhone(ctx, user.Phone)
	if err != nil {
		return User{}, false, err
	}
	return existing, false, nil
}

func (r *MongoRepository) FindByPhone(ctx context.Context, phone string) (User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (User, error) {
	var user User
	err := r.col.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, fields UserUpdate) (User, error) {
	set := bson.M{"last_login": time.Now().UTC()}
	if fields.Name != "" {
		set["name"] = fields.Name
	}
	if fields.Email != "" {
		set["email"] = fields.Email
	}
	if fields.UserType != "" {
		set["user_type"] = fields.UserType
	}
	if fields.Avatar != "" {
		set["avatar"] = fields.Avatar
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := r.col.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts)

	var user User
	err := res.Decode(&user)
	if err == mongo.ErrNoDocuments {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (r *MongoRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.setFields(ctx, id, bson.M{"last_login": at})
}

func (r *MongoRepository) SetActiveOTP(ctx context.Context, id, code string) error {
	return r.setFields(ctx, id, bson.M{"active_otp": code})
}

func (r *MongoRepository) setFields(ctx context.Context, id string, set bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
