package clauseRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lexhub/database"
	"lexhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no clause matches the query.
var ErrNotFound = errors.New("clause not found")

// MongoClauseRepo implements ClauseRepository using MongoDB.
type MongoClauseRepo struct {
	coll *mongo.Collection
}

// NewMongoClauseRepo creates a new instance of ClauseRepository using MongoDB.
func NewMongoClauseRepo() ClauseRepository {
	coll := database.Collection("clauses")
	return &MongoClauseRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoClauseRepo) GetByID(id string) (*models.Clause, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var clause models.Clause
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&clause); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch clause with id %s: %w", id, err)
	}
	return &clause, nil
}

func (r *MongoClauseRepo) Create(clause *models.Clause) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, clause); err != nil {
		return fmt.Errorf("failed to create clause: %w", err)
	}
	return nil
}

func (r *MongoClauseRepo) Update(clause *models.Clause) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": clause.ID}, bson.M{"$set": clause})
	if err != nil {
		return fmt.Errorf("failed to update clause with id %s: %w", clause.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoClauseRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete clause with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoClauseRepo) Search(query string, limit int) ([]models.Clause, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 5
	}
	filter := bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": query, "$options": "i"}},
		{"content": bson.M{"$regex": query, "$options": "i"}},
		{"keywords": bson.M{"$regex": query, "$options": "i"}},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "isMustHave", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	return r.find(ctx, filter, opts)
}

func (r *MongoClauseRepo) GetByCategory(category string) ([]models.Clause, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "isMustHave", Value: -1}, {Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"category": category}, opts)
}

func (r *MongoClauseRepo) GetMustHave(contractType string) ([]models.Clause, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"isMustHave": true, "contractTypes": contractType}
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *MongoClauseRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Clause, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("clause query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var clauses []models.Clause
	if err := cursor.All(ctx, &clauses); err != nil {
		return nil, fmt.Errorf("failed to decode clauses: %w", err)
	}
	return clauses, nil
}
