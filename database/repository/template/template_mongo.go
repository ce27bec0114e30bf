package templateRepo

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

// ErrNotFound is returned when no template matches the query.
var ErrNotFound = errors.New("template not found")

// MongoTemplateRepo implements TemplateRepository using MongoDB.
type MongoTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoTemplateRepo creates a new instance of TemplateRepository using MongoDB.
func NewMongoTemplateRepo() TemplateRepository {
	coll := database.Collection("templates")
	return &MongoTemplateRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoTemplateRepo) GetByID(id string) (*models.Template, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var tpl models.Template
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tpl); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch template with id %s: %w", id, err)
	}
	return &tpl, nil
}

func (r *MongoTemplateRepo) Create(t *models.Template) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

func (r *MongoTemplateRepo) Update(t *models.Template) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update template with id %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTemplateRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete template with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTemplateRepo) Search(query string, limit int) ([]models.Template, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 10
	}
	filter := bson.M{"$or": []bson.M{
		{"title": bson.M{"$regex": query, "$options": "i"}},
		{"description": bson.M{"$regex": query, "$options": "i"}},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	return r.find(ctx, filter, opts)
}

func (r *MongoTemplateRepo) GetByCategory(category string) ([]models.Template, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"category": category}, opts)
}

func (r *MongoTemplateRepo) GetByIndustry(industry string) ([]models.Template, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{"industry": industry}, opts)
}

func (r *MongoTemplateRepo) GetPopular(limit int) ([]models.Template, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "reviews.rating", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *MongoTemplateRepo) AddReview(id string, review models.TemplateReview) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add review to template %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoTemplateRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Template, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("template query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.Template
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}
	return templates, nil
}
