package lawyerRepo

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

// ErrNotFound is returned when no lawyer matches the query.
var ErrNotFound = errors.New("lawyer not found")

// MongoLawyerRepo implements LawyerRepository using MongoDB.
type MongoLawyerRepo struct {
	coll *mongo.Collection
}

// NewMongoLawyerRepo creates a new instance of LawyerRepository using MongoDB.
func NewMongoLawyerRepo() LawyerRepository {
	coll := database.Collection("lawyers")
	return &MongoLawyerRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoLawyerRepo) GetByID(id string) (*models.Lawyer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var lawyer models.Lawyer
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&lawyer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lawyer with id %s: %w", id, err)
	}
	return &lawyer, nil
}

func (r *MongoLawyerRepo) GetByUserID(userID string) (*models.Lawyer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var lawyer models.Lawyer
	filter := bson.M{"userId": userID}
	if err := r.coll.FindOne(ctx, filter).Decode(&lawyer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch lawyer for user %s: %w", userID, err)
	}
	return &lawyer, nil
}

func (r *MongoLawyerRepo) Create(lawyer *models.Lawyer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, lawyer)
	if err != nil {
		return fmt.Errorf("failed to create lawyer: %w", err)
	}
	return nil
}

func (r *MongoLawyerRepo) Update(lawyer *models.Lawyer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": lawyer.ID}
	update := bson.M{"$set": lawyer}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update lawyer with id %s: %w", lawyer.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLawyerRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete lawyer with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Search returns active lawyers matching the filters, sorted by rating descending.
func (r *MongoLawyerRepo) Search(filters models.LawyerSearchFilters) ([]models.Lawyer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"status": "active"}
	if len(filters.Specialization) > 0 {
		filter["specialization"] = bson.M{"$in": filters.Specialization}
	}
	if filters.StateOfPractice != "" {
		filter["stateOfPractice"] = filters.StateOfPractice
	}
	if filters.MinRating > 0 {
		filter["rating.average"] = bson.M{"$gte": filters.MinRating}
	}
	if filters.VerifiedOnly {
		filter["isVerified"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "rating.average", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("lawyer search query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var lawyers []models.Lawyer
	if err := cursor.All(ctx, &lawyers); err != nil {
		return nil, fmt.Errorf("failed to decode lawyers: %w", err)
	}
	return lawyers, nil
}

// UpdateWithDocument updates a lawyer using a custom update document.
func (r *MongoLawyerRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update lawyer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoLawyerRepo) SetAvailability(id string, availability []models.AvailabilityRule) error {
	return r.UpdateWithDocument(id, bson.M{"$set": bson.M{
		"availability": availability,
		"updatedAt":    time.Now(),
	}})
}

func (r *MongoLawyerRepo) SetRating(id string, rating models.Rating) error {
	return r.UpdateWithDocument(id, bson.M{"$set": bson.M{
		"rating":    rating,
		"updatedAt": time.Now(),
	}})
}
