package consultationRepo

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

var (
	// ErrNotFound is returned when no consultation matches the query.
	ErrNotFound = errors.New("consultation not found")
	// ErrSlotTaken is returned when another live consultation already
	// occupies the same (lawyer, scheduledAt) pair.
	ErrSlotTaken = errors.New("consultation slot already taken")
)

// MongoConsultationRepo implements ConsultationRepository using MongoDB.
type MongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo creates a new instance of ConsultationRepository using MongoDB.
func NewMongoConsultationRepo() ConsultationRepository {
	coll := database.Collection("consultations")
	return &MongoConsultationRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var consultation models.Consultation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch consultation with id %s: %w", id, err)
	}
	return &consultation, nil
}

func (r *MongoConsultationRepo) Create(consultation *models.Consultation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, consultation)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

func (r *MongoConsultationRepo) Update(consultation *models.Consultation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"id": consultation.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": consultation})
	if err != nil {
		return fmt.Errorf("failed to update consultation with id %s: %w", consultation.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoConsultationRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update consultation with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoConsultationRepo) ListForLawyerOnDay(lawyerID string, dayStart, dayEnd time.Time, statuses []string) ([]models.Consultation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"lawyerId":    lawyerID,
		"scheduledAt": bson.M{"$gte": dayStart, "$lt": dayEnd},
	}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations for lawyer %s: %w", lawyerID, err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	return consultations, nil
}

func (r *MongoConsultationRepo) ListForClient(clientID string, filters models.ConsultationFilters) ([]models.Consultation, error) {
	return r.list(bson.M{"clientId": clientID}, filters)
}

func (r *MongoConsultationRepo) ListForLawyer(lawyerID string, filters models.ConsultationFilters) ([]models.Consultation, error) {
	return r.list(bson.M{"lawyerId": lawyerID}, filters)
}

func (r *MongoConsultationRepo) list(filter bson.M, filters models.ConsultationFilters) ([]models.Consultation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if filters.Status != "" {
		filter["status"] = filters.Status
	}
	if filters.Type != "" {
		filter["type"] = filters.Type
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	return consultations, nil
}

func (r *MongoConsultationRepo) ListStartingBetween(from, to time.Time) ([]models.Consultation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":      models.ConsultationConfirmed,
		"scheduledAt": bson.M{"$gte": from, "$lt": to},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, fmt.Errorf("failed to decode consultations: %w", err)
	}
	return consultations, nil
}
