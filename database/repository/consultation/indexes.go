package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"lexhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates indexes for frequently used fields in queries.
// The partial unique index on (lawyerId, scheduledAt) only covers live
// consultations, which makes check-then-insert booking safe: the second
// concurrent writer for the same slot hits a duplicate-key error.
func (r *MongoConsultationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	liveOnly := options.Index().
		SetUnique(true).
		SetPartialFilterExpression(bson.M{
			"status": bson.M{"$in": []string{models.ConsultationPending, models.ConsultationConfirmed}},
		})

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "lawyerId", Value: 1}, {Key: "scheduledAt", Value: 1}}, Options: liveOnly},
		{Keys: bson.D{{Key: "clientId", Value: 1}, {Key: "scheduledAt", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "scheduledAt", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create consultation indexes: %w", err)
	}
	return nil
}
