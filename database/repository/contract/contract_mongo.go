package contractRepo

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

// ErrNotFound is returned when no contract matches the query.
var ErrNotFound = errors.New("contract not found")

// MongoContractRepo implements ContractRepository using MongoDB.
type MongoContractRepo struct {
	coll *mongo.Collection
}

// NewMongoContractRepo creates a new instance of ContractRepository using MongoDB.
func NewMongoContractRepo() ContractRepository {
	coll := database.Collection("contracts")
	return &MongoContractRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoContractRepo) GetByID(id string) (*models.Contract, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var contract models.Contract
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&contract); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch contract with id %s: %w", id, err)
	}
	return &contract, nil
}

func (r *MongoContractRepo) Create(contract *models.Contract) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, contract); err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return nil
}

func (r *MongoContractRepo) Update(contract *models.Contract) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": contract.ID}, bson.M{"$set": contract})
	if err != nil {
		return fmt.Errorf("failed to update contract with id %s: %w", contract.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoContractRepo) Delete(id, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "userId": userID})
	if err != nil {
		return fmt.Errorf("failed to delete contract with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoContractRepo) ListForUser(userID string, page, limit int, sortBy string, descending bool) (*models.ContractPage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := 1
	if descending {
		order = -1
	}

	filter := bson.M{"userId": userID}
	opts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: order}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var contracts []models.Contract
	if err := cursor.All(ctx, &contracts); err != nil {
		return nil, fmt.Errorf("failed to decode contracts: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count contracts: %w", err)
	}

	pages := int((total + int64(limit) - 1) / int64(limit))
	return &models.ContractPage{
		Contracts: contracts,
		Pagination: models.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
			Pages: pages,
		},
	}, nil
}
