package lawyerRepo

import (
	"lexhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// LawyerRepository defines methods for lawyer data access.
type LawyerRepository interface {
	// GetByID retrieves a lawyer by its unique ID.
	GetByID(id string) (*models.Lawyer, error)
	// GetByUserID retrieves the lawyer profile owned by a platform user.
	GetByUserID(userID string) (*models.Lawyer, error)
	// Create inserts a new lawyer record.
	Create(lawyer *models.Lawyer) error
	// Update modifies an existing lawyer record.
	Update(lawyer *models.Lawyer) error
	// Delete removes a lawyer record by its ID.
	Delete(id string) error
	// Search returns lawyers matching the filters, best rated first.
	Search(filters models.LawyerSearchFilters) ([]models.Lawyer, error)
	// UpdateWithDocument patches a lawyer document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// SetAvailability replaces the lawyer's weekly schedule wholesale.
	SetAvailability(id string, availability []models.AvailabilityRule) error
	// SetRating overwrites the lawyer's cumulative rating.
	SetRating(id string, rating models.Rating) error
}
