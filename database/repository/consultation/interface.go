package consultationRepo

import (
	"time"

	"lexhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ConsultationRepository defines methods for consultation data access.
type ConsultationRepository interface {
	// GetByID retrieves a consultation by its unique ID.
	GetByID(id string) (*models.Consultation, error)
	// Create inserts a new consultation. The collection carries a unique
	// index on (lawyerId, scheduledAt) over live consultations, so the
	// second of two concurrent writers for the same slot fails with
	// ErrSlotTaken.
	Create(consultation *models.Consultation) error
	// Update overwrites an existing consultation record.
	Update(consultation *models.Consultation) error
	// UpdateWithDocument patches a consultation with the given update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// ListForLawyerOnDay returns the lawyer's consultations scheduled
	// within [dayStart, dayEnd) holding one of the given statuses.
	ListForLawyerOnDay(lawyerID string, dayStart, dayEnd time.Time, statuses []string) ([]models.Consultation, error)
	// ListForClient returns the client's consultations, newest first.
	ListForClient(clientID string, filters models.ConsultationFilters) ([]models.Consultation, error)
	// ListForLawyer returns the lawyer's consultations, newest first.
	ListForLawyer(lawyerID string, filters models.ConsultationFilters) ([]models.Consultation, error)
	// ListStartingBetween returns confirmed consultations scheduled in
	// [from, to), used by the reminder worker.
	ListStartingBetween(from, to time.Time) ([]models.Consultation, error)
}
