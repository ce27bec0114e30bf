package lawyer

import (
	"context"
	"time"

	consultationRepo "lexhub/database/repository/consultation"
	lawyerRepo "lexhub/database/repository/lawyer"
	"lexhub/models"
	"lexhub/services/meeting"
	"lexhub/services/notification"
	"lexhub/services/payment"
)

// LawyerService manages lawyer profiles, availability and consultations.
type LawyerService interface {
	CreateProfile(userID string, data models.Lawyer) (*models.Lawyer, error)
	GetProfile(lawyerID string) (*models.Lawyer, error)
	UpdateProfile(lawyerID string, data models.Lawyer) (*models.Lawyer, error)
	SearchLawyers(filters models.LawyerSearchFilters) ([]models.Lawyer, error)
	UpdateAvailability(lawyerID string, availability []models.AvailabilityRule) (*models.Lawyer, error)

	// AvailableSlots returns the lawyer's free declared slots for the
	// calendar day of date, in declared order.
	AvailableSlots(lawyerID string, date time.Time) ([]models.Slot, error)

	CreateConsultation(ctx context.Context, clientID, lawyerID string, input models.CreateConsultationInput) (*models.Consultation, error)
	UpdateConsultationStatus(consultationID, status string) (*models.Consultation, error)
	JoinConsultation(ctx context.Context, consultationID, userID string) (*models.Consultation, *models.MeetingJoinDetails, error)
	EndConsultation(ctx context.Context, consultationID, userID string) (*models.Consultation, error)
	AddFeedback(consultationID, clientID string, input models.FeedbackInput) (*models.Consultation, error)
	PayConsultation(ctx context.Context, consultationID, clientID, method string) (*models.Consultation, *models.Invoice, error)
	GetConsultationHistory(userID string, filters models.ConsultationFilters) ([]models.Consultation, error)
}

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Repo          lawyerRepo.LawyerRepository
	Consultations consultationRepo.ConsultationRepository
	Meetings      meeting.MeetingService
	Payments      payment.PaymentHandler
	Notifier      notification.NotificationService
}
