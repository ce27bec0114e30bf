package lawyer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lexhub/config"
	consultationRepo "lexhub/database/repository/consultation"
	lawyerRepo "lexhub/database/repository/lawyer"
	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// joinWindow is how far from the scheduled start a participant may join.
const joinWindow = 15 * time.Minute

func validConsultationType(t string) bool {
	switch t {
	case models.ModeVideo, models.ModeChat, models.ModeDocumentReview, models.ModeDocumentDrafting:
		return true
	}
	return false
}

func needsMeeting(t string) bool {
	return t == models.ModeVideo || t == models.ModeChat
}

// CreateConsultation books a consultation with a lawyer. The requested
// time must fall inside one of the slots AvailableSlots would return for
// that day; a declared slot already touched by a live booking is closed
// in its entirety. The collection's unique index settles races between
// concurrent writers for the same slot.
func (s *DefaultLawyerService) CreateConsultation(ctx context.Context, clientID, lawyerID string, input models.CreateConsultationInput) (*models.Consultation, error) {
	if !validConsultationType(input.Type) {
		return nil, BadRequestError{Reason: fmt.Sprintf("unknown consultation type %q", input.Type)}
	}
	if input.Duration <= 0 {
		return nil, BadRequestError{Reason: "duration must be positive"}
	}
	if input.ScheduledAt.Before(time.Now()) {
		return nil, BadRequestError{Reason: "scheduled time is in the past"}
	}

	lw, err := s.Repo.GetByID(lawyerID)
	if err != nil {
		if errors.Is(err, lawyerRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "lawyer"}
		}
		return nil, fmt.Errorf("failed to load lawyer %s: %w", lawyerID, err)
	}

	hourlyRate, offered := lw.ModePrice(input.Type)
	if !offered {
		return nil, NotFoundError{Resource: fmt.Sprintf("%s consultation mode", input.Type)}
	}

	free, booked, err := s.freeSlotsOnDay(lw, input.ScheduledAt)
	if err != nil {
		return nil, err
	}
	start := minuteOfDay(input.ScheduledAt)
	if _, ok := slotCovering(free, start); !ok {
		return nil, ConflictError{Reason: "the requested time is not in an available slot"}
	}
	for _, c := range booked {
		bStart := minuteOfDay(c.ScheduledAt)
		if overlaps(start, start+input.Duration, bStart, bStart+c.Duration) {
			return nil, ConflictError{Reason: "the requested slot is already booked"}
		}
	}

	now := time.Now()
	consultation := &models.Consultation{
		ID:          uuid.New().String(),
		LawyerID:    lawyerID,
		ClientID:    clientID,
		Type:        input.Type,
		Status:      models.ConsultationPending,
		ScheduledAt: input.ScheduledAt,
		Duration:    input.Duration,
		Price:       hourlyRate * float64(input.Duration) / 60,
		Payment: models.ConsultationPayment{
			Status:   "pending",
			Amount:   hourlyRate * float64(input.Duration) / 60,
			Currency: config.AppConfig.DefaultCurrency,
		},
		DocumentID: input.DocumentID,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if needsMeeting(input.Type) {
		meeting, err := s.Meetings.CreateMeeting(ctx, fmt.Sprintf("Consultation with %s", lw.Name), input.ScheduledAt, input.Duration)
		if err != nil {
			return nil, fmt.Errorf("failed to provision meeting: %w", err)
		}
		consultation.MeetingID = meeting.MeetingID
		consultation.MeetingLink = meeting.MeetingLink
	}

	if err := s.Consultations.Create(consultation); err != nil {
		if errors.Is(err, consultationRepo.ErrSlotTaken) {
			return nil, ConflictError{Reason: "the requested slot is already booked"}
		}
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}

	utils.GetLogger().Info("Consultation booked",
		zap.String("consultationID", consultation.ID),
		zap.String("lawyerID", lawyerID),
		zap.String("type", input.Type))

	if s.Notifier != nil && lw.Email != "" {
		go func(email string, c models.Consultation, name string) {
			if err := s.Notifier.SendConsultationBooked(email, &c, name); err != nil {
				utils.GetLogger().Warn("Failed to send booking email", zap.Error(err))
			}
		}(lw.Email, *consultation, lw.Name)
	}

	return consultation, nil
}

// UpdateConsultationStatus moves a consultation along the legal status
// transition table. Illegal moves, including any move out of a terminal
// status, are rejected.
func (s *DefaultLawyerService) UpdateConsultationStatus(consultationID, status string) (*models.Consultation, error) {
	if !models.ValidConsultationStatus(status) {
		return nil, BadRequestError{Reason: fmt.Sprintf("unknown status %q", status)}
	}

	c, err := s.Consultations.GetByID(consultationID)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "consultation"}
		}
		return nil, fmt.Errorf("failed to load consultation %s: %w", consultationID, err)
	}

	if !models.CanTransition(c.Status, status) {
		return nil, ConflictError{Reason: fmt.Sprintf("cannot move consultation from %s to %s", c.Status, status)}
	}

	c.Status = status
	c.UpdatedAt = time.Now()
	if status == models.ConsultationCompleted {
		now := time.Now()
		c.CompletedAt = &now
	}
	if err := s.Consultations.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update consultation %s: %w", consultationID, err)
	}
	return c, nil
}

// resolveRole reports how userID relates to the consultation.
func (s *DefaultLawyerService) resolveRole(c *models.Consultation, userID string) (isClient, isLawyer bool) {
	if c.ClientID == userID {
		isClient = true
	}
	if lw, err := s.Repo.GetByID(c.LawyerID); err == nil && lw.UserID == userID {
		isLawyer = true
	}
	return
}

// JoinConsultation admits a party to a confirmed consultation's meeting.
// Joining is allowed within fifteen minutes either side of the scheduled
// start.
func (s *DefaultLawyerService) JoinConsultation(ctx context.Context, consultationID, userID string) (*models.Consultation, *models.MeetingJoinDetails, error) {
	c, err := s.Consultations.GetByID(consultationID)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, nil, NotFoundError{Resource: "consultation"}
		}
		return nil, nil, fmt.Errorf("failed to load consultation %s: %w", consultationID, err)
	}

	isClient, isLawyer := s.resolveRole(c, userID)
	if !isClient && !isLawyer {
		return nil, nil, ForbiddenError{Reason: "you are not a party to this consultation"}
	}
	if c.Status != models.ConsultationConfirmed {
		return nil, nil, BadRequestError{Reason: fmt.Sprintf("consultation is %s, not confirmed", c.Status)}
	}

	offset := time.Since(c.ScheduledAt)
	if offset < -joinWindow || offset > joinWindow {
		return nil, nil, BadRequestError{Reason: "consultation can only be joined within 15 minutes of the scheduled time"}
	}

	if c.MeetingID == "" {
		return nil, nil, BadRequestError{Reason: "this consultation type has no meeting"}
	}

	details, err := s.Meetings.JoinMeeting(ctx, c.MeetingID, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to join meeting for consultation %s: %w", consultationID, err)
	}
	return c, details, nil
}

// EndConsultation completes a confirmed consultation. Only the lawyer may
// end it. Ending an already completed consultation is rejected.
func (s *DefaultLawyerService) EndConsultation(ctx context.Context, consultationID, userID string) (*models.Consultation, error) {
	c, err := s.Consultations.GetByID(consultationID)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "consultation"}
		}
		return nil, fmt.Errorf("failed to load consultation %s: %w", consultationID, err)
	}

	_, isLawyer := s.resolveRole(c, userID)
	if !isLawyer {
		return nil, ForbiddenError{Reason: "only the lawyer can end a consultation"}
	}
	if !models.CanTransition(c.Status, models.ConsultationCompleted) {
		return nil, ConflictError{Reason: fmt.Sprintf("cannot end a %s consultation", c.Status)}
	}

	if c.MeetingID != "" {
		if err := s.Meetings.EndMeeting(ctx, c.MeetingID); err != nil {
			// The meeting expires on its own; completion still proceeds.
			utils.GetLogger().Warn("Failed to terminate meeting",
				zap.String("meetingID", c.MeetingID), zap.Error(err))
		}
	}

	now := time.Now()
	c.Status = models.ConsultationCompleted
	c.CompletedAt = &now
	c.UpdatedAt = now
	if err := s.Consultations.Update(c); err != nil {
		return nil, fmt.Errorf("failed to complete consultation %s: %w", consultationID, err)
	}

	if err := s.Repo.UpdateWithDocument(c.LawyerID, bson.M{
		"$inc": bson.M{"earnings.total": c.Price, "earnings.pending": c.Price},
	}); err != nil {
		utils.GetLogger().Warn("Failed to credit lawyer earnings",
			zap.String("lawyerID", c.LawyerID), zap.Error(err))
	}

	utils.GetLogger().Info("Consultation completed", zap.String("consultationID", c.ID))
	return c, nil
}

// AddFeedback records the client's one-time rating of a completed
// consultation and folds it into the lawyer's cumulative average.
func (s *DefaultLawyerService) AddFeedback(consultationID, clientID string, input models.FeedbackInput) (*models.Consultation, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, BadRequestError{Reason: "rating must be between 1 and 5"}
	}

	c, err := s.Consultations.GetByID(consultationID)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "consultation"}
		}
		return nil, fmt.Errorf("failed to load consultation %s: %w", consultationID, err)
	}

	if c.ClientID != clientID {
		return nil, ForbiddenError{Reason: "only the client can leave feedback"}
	}
	if c.Status != models.ConsultationCompleted {
		return nil, ConflictError{Reason: "feedback is only accepted after completion"}
	}
	if c.Feedback != nil {
		return nil, ConflictError{Reason: "feedback has already been submitted"}
	}

	c.Feedback = &models.Feedback{
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	c.UpdatedAt = time.Now()
	if err := s.Consultations.Update(c); err != nil {
		return nil, fmt.Errorf("failed to save feedback for consultation %s: %w", consultationID, err)
	}

	lw, err := s.Repo.GetByID(c.LawyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lawyer %s: %w", c.LawyerID, err)
	}
	updated := models.Rating{
		Average: (lw.Rating.Average*float64(lw.Rating.Count) + float64(input.Rating)) / float64(lw.Rating.Count+1),
		Count:   lw.Rating.Count + 1,
	}
	if err := s.Repo.SetRating(lw.ID, updated); err != nil {
		return nil, fmt.Errorf("failed to update rating for lawyer %s: %w", lw.ID, err)
	}

	return c, nil
}

// PayConsultation settles the consultation fee. A successful card charge
// confirms the booking immediately; cash keeps the invoice pending but
// still confirms.
func (s *DefaultLawyerService) PayConsultation(ctx context.Context, consultationID, clientID, method string) (*models.Consultation, *models.Invoice, error) {
	c, err := s.Consultations.GetByID(consultationID)
	if err != nil {
		if errors.Is(err, consultationRepo.ErrNotFound) {
			return nil, nil, NotFoundError{Resource: "consultation"}
		}
		return nil, nil, fmt.Errorf("failed to load consultation %s: %w", consultationID, err)
	}

	if c.ClientID != clientID {
		return nil, nil, ForbiddenError{Reason: "only the client can pay for a consultation"}
	}
	if c.Payment.Status == "completed" {
		return nil, nil, ConflictError{Reason: "consultation has already been paid"}
	}
	if c.IsTerminal() {
		return nil, nil, ConflictError{Reason: fmt.Sprintf("cannot pay for a %s consultation", c.Status)}
	}

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:      clientID,
		Amount:      c.Price,
		Method:      method,
		Currency:    c.Payment.Currency,
		Description: fmt.Sprintf("Legal consultation %s", c.ID),
		Metadata:    map[string]string{"consultationId": c.ID, "lawyerId": c.LawyerID},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("payment failed for consultation %s: %w", consultationID, err)
	}

	now := time.Now()
	if invoice.Status == "paid" {
		c.Payment.Status = "completed"
		c.Payment.TransactionID = invoice.PaymentID
		c.Payment.PaidAt = &now
	}
	if models.CanTransition(c.Status, models.ConsultationConfirmed) {
		c.Status = models.ConsultationConfirmed
	}
	c.UpdatedAt = now
	if err := s.Consultations.Update(c); err != nil {
		return nil, nil, fmt.Errorf("failed to update consultation %s after payment: %w", consultationID, err)
	}

	return c, invoice, nil
}

// GetConsultationHistory lists consultations for a user, on either side
// of the table. Lawyers see their booked calendar, clients their own
// bookings.
func (s *DefaultLawyerService) GetConsultationHistory(userID string, filters models.ConsultationFilters) ([]models.Consultation, error) {
	if filters.Status != "" && !models.ValidConsultationStatus(filters.Status) {
		return nil, BadRequestError{Reason: fmt.Sprintf("unknown status %q", filters.Status)}
	}

	if lw, err := s.Repo.GetByUserID(userID); err == nil {
		return s.Consultations.ListForLawyer(lw.ID, filters)
	} else if !errors.Is(err, lawyerRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	return s.Consultations.ListForClient(userID, filters)
}
