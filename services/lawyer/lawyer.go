package lawyer

import (
	"errors"
	"fmt"
	"time"

	lawyerRepo "lexhub/database/repository/lawyer"
	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateProfile registers a lawyer profile for a platform user. A user
// may hold at most one profile.
func (s *DefaultLawyerService) CreateProfile(userID string, data models.Lawyer) (*models.Lawyer, error) {
	if _, err := s.Repo.GetByUserID(userID); err == nil {
		return nil, ConflictError{Reason: "lawyer profile already exists for this user"}
	} else if !errors.Is(err, lawyerRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	if data.BarCouncilNumber == "" {
		return nil, BadRequestError{Reason: "bar council number is required"}
	}
	if len(data.ConsultationModes) == 0 {
		return nil, BadRequestError{Reason: "at least one consultation mode is required"}
	}
	if err := validateAvailability(data.Availability); err != nil {
		return nil, BadRequestError{Reason: err.Error()}
	}

	now := time.Now()
	data.ID = uuid.New().String()
	data.UserID = userID
	data.Status = "active"
	data.IsVerified = false
	data.Rating = models.Rating{}
	data.Earnings = models.Earnings{}
	data.CreatedAt = now
	data.UpdatedAt = now

	if err := s.Repo.Create(&data); err != nil {
		return nil, fmt.Errorf("failed to create lawyer profile: %w", err)
	}
	utils.GetLogger().Info("Lawyer profile created",
		zap.String("lawyerID", data.ID), zap.String("userID", userID))
	return &data, nil
}

func (s *DefaultLawyerService) GetProfile(lawyerID string) (*models.Lawyer, error) {
	lw, err := s.Repo.GetByID(lawyerID)
	if err != nil {
		if errors.Is(err, lawyerRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "lawyer"}
		}
		return nil, fmt.Errorf("failed to fetch lawyer %s: %w", lawyerID, err)
	}
	return lw, nil
}

// UpdateProfile applies profile edits. Identity and moderation fields are
// preserved from the stored record.
func (s *DefaultLawyerService) UpdateProfile(lawyerID string, data models.Lawyer) (*models.Lawyer, error) {
	existing, err := s.Repo.GetByID(lawyerID)
	if err != nil {
		if errors.Is(err, lawyerRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "lawyer"}
		}
		return nil, fmt.Errorf("failed to fetch lawyer %s: %w", lawyerID, err)
	}

	if err := validateAvailability(data.Availability); err != nil {
		return nil, BadRequestError{Reason: err.Error()}
	}

	data.ID = existing.ID
	data.UserID = existing.UserID
	data.Rating = existing.Rating
	data.Earnings = existing.Earnings
	data.Status = existing.Status
	data.IsVerified = existing.IsVerified
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now()

	if err := s.Repo.Update(&data); err != nil {
		return nil, fmt.Errorf("failed to update lawyer %s: %w", lawyerID, err)
	}
	return &data, nil
}

func (s *DefaultLawyerService) SearchLawyers(filters models.LawyerSearchFilters) ([]models.Lawyer, error) {
	lawyers, err := s.Repo.Search(filters)
	if err != nil {
		return nil, fmt.Errorf("lawyer search failed: %w", err)
	}
	return lawyers, nil
}

// UpdateAvailability replaces the lawyer's weekly schedule wholesale.
func (s *DefaultLawyerService) UpdateAvailability(lawyerID string, availability []models.AvailabilityRule) (*models.Lawyer, error) {
	if err := validateAvailability(availability); err != nil {
		return nil, BadRequestError{Reason: err.Error()}
	}

	if err := s.Repo.SetAvailability(lawyerID, availability); err != nil {
		if errors.Is(err, lawyerRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "lawyer"}
		}
		return nil, fmt.Errorf("failed to update availability for lawyer %s: %w", lawyerID, err)
	}
	utils.GetLogger().Info("Availability updated", zap.String("lawyerID", lawyerID))
	return s.GetProfile(lawyerID)
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// validateAvailability rejects unknown day names, malformed clock strings
// and inverted slots before they reach storage.
func validateAvailability(availability []models.AvailabilityRule) error {
	for _, rule := range availability {
		if !weekdays[rule.Day] {
			return fmt.Errorf("unknown day %q", rule.Day)
		}
		for _, slot := range rule.Slots {
			start, err := parseClock(slot.StartTime)
			if err != nil {
				return err
			}
			end, err := parseClock(slot.EndTime)
			if err != nil {
				return err
			}
			if start >= end {
				return fmt.Errorf("slot %s-%s on %s ends before it starts", slot.StartTime, slot.EndTime, rule.Day)
			}
		}
	}
	return nil
}
