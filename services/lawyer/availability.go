package lawyer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lexhub/config"
	lawyerRepo "lexhub/database/repository/lawyer"
	"lexhub/models"
)

// liveStatuses are the consultation statuses that block a slot.
var liveStatuses = []string{models.ConsultationPending, models.ConsultationConfirmed}

// parseClock converts an "HH:mm" wall-clock string to minutes past midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:mm", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// overlaps reports whether two half-open minute spans intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// dayName returns the lowercase weekday name of t in the configured zone.
func dayName(t time.Time) string {
	return strings.ToLower(t.In(config.Location).Weekday().String())
}

// minuteOfDay returns t's wall-clock offset in minutes in the configured zone.
func minuteOfDay(t time.Time) int {
	local := t.In(config.Location)
	return local.Hour()*60 + local.Minute()
}

// dayBounds returns the start and end of t's calendar day in the
// configured zone.
func dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(config.Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, config.Location)
	return start, start.Add(24 * time.Hour)
}

// ruleForDay finds the lawyer's declared slots for a weekday. A missing
// rule means no availability, not an error.
func ruleForDay(availability []models.AvailabilityRule, day string) []models.Slot {
	for _, rule := range availability {
		if strings.EqualFold(rule.Day, day) {
			return rule.Slots
		}
	}
	return nil
}

// AvailableSlots returns the lawyer's declared slots for the calendar day
// of date that are enabled and free of live consultations, preserving the
// order in which the lawyer declared them.
func (s *DefaultLawyerService) AvailableSlots(lawyerID string, date time.Time) ([]models.Slot, error) {
	lw, err := s.Repo.GetByID(lawyerID)
	if err != nil {
		if errors.Is(err, lawyerRepo.ErrNotFound) {
			return nil, NotFoundError{Resource: "lawyer"}
		}
		return nil, fmt.Errorf("failed to load lawyer %s: %w", lawyerID, err)
	}

	free, _, err := s.freeSlotsOnDay(lw, date)
	return free, err
}

// freeSlotsOnDay computes the lawyer's open slots for date's calendar day
// together with the live consultations booked on it. A declared slot that
// any live consultation touches is withheld whole; booking validation and
// AvailableSlots both go through here so they agree on what is open.
func (s *DefaultLawyerService) freeSlotsOnDay(lw *models.Lawyer, date time.Time) ([]models.Slot, []models.Consultation, error) {
	declared := ruleForDay(lw.Availability, dayName(date))
	if len(declared) == 0 {
		return []models.Slot{}, nil, nil
	}

	dayStart, dayEnd := dayBounds(date)
	booked, err := s.Consultations.ListForLawyerOnDay(lw.ID, dayStart, dayEnd, liveStatuses)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load bookings for lawyer %s: %w", lw.ID, err)
	}

	free := make([]models.Slot, 0, len(declared))
	for _, slot := range declared {
		if !slot.IsAvailable {
			continue
		}
		start, err := parseClock(slot.StartTime)
		if err != nil {
			return nil, nil, fmt.Errorf("malformed slot for lawyer %s: %w", lw.ID, err)
		}
		end, err := parseClock(slot.EndTime)
		if err != nil {
			return nil, nil, fmt.Errorf("malformed slot for lawyer %s: %w", lw.ID, err)
		}

		taken := false
		for _, c := range booked {
			bStart := minuteOfDay(c.ScheduledAt)
			if overlaps(start, end, bStart, bStart+c.Duration) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, slot)
		}
	}
	return free, booked, nil
}

// slotCovering returns the enabled declared slot whose span contains the
// wall-clock minute t, or false when none does.
func slotCovering(declared []models.Slot, t int) (models.Slot, bool) {
	for _, slot := range declared {
		if !slot.IsAvailable {
			continue
		}
		start, err := parseClock(slot.StartTime)
		if err != nil {
			continue
		}
		end, err := parseClock(slot.EndTime)
		if err != nil {
			continue
		}
		if start <= t && t < end {
			return slot, true
		}
	}
	return models.Slot{}, false
}
