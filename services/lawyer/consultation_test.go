package lawyer

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"lexhub/models"
)

func TestCreateConsultationPricesByModeAndDuration(t *testing.T) {
	svc, _, meetings := newTestService(testLawyer())

	c, err := svc.CreateConsultation(context.Background(), "client-1", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(9, 0),
		Duration:    30,
	})
	if err != nil {
		t.Fatalf("CreateConsultation: %v", err)
	}
	if c.Status != models.ConsultationPending {
		t.Errorf("status = %s, want pending", c.Status)
	}
	// 1200/hour for 30 minutes.
	if c.Price != 600 {
		t.Errorf("price = %.2f, want 600", c.Price)
	}
	if c.MeetingID == "" || meetings.created != 1 {
		t.Errorf("video consultation should provision a meeting, got %q (%d created)", c.MeetingID, meetings.created)
	}
}

func TestCreateConsultationDocumentReviewSkipsMeeting(t *testing.T) {
	svc, _, meetings := newTestService(testLawyer())

	c, err := svc.CreateConsultation(context.Background(), "client-1", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeDocumentReview,
		ScheduledAt: mondayAt(14, 0),
		Duration:    60,
	})
	if err != nil {
		t.Fatalf("CreateConsultation: %v", err)
	}
	if c.MeetingID != "" || meetings.created != 0 {
		t.Errorf("document review should not provision a meeting")
	}
}

func TestCreateConsultationOutsideAvailability(t *testing.T) {
	svc, _, _ := newTestService(testLawyer())

	_, err := svc.CreateConsultation(context.Background(), "client-1", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(12, 0),
		Duration:    30,
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError for a time outside availability, got %v", err)
	}
}

func TestCreateConsultationOverlappingBooking(t *testing.T) {
	booked := &models.Consultation{
		ID:          "c-1",
		LawyerID:    "lw-1",
		ClientID:    "client-1",
		Status:      models.ConsultationConfirmed,
		ScheduledAt: mondayAt(14, 0),
		Duration:    60,
	}
	svc, _, _ := newTestService(testLawyer(), booked)

	_, err := svc.CreateConsultation(context.Background(), "client-2", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(14, 30),
		Duration:    60,
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError for an overlapping booking, got %v", err)
	}
}

func TestCreateConsultationPartiallyOccupiedSlotConflicts(t *testing.T) {
	booked := &models.Consultation{
		ID:          "c-1",
		LawyerID:    "lw-1",
		ClientID:    "client-1",
		Status:      models.ConsultationPending,
		ScheduledAt: mondayAt(14, 0),
		Duration:    30,
	}
	svc, _, _ := newTestService(testLawyer(), booked)

	// 15:00 does not overlap the 14:00 booking, but the booking closes
	// the whole 14:00-16:00 slot, so the request must be rejected.
	_, err := svc.CreateConsultation(context.Background(), "client-2", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(15, 0),
		Duration:    60,
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError for a booking into a partially occupied slot, got %v", err)
	}

	// The same request into the untouched 09:00 slot still goes through.
	if _, err := svc.CreateConsultation(context.Background(), "client-2", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(9, 0),
		Duration:    60,
	}); err != nil {
		t.Fatalf("booking a free slot should succeed: %v", err)
	}
}

func TestCreateConsultationCancelledBookingFreesSlot(t *testing.T) {
	cancelled := &models.Consultation{
		ID:          "c-1",
		LawyerID:    "lw-1",
		ClientID:    "client-1",
		Status:      models.ConsultationCancelled,
		ScheduledAt: mondayAt(14, 0),
		Duration:    60,
	}
	svc, _, _ := newTestService(testLawyer(), cancelled)

	if _, err := svc.CreateConsultation(context.Background(), "client-2", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(14, 0),
		Duration:    60,
	}); err != nil {
		t.Fatalf("cancelled booking should not block the slot: %v", err)
	}
}

func TestCreateConsultationUnknownLawyer(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.CreateConsultation(context.Background(), "client-1", "missing", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(9, 0),
		Duration:    30,
	})
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCreateConsultationMeetingProvisioningFailure(t *testing.T) {
	svc, repo, meetings := newTestService(testLawyer())
	meetings.fail = true

	_, err := svc.CreateConsultation(context.Background(), "client-1", "lw-1", models.CreateConsultationInput{
		Type:        models.ModeVideo,
		ScheduledAt: mondayAt(9, 0),
		Duration:    30,
	})
	if err == nil {
		t.Fatal("expected error when meeting provisioning fails")
	}
	var conflict ConflictError
	var badRequest BadRequestError
	var notFound NotFoundError
	if errors.As(err, &conflict) || errors.As(err, &badRequest) || errors.As(err, &notFound) {
		t.Errorf("provisioning failure should surface as an internal error, got %v", err)
	}
	if len(repo.consultations) != 0 {
		t.Errorf("failed booking must not be persisted")
	}
}

func TestUpdateConsultationStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{models.ConsultationPending, models.ConsultationConfirmed, true},
		{models.ConsultationPending, models.ConsultationCancelled, true},
		{models.ConsultationConfirmed, models.ConsultationCompleted, true},
		{models.ConsultationConfirmed, models.ConsultationCancelled, true},
		{models.ConsultationPending, models.ConsultationCompleted, false},
		{models.ConsultationCompleted, models.ConsultationConfirmed, false},
		{models.ConsultationCancelled, models.ConsultationConfirmed, false},
		{models.ConsultationConfirmed, models.ConsultationConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			c := &models.Consultation{ID: "c-1", LawyerID: "lw-1", ClientID: "client-1", Status: tc.from}
			svc, _, _ := newTestService(testLawyer(), c)

			updated, err := svc.UpdateConsultationStatus("c-1", tc.to)
			if tc.ok {
				if err != nil {
					t.Fatalf("transition %s -> %s: %v", tc.from, tc.to, err)
				}
				if updated.Status != tc.to {
					t.Errorf("status = %s, want %s", updated.Status, tc.to)
				}
				return
			}
			var conflict ConflictError
			if !errors.As(err, &conflict) {
				t.Errorf("transition %s -> %s should conflict, got %v", tc.from, tc.to, err)
			}
		})
	}
}

func TestUpdateConsultationStatusUnknownValue(t *testing.T) {
	c := &models.Consultation{ID: "c-1", Status: models.ConsultationPending}
	svc, _, _ := newTestService(testLawyer(), c)

	_, err := svc.UpdateConsultationStatus("c-1", "archived")
	var badRequest BadRequestError
	if !errors.As(err, &badRequest) {
		t.Fatalf("expected BadRequestError for unknown status, got %v", err)
	}
}

func TestJoinConsultationWindow(t *testing.T) {
	cases := []struct {
		name   string
		offset time.Duration
		ok     bool
	}{
		{"ten minutes early", 10 * time.Minute, true},
		{"ten minutes late", -10 * time.Minute, true},
		{"thirty minutes early", 30 * time.Minute, false},
		{"an hour late", -time.Hour, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &models.Consultation{
				ID:          "c-1",
				LawyerID:    "lw-1",
				ClientID:    "client-1",
				Status:      models.ConsultationConfirmed,
				ScheduledAt: time.Now().Add(tc.offset),
				MeetingID:   "meeting-1",
			}
			svc, _, _ := newTestService(testLawyer(), c)

			_, details, err := svc.JoinConsultation(context.Background(), "c-1", "client-1")
			if tc.ok {
				if err != nil {
					t.Fatalf("JoinConsultation: %v", err)
				}
				if details == nil || details.MeetingID != "meeting-1" {
					t.Errorf("unexpected join details: %+v", details)
				}
				return
			}
			var badRequest BadRequestError
			if !errors.As(err, &badRequest) {
				t.Errorf("expected BadRequestError outside join window, got %v", err)
			}
		})
	}
}

func TestJoinConsultationRequiresParty(t *testing.T) {
	c := &models.Consultation{
		ID:          "c-1",
		LawyerID:    "lw-1",
		ClientID:    "client-1",
		Status:      models.ConsultationConfirmed,
		ScheduledAt: time.Now(),
		MeetingID:   "meeting-1",
	}
	svc, _, _ := newTestService(testLawyer(), c)

	_, _, err := svc.JoinConsultation(context.Background(), "c-1", "stranger")
	var forbidden ForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected ForbiddenError for a non-party, got %v", err)
	}

	// The lawyer joins through their platform user ID.
	if _, _, err := svc.JoinConsultation(context.Background(), "c-1", "user-lawyer"); err != nil {
		t.Errorf("lawyer should be able to join: %v", err)
	}
}

func TestJoinConsultationRequiresConfirmed(t *testing.T) {
	c := &models.Consultation{
		ID:          "c-1",
		LawyerID:    "lw-1",
		ClientID:    "client-1",
		Status:      models.ConsultationPending,
		ScheduledAt: time.Now(),
		MeetingID:   "meeting-1",
	}
	svc, _, _ := newTestService(testLawyer(), c)

	_, _, err := svc.JoinConsultation(context.Background(), "c-1", "client-1")
	var badRequest BadRequestError
	if !errors.As(err, &badRequest) {
		t.Fatalf("expected BadRequestError for a pending consultation, got %v", err)
	}
}

func TestEndConsultationLawyerOnly(t *testing.T) {
	c := &models.Consultation{
		ID:        "c-1",
		LawyerID:  "lw-1",
		ClientID:  "client-1",
		Status:    models.ConsultationConfirmed,
		MeetingID: "meeting-1",
		Price:     600,
	}
	svc, _, meetings := newTestService(testLawyer(), c)

	if _, err := svc.EndConsultation(context.Background(), "c-1", "client-1"); err == nil {
		t.Fatal("client must not be able to end a consultation")
	} else {
		var forbidden ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Fatalf("expected ForbiddenError, got %v", err)
		}
	}

	ended, err := svc.EndConsultation(context.Background(), "c-1", "user-lawyer")
	if err != nil {
		t.Fatalf("EndConsultation: %v", err)
	}
	if ended.Status != models.ConsultationCompleted || ended.CompletedAt == nil {
		t.Errorf("consultation not completed: %+v", ended)
	}
	if len(meetings.ended) != 1 || meetings.ended[0] != "meeting-1" {
		t.Errorf("meeting was not terminated: %v", meetings.ended)
	}
}

func TestEndConsultationTwiceConflicts(t *testing.T) {
	c := &models.Consultation{
		ID:       "c-1",
		LawyerID: "lw-1",
		ClientID: "client-1",
		Status:   models.ConsultationConfirmed,
	}
	svc, _, _ := newTestService(testLawyer(), c)

	first, err := svc.EndConsultation(context.Background(), "c-1", "user-lawyer")
	if err != nil {
		t.Fatalf("first EndConsultation: %v", err)
	}

	_, err = svc.EndConsultation(context.Background(), "c-1", "user-lawyer")
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError on second end, got %v", err)
	}

	// CompletedAt is untouched by the rejected call.
	reloaded, err := svc.Consultations.GetByID("c-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reloaded.CompletedAt.Equal(*first.CompletedAt) {
		t.Errorf("CompletedAt changed on rejected end: %v vs %v", reloaded.CompletedAt, first.CompletedAt)
	}
}

func TestAddFeedbackCumulativeMean(t *testing.T) {
	lw := testLawyer()
	lw.Rating = models.Rating{Average: 4.0, Count: 3}
	c := &models.Consultation{
		ID:       "c-1",
		LawyerID: "lw-1",
		ClientID: "client-1",
		Status:   models.ConsultationCompleted,
	}
	svc, _, _ := newTestService(lw, c)

	updated, err := svc.AddFeedback("c-1", "client-1", models.FeedbackInput{Rating: 5, Comment: "very helpful"})
	if err != nil {
		t.Fatalf("AddFeedback: %v", err)
	}
	if updated.Feedback == nil || updated.Feedback.Rating != 5 {
		t.Fatalf("feedback not recorded: %+v", updated.Feedback)
	}

	reloaded, err := svc.Repo.GetByID("lw-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	// (4.0*3 + 5) / 4 = 4.25
	if math.Abs(reloaded.Rating.Average-4.25) > 1e-9 {
		t.Errorf("rating average = %v, want 4.25", reloaded.Rating.Average)
	}
	if reloaded.Rating.Count != 4 {
		t.Errorf("rating count = %d, want 4", reloaded.Rating.Count)
	}
}

func TestAddFeedbackRules(t *testing.T) {
	base := models.Consultation{
		ID:       "c-1",
		LawyerID: "lw-1",
		ClientID: "client-1",
		Status:   models.ConsultationCompleted,
	}

	t.Run("client only", func(t *testing.T) {
		c := base
		svc, _, _ := newTestService(testLawyer(), &c)
		_, err := svc.AddFeedback("c-1", "user-lawyer", models.FeedbackInput{Rating: 5})
		var forbidden ForbiddenError
		if !errors.As(err, &forbidden) {
			t.Errorf("expected ForbiddenError, got %v", err)
		}
	})

	t.Run("only after completion", func(t *testing.T) {
		c := base
		c.Status = models.ConsultationConfirmed
		svc, _, _ := newTestService(testLawyer(), &c)
		_, err := svc.AddFeedback("c-1", "client-1", models.FeedbackInput{Rating: 5})
		var conflict ConflictError
		if !errors.As(err, &conflict) {
			t.Errorf("expected ConflictError, got %v", err)
		}
	})

	t.Run("set once", func(t *testing.T) {
		c := base
		svc, _, _ := newTestService(testLawyer(), &c)
		if _, err := svc.AddFeedback("c-1", "client-1", models.FeedbackInput{Rating: 4}); err != nil {
			t.Fatalf("first AddFeedback: %v", err)
		}
		_, err := svc.AddFeedback("c-1", "client-1", models.FeedbackInput{Rating: 1})
		var conflict ConflictError
		if !errors.As(err, &conflict) {
			t.Errorf("expected ConflictError on second feedback, got %v", err)
		}
	})

	t.Run("rating bounds", func(t *testing.T) {
		c := base
		svc, _, _ := newTestService(testLawyer(), &c)
		for _, rating := range []int{0, 6, -1} {
			_, err := svc.AddFeedback("c-1", "client-1", models.FeedbackInput{Rating: rating})
			var badRequest BadRequestError
			if !errors.As(err, &badRequest) {
				t.Errorf("rating %d: expected BadRequestError, got %v", rating, err)
			}
		}
	})
}

func TestPayConsultationConfirmsBooking(t *testing.T) {
	c := &models.Consultation{
		ID:       "c-1",
		LawyerID: "lw-1",
		ClientID: "client-1",
		Status:   models.ConsultationPending,
		Price:    600,
		Payment:  models.ConsultationPayment{Status: "pending", Amount: 600, Currency: "INR"},
	}
	svc, _, _ := newTestService(testLawyer(), c)

	paid, invoice, err := svc.PayConsultation(context.Background(), "c-1", "client-1", "card")
	if err != nil {
		t.Fatalf("PayConsultation: %v", err)
	}
	if invoice.Status != "paid" {
		t.Errorf("invoice status = %s, want paid", invoice.Status)
	}
	if paid.Status != models.ConsultationConfirmed {
		t.Errorf("consultation status = %s, want confirmed", paid.Status)
	}
	if paid.Payment.Status != "completed" || paid.Payment.TransactionID == "" {
		t.Errorf("payment not recorded: %+v", paid.Payment)
	}
}

func TestGetConsultationHistorySidedByRole(t *testing.T) {
	asClient := &models.Consultation{ID: "c-1", LawyerID: "lw-1", ClientID: "client-1", Status: models.ConsultationCompleted}
	asOther := &models.Consultation{ID: "c-2", LawyerID: "lw-1", ClientID: "client-2", Status: models.ConsultationPending}
	svc, _, _ := newTestService(testLawyer(), asClient, asOther)

	clientHistory, err := svc.GetConsultationHistory("client-1", models.ConsultationFilters{})
	if err != nil {
		t.Fatalf("client history: %v", err)
	}
	if len(clientHistory) != 1 || clientHistory[0].ID != "c-1" {
		t.Errorf("client history = %+v", clientHistory)
	}

	lawyerHistory, err := svc.GetConsultationHistory("user-lawyer", models.ConsultationFilters{})
	if err != nil {
		t.Fatalf("lawyer history: %v", err)
	}
	if len(lawyerHistory) != 2 {
		t.Errorf("lawyer should see both consultations, got %d", len(lawyerHistory))
	}
}
