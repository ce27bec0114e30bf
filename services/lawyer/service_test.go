package lawyer

import (
	"context"
	"fmt"
	"time"

	consultationRepo "lexhub/database/repository/consultation"
	lawyerRepo "lexhub/database/repository/lawyer"
	"lexhub/config"
	"lexhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	config.Location = time.UTC
	config.AppConfig.DefaultCurrency = "INR"
}

// fakeLawyerRepo is an in-memory LawyerRepository.
type fakeLawyerRepo struct {
	lawyers map[string]*models.Lawyer
}

func newFakeLawyerRepo(lawyers ...*models.Lawyer) *fakeLawyerRepo {
	r := &fakeLawyerRepo{lawyers: make(map[string]*models.Lawyer)}
	for _, lw := range lawyers {
		copied := *lw
		r.lawyers[lw.ID] = &copied
	}
	return r
}

func (r *fakeLawyerRepo) GetByID(id string) (*models.Lawyer, error) {
	lw, ok := r.lawyers[id]
	if !ok {
		return nil, lawyerRepo.ErrNotFound
	}
	copied := *lw
	return &copied, nil
}

func (r *fakeLawyerRepo) GetByUserID(userID string) (*models.Lawyer, error) {
	for _, lw := range r.lawyers {
		if lw.UserID == userID {
			copied := *lw
			return &copied, nil
		}
	}
	return nil, lawyerRepo.ErrNotFound
}

func (r *fakeLawyerRepo) Create(lw *models.Lawyer) error {
	copied := *lw
	r.lawyers[lw.ID] = &copied
	return nil
}

func (r *fakeLawyerRepo) Update(lw *models.Lawyer) error {
	if _, ok := r.lawyers[lw.ID]; !ok {
		return lawyerRepo.ErrNotFound
	}
	copied := *lw
	r.lawyers[lw.ID] = &copied
	return nil
}

func (r *fakeLawyerRepo) Delete(id string) error {
	if _, ok := r.lawyers[id]; !ok {
		return lawyerRepo.ErrNotFound
	}
	delete(r.lawyers, id)
	return nil
}

func (r *fakeLawyerRepo) Search(models.LawyerSearchFilters) ([]models.Lawyer, error) {
	var out []models.Lawyer
	for _, lw := range r.lawyers {
		out = append(out, *lw)
	}
	return out, nil
}

func (r *fakeLawyerRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := r.lawyers[id]; !ok {
		return lawyerRepo.ErrNotFound
	}
	return nil
}

func (r *fakeLawyerRepo) SetAvailability(id string, availability []models.AvailabilityRule) error {
	lw, ok := r.lawyers[id]
	if !ok {
		return lawyerRepo.ErrNotFound
	}
	lw.Availability = availability
	return nil
}

func (r *fakeLawyerRepo) SetRating(id string, rating models.Rating) error {
	lw, ok := r.lawyers[id]
	if !ok {
		return lawyerRepo.ErrNotFound
	}
	lw.Rating = rating
	return nil
}

// fakeConsultationRepo is an in-memory ConsultationRepository enforcing
// the live-slot uniqueness the Mongo index provides.
type fakeConsultationRepo struct {
	consultations map[string]*models.Consultation
}

func newFakeConsultationRepo(consultations ...*models.Consultation) *fakeConsultationRepo {
	r := &fakeConsultationRepo{consultations: make(map[string]*models.Consultation)}
	for _, c := range consultations {
		copied := *c
		r.consultations[c.ID] = &copied
	}
	return r
}

func (r *fakeConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	c, ok := r.consultations[id]
	if !ok {
		return nil, consultationRepo.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeConsultationRepo) Create(c *models.Consultation) error {
	for _, existing := range r.consultations {
		if existing.LawyerID == c.LawyerID &&
			existing.ScheduledAt.Equal(c.ScheduledAt) &&
			!existing.IsTerminal() {
			return consultationRepo.ErrSlotTaken
		}
	}
	copied := *c
	r.consultations[c.ID] = &copied
	return nil
}

func (r *fakeConsultationRepo) Update(c *models.Consultation) error {
	if _, ok := r.consultations[c.ID]; !ok {
		return consultationRepo.ErrNotFound
	}
	copied := *c
	r.consultations[c.ID] = &copied
	return nil
}

func (r *fakeConsultationRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := r.consultations[id]; !ok {
		return consultationRepo.ErrNotFound
	}
	return nil
}

func (r *fakeConsultationRepo) ListForLawyerOnDay(lawyerID string, dayStart, dayEnd time.Time, statuses []string) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range r.consultations {
		if c.LawyerID != lawyerID {
			continue
		}
		if c.ScheduledAt.Before(dayStart) || !c.ScheduledAt.Before(dayEnd) {
			continue
		}
		for _, s := range statuses {
			if c.Status == s {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeConsultationRepo) ListForClient(clientID string, filters models.ConsultationFilters) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range r.consultations {
		if c.ClientID == clientID && matchesFilters(c, filters) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeConsultationRepo) ListForLawyer(lawyerID string, filters models.ConsultationFilters) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range r.consultations {
		if c.LawyerID == lawyerID && matchesFilters(c, filters) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeConsultationRepo) ListStartingBetween(from, to time.Time) ([]models.Consultation, error) {
	var out []models.Consultation
	for _, c := range r.consultations {
		if c.Status == models.ConsultationConfirmed &&
			!c.ScheduledAt.Before(from) && c.ScheduledAt.Before(to) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func matchesFilters(c *models.Consultation, filters models.ConsultationFilters) bool {
	if filters.Status != "" && c.Status != filters.Status {
		return false
	}
	if filters.Type != "" && c.Type != filters.Type {
		return false
	}
	return true
}

// fakeMeetingService records provisioning calls.
type fakeMeetingService struct {
	created int
	ended   []string
	fail    bool
}

func (m *fakeMeetingService) CreateMeeting(_ context.Context, _ string, scheduledAt time.Time, duration int) (*models.Meeting, error) {
	if m.fail {
		return nil, fmt.Errorf("provider unavailable")
	}
	m.created++
	return &models.Meeting{
		MeetingID:   fmt.Sprintf("meeting-%d", m.created),
		MeetingLink: fmt.Sprintf("https://meet.example/%d", m.created),
		ScheduledAt: scheduledAt,
		Duration:    duration,
	}, nil
}

func (m *fakeMeetingService) JoinMeeting(_ context.Context, meetingID, userName string) (*models.MeetingJoinDetails, error) {
	if m.fail {
		return nil, fmt.Errorf("provider unavailable")
	}
	return &models.MeetingJoinDetails{
		MeetingID: meetingID,
		JoinURL:   "https://meet.example/" + meetingID,
		UserName:  userName,
	}, nil
}

func (m *fakeMeetingService) EndMeeting(_ context.Context, meetingID string) error {
	m.ended = append(m.ended, meetingID)
	return nil
}

func (m *fakeMeetingService) GetMeetingStatus(_ context.Context, meetingID string) (*models.MeetingStatus, error) {
	return &models.MeetingStatus{MeetingID: meetingID, Status: "waiting"}, nil
}

// fakePaymentHandler always settles card payments.
type fakePaymentHandler struct{}

func (fakePaymentHandler) ProcessPayment(_ context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	status := "paid"
	if req.Method == "cash" {
		status = "pending"
	}
	return &models.Invoice{
		InvoiceID: "inv-1",
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    status,
		Method:    req.Method,
		PaymentID: "pi_test",
	}, nil
}

// testLawyer returns a lawyer with weekday availability and video pricing.
func testLawyer() *models.Lawyer {
	return &models.Lawyer{
		ID:     "lw-1",
		UserID: "user-lawyer",
		Name:   "Asha Verma",
		Email:  "asha@example.com",
		ConsultationModes: []models.ConsultationMode{
			{Mode: models.ModeVideo, Price: 1200},
			{Mode: models.ModeDocumentReview, Price: 800},
		},
		Availability: []models.AvailabilityRule{
			{Day: "monday", Slots: []models.Slot{
				{StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
				{StartTime: "10:00", EndTime: "11:00", IsAvailable: true},
				{StartTime: "14:00", EndTime: "16:00", IsAvailable: true},
			}},
		},
		Status: "active",
	}
}

func newTestService(lw *models.Lawyer, consultations ...*models.Consultation) (*DefaultLawyerService, *fakeConsultationRepo, *fakeMeetingService) {
	var lawyers []*models.Lawyer
	if lw != nil {
		lawyers = append(lawyers, lw)
	}
	consultRepo := newFakeConsultationRepo(consultations...)
	meetings := &fakeMeetingService{}
	svc := &DefaultLawyerService{
		Repo:          newFakeLawyerRepo(lawyers...),
		Consultations: consultRepo,
		Meetings:      meetings,
		Payments:      fakePaymentHandler{},
	}
	return svc, consultRepo, meetings
}

// mondayAt returns the next Monday at the given wall-clock time in UTC,
// at least a week out so join-window tests stay in the future.
func mondayAt(hour, minute int) time.Time {
	t := time.Now().In(config.Location).AddDate(0, 0, 7)
	for t.Weekday() != time.Monday {
		t = t.AddDate(0, 0, 1)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, config.Location)
}
