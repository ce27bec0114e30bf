package models

import "time"

// Consultation statuses. Pending and confirmed are live; completed and
// cancelled are terminal.
const (
	ConsultationPending   = "pending"
	ConsultationConfirmed = "confirmed"
	ConsultationCompleted = "completed"
	ConsultationCancelled = "cancelled"
)

// Consultation types.
const (
	ModeVideo            = "video"
	ModeChat             = "chat"
	ModeDocumentReview   = "document_review"
	ModeDocumentDrafting = "document_drafting"
)

type ConsultationPayment struct {
	Status        string     `bson:"status" json:"status"` // "pending", "completed", "refunded"
	TransactionID string     `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Amount        float64    `bson:"amount" json:"amount"`
	Currency      string     `bson:"currency" json:"currency"`
	PaidAt        *time.Time `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
}

// Feedback is set once by the client after completion.
type Feedback struct {
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Consultation is a scheduled engagement between a lawyer and a client.
type Consultation struct {
	ID          string              `bson:"id" json:"id"`
	LawyerID    string              `bson:"lawyerId" json:"lawyerId"`
	ClientID    string              `bson:"clientId" json:"clientId"`
	Type        string              `bson:"type" json:"type"`
	Status      string              `bson:"status" json:"status"`
	ScheduledAt time.Time           `bson:"scheduledAt" json:"scheduledAt"`
	Duration    int                 `bson:"duration" json:"duration"` // minutes
	Price       float64             `bson:"price" json:"price"`
	Payment     ConsultationPayment `bson:"payment" json:"payment"`
	DocumentID  string              `bson:"documentId,omitempty" json:"documentId,omitempty"`
	Notes       string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Feedback    *Feedback           `bson:"feedback,omitempty" json:"feedback,omitempty"`
	MeetingID   string              `bson:"meetingId,omitempty" json:"meetingId,omitempty"`
	MeetingLink string              `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	CompletedAt *time.Time          `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// IsTerminal reports whether no further status transition is allowed.
func (c *Consultation) IsTerminal() bool {
	return c.Status == ConsultationCompleted || c.Status == ConsultationCancelled
}

// consultationTransitions is the legal status transition table.
var consultationTransitions = map[string][]string{
	ConsultationPending:   {ConsultationConfirmed, ConsultationCancelled},
	ConsultationConfirmed: {ConsultationCompleted, ConsultationCancelled},
}

// ValidConsultationStatus reports whether s is an enumerated status value.
func ValidConsultationStatus(s string) bool {
	switch s {
	case ConsultationPending, ConsultationConfirmed, ConsultationCompleted, ConsultationCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a consultation may move from one status
// to another.
func CanTransition(from, to string) bool {
	for _, next := range consultationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateConsultationInput is the booking request payload.
type CreateConsultationInput struct {
	Type        string    `json:"type" binding:"required"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Duration    int       `json:"duration" binding:"required"`
	DocumentID  string    `json:"document,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// FeedbackInput is the client feedback payload.
type FeedbackInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

// ConsultationFilters narrows a consultation history query.
type ConsultationFilters struct {
	Status string
	Type   string
}
