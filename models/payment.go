package models

import "time"

// --- PaymentRequest & Invoice ---
type PaymentRequest struct {
	UserID      string
	Amount      float64
	Method      string // "card" or "cash"
	Currency    string
	Description string
	Metadata    map[string]string
}

type Invoice struct {
	InvoiceID string    `bson:"invoiceId" json:"invoiceId"`
	UserID    string    `bson:"userId" json:"userId"`
	LawyerID  string    `bson:"lawyerId,omitempty" json:"lawyerId,omitempty"`
	Amount    float64   `bson:"amount" json:"amount"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"` // "pending", "paid", "settled"
	Method    string    `bson:"method" json:"method"`
	PaymentID string    `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	Error     string    `bson:"error,omitempty" json:"error,omitempty"`
}
