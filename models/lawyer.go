package models

import "time"

// Slot is a declared span of time on a weekday during which a lawyer
// accepts bookings. Times are wall-clock "HH:mm" strings interpreted in
// the configured application time zone.
type Slot struct {
	StartTime   string `bson:"startTime" json:"startTime"`
	EndTime     string `bson:"endTime" json:"endTime"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// AvailabilityRule declares the slots a lawyer offers on one weekday.
type AvailabilityRule struct {
	Day   string `bson:"day" json:"day"` // "monday" .. "sunday"
	Slots []Slot `bson:"slots" json:"slots"`
}

// ConsultationMode pairs a consultation type with its hourly fee.
type ConsultationMode struct {
	Mode  string  `bson:"mode" json:"mode"` // "video", "chat", "document_review", "document_drafting"
	Price float64 `bson:"price" json:"price"`
}

// Rating is a cumulative mean over all received feedback.
type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

type Earnings struct {
	Total   float64 `bson:"total" json:"total"`
	Pending float64 `bson:"pending" json:"pending"`
	Settled float64 `bson:"settled" json:"settled"`
}

// VerificationDocument is an uploaded credential (bar certificate etc.).
type VerificationDocument struct {
	Type     string `bson:"type" json:"type"`
	URL      string `bson:"url" json:"url"`
	Verified bool   `bson:"verified" json:"verified"`
}

type Lawyer struct {
	ID                string                 `bson:"id" json:"id,omitempty"`
	UserID            string                 `bson:"userId" json:"userId"`
	Name              string                 `bson:"name" json:"name,omitempty"`
	Email             string                 `bson:"email" json:"email,omitempty"`
	Specialization    []string               `bson:"specialization" json:"specialization"`
	Experience        int                    `bson:"experience" json:"experience"` // years
	BarCouncilNumber  string                 `bson:"barCouncilNumber" json:"barCouncilNumber"`
	StateOfPractice   string                 `bson:"stateOfPractice,omitempty" json:"stateOfPractice,omitempty"`
	ConsultationModes []ConsultationMode     `bson:"consultationModes" json:"consultationModes"`
	Availability      []AvailabilityRule     `bson:"availability" json:"availability,omitempty"`
	Rating            Rating                 `bson:"rating" json:"rating"`
	Earnings          Earnings               `bson:"earnings" json:"earnings,omitzero"`
	Status            string                 `bson:"status" json:"status"` // "active", "inactive", "suspended"
	IsVerified        bool                   `bson:"isVerified" json:"isVerified"`
	Documents         []VerificationDocument `bson:"documents,omitempty" json:"documents,omitempty"`
	CreatedAt         time.Time              `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt         time.Time              `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// ModePrice returns the fee for the given consultation mode.
func (l *Lawyer) ModePrice(mode string) (float64, bool) {
	for _, m := range l.ConsultationModes {
		if m.Mode == mode {
			return m.Price, true
		}
	}
	return 0, false
}

// LawyerSearchFilters narrows a lawyer directory search.
type LawyerSearchFilters struct {
	Specialization  []string
	StateOfPractice string
	MinRating       float64
	VerifiedOnly    bool
}
