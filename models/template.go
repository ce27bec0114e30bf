package models

import "time"

// TemplateReview is one user's rating of a template.
type TemplateReview struct {
	UserID    string    `bson:"userId" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Template is a reusable contract blueprint in the library. Its sections
// are copied into a draft when a contract is created from it.
type Template struct {
	ID             string            `bson:"id" json:"id"`
	Title          string            `bson:"title" json:"title"`
	Description    string            `bson:"description,omitempty" json:"description,omitempty"`
	Type           string            `bson:"type" json:"type"`
	Category       string            `bson:"category,omitempty" json:"category,omitempty"`
	Industry       string            `bson:"industry,omitempty" json:"industry,omitempty"`
	Enforceability string            `bson:"enforceability,omitempty" json:"enforceability,omitempty"`
	Sections       []ContractSection `bson:"sections" json:"sections"`
	Reviews        []TemplateReview  `bson:"reviews,omitempty" json:"reviews,omitempty"`
	CreatedAt      time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updatedAt" json:"updatedAt"`
}
