package models

import "time"

// Clause is a reusable block of legal text kept in the shared library.
type Clause struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Content       string    `bson:"content" json:"content"`
	Category      string    `bson:"category" json:"category"`
	Keywords      []string  `bson:"keywords,omitempty" json:"keywords,omitempty"`
	ContractTypes []string  `bson:"contractTypes,omitempty" json:"contractTypes,omitempty"`
	IsMustHave    bool      `bson:"isMustHave" json:"isMustHave"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
