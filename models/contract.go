package models

import "time"

// ContractSection is one titled block of contract text.
type ContractSection struct {
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
	Order   int    `bson:"order" json:"order"`
}

// ContractParty identifies a participant in a contract.
type ContractParty struct {
	Name  string `bson:"name" json:"name"`
	Role  string `bson:"role" json:"role"` // e.g. "employer", "contractor"
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

type Contract struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"userId" json:"userId"`
	LawyerID  string            `bson:"lawyerId,omitempty" json:"lawyerId,omitempty"`
	Title     string            `bson:"title" json:"title"`
	Type      string            `bson:"type" json:"type"` // e.g. "nda", "employment", "lease"
	Status    string            `bson:"status" json:"status"`
	Parties   []ContractParty   `bson:"parties" json:"parties"`
	Sections  []ContractSection `bson:"sections" json:"sections"`
	FileID    string            `bson:"fileId,omitempty" json:"fileId,omitempty"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// ContractAnalysis is the structured result of an AI review of a
// contract. Sections not covered by the requested analysis type are nil.
type ContractAnalysis struct {
	Summary         string   `json:"summary"`
	Risks           []string `json:"risks,omitempty"`
	Compliance      []string `json:"compliance,omitempty"`
	Terms           []string `json:"terms,omitempty"`
	Recommendations []string `json:"recommendations"`
	Severity        string   `json:"severity"`
	Confidence      string   `json:"confidence"`
}

// Pagination describes one page of a listed collection.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

// ContractPage is a paginated contract listing.
type ContractPage struct {
	Contracts  []Contract `json:"contracts"`
	Pagination Pagination `json:"pagination"`
}
