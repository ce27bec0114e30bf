package contract

import (
	"context"

	clauseRepo "lexhub/database/repository/clause"
	contractRepo "lexhub/database/repository/contract"
	templateRepo "lexhub/database/repository/template"
	"lexhub/models"
	"lexhub/services/intelligence"
)

// GenerateContractInput describes the contract to draft.
type GenerateContractInput struct {
	Title   string                 `json:"title" binding:"required"`
	Type    string                 `json:"type" binding:"required"`
	Parties []models.ContractParty `json:"parties" binding:"required,min=2"`
	Notes   string                 `json:"notes,omitempty"`
}

// RewriteSectionInput asks for one section to be redrafted.
type RewriteSectionInput struct {
	SectionIndex int    `json:"sectionIndex"`
	Instruction  string `json:"instruction" binding:"required"`
}

// FromTemplateInput instantiates a library template as a draft contract.
type FromTemplateInput struct {
	TemplateID string                 `json:"templateId" binding:"required"`
	Title      string                 `json:"title,omitempty"`
	Parties    []models.ContractParty `json:"parties" binding:"required,min=2"`
}

// AnalyzeContractInput selects what the AI review should examine.
type AnalyzeContractInput struct {
	AnalysisType      string `json:"analysisType,omitempty"` // risk, compliance, terms or all
	Jurisdiction      string `json:"jurisdiction,omitempty"`
	Industry          string `json:"industry,omitempty"`
	AdditionalContext string `json:"additionalContext,omitempty"`
}

// ContractService manages contract documents and AI-assisted drafting.
type ContractService interface {
	CreateContract(userID string, data models.Contract) (*models.Contract, error)
	GetContract(contractID, userID string) (*models.Contract, error)
	UpdateContract(contractID, userID string, data models.Contract) (*models.Contract, error)
	DeleteContract(contractID, userID string) error
	ListContracts(userID string, page, limit int) (*models.ContractPage, error)

	// GenerateContract drafts a full contract for the given type and
	// parties, folding in the library's must-have clauses.
	GenerateContract(ctx context.Context, userID string, input GenerateContractInput) (*models.Contract, error)
	// RewriteSection redrafts one section per the instruction.
	RewriteSection(ctx context.Context, contractID, userID string, input RewriteSectionInput) (*models.Contract, error)
	// SuggestClause returns library clauses relevant to a topic, falling
	// back to a drafted clause when the library has none.
	SuggestClause(ctx context.Context, contractType, topic string) ([]models.Clause, error)
	// CreateFromTemplate copies a library template's sections into a new
	// draft contract for the given parties.
	CreateFromTemplate(userID string, input FromTemplateInput) (*models.Contract, error)
	// AnalyzeContract runs an AI review of the contract and returns the
	// structured findings.
	AnalyzeContract(ctx context.Context, contractID, userID string, input AnalyzeContractInput) (*models.ContractAnalysis, error)
}

// DefaultContractService is the production implementation.
type DefaultContractService struct {
	Repo      contractRepo.ContractRepository
	Clauses   clauseRepo.ClauseRepository
	Templates templateRepo.TemplateRepository
	AI        intelligence.TextClient
}
