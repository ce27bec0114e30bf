package contract

import (
	"errors"
	"fmt"
	"time"

	templateRepo "lexhub/database/repository/template"
	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateFromTemplate instantiates a library template as a draft contract
// owned by the user. The template's sections are copied so later edits to
// the draft never touch the library.
func (s *DefaultContractService) CreateFromTemplate(userID string, input FromTemplateInput) (*models.Contract, error) {
	if len(input.Parties) < 2 {
		return nil, utils.BadRequestError{Reason: "a contract needs at least two parties"}
	}

	tpl, err := s.Templates.GetByID(input.TemplateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrNotFound) {
			return nil, utils.NotFoundError{Resource: "template"}
		}
		return nil, fmt.Errorf("failed to load template %s: %w", input.TemplateID, err)
	}

	title := input.Title
	if title == "" {
		title = tpl.Title
	}
	sections := make([]models.ContractSection, len(tpl.Sections))
	copy(sections, tpl.Sections)

	now := time.Now()
	contract := &models.Contract{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Type:      tpl.Type,
		Status:    "draft",
		Parties:   input.Parties,
		Sections:  sections,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(contract); err != nil {
		return nil, fmt.Errorf("failed to save contract from template %s: %w", input.TemplateID, err)
	}

	utils.GetLogger().Info("Contract created from template",
		zap.String("contractID", contract.ID), zap.String("templateID", tpl.ID))
	return contract, nil
}
