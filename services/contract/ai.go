package contract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateContract drafts a complete contract with the text model. The
// library's must-have clauses for the contract type are handed to the
// model so they are worked into the draft.
func (s *DefaultContractService) GenerateContract(ctx context.Context, userID string, input GenerateContractInput) (*models.Contract, error) {
	if len(input.Parties) < 2 {
		return nil, utils.BadRequestError{Reason: "a contract needs at least two parties"}
	}

	mustHave, err := s.Clauses.GetMustHave(input.Type)
	if err != nil {
		utils.GetLogger().Warn("Failed to load must-have clauses", zap.Error(err))
	}

	prompt := buildGeneratePrompt(input, mustHave)
	raw, err := s.AI.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("contract generation failed: %w", err)
	}

	sections := parseSections(raw)
	if len(sections) == 0 {
		return nil, fmt.Errorf("contract generation produced no sections")
	}

	now := time.Now()
	contract := &models.Contract{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     input.Title,
		Type:      input.Type,
		Status:    "draft",
		Parties:   input.Parties,
		Sections:  sections,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(contract); err != nil {
		return nil, fmt.Errorf("failed to save generated contract: %w", err)
	}

	utils.GetLogger().Info("Contract generated",
		zap.String("contractID", contract.ID), zap.String("type", input.Type),
		zap.Int("sections", len(sections)))
	return contract, nil
}

// RewriteSection redrafts one section in place per the instruction.
func (s *DefaultContractService) RewriteSection(ctx context.Context, contractID, userID string, input RewriteSectionInput) (*models.Contract, error) {
	c, err := s.getOwned(contractID, userID)
	if err != nil {
		return nil, err
	}
	if input.SectionIndex < 0 || input.SectionIndex >= len(c.Sections) {
		return nil, utils.BadRequestError{Reason: fmt.Sprintf("section index %d out of range", input.SectionIndex)}
	}

	section := c.Sections[input.SectionIndex]
	prompt := fmt.Sprintf(
		"Rewrite the following contract section titled %q.\nInstruction: %s\n\n%s\n\nReturn only the rewritten section text, no heading.",
		section.Title, input.Instruction, section.Content)

	rewritten, err := s.AI.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("section rewrite failed: %w", err)
	}
	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return nil, fmt.Errorf("section rewrite produced no text")
	}

	c.Sections[input.SectionIndex].Content = rewritten
	c.UpdatedAt = time.Now()
	if err := s.Repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to save rewritten contract %s: %w", contractID, err)
	}
	return c, nil
}

// SuggestClause serves relevant library clauses for a topic, drafting a
// fresh one with the model when the library comes up empty.
func (s *DefaultContractService) SuggestClause(ctx context.Context, contractType, topic string) ([]models.Clause, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, utils.BadRequestError{Reason: "topic is required"}
	}

	clauses, err := s.Clauses.Search(topic, 5)
	if err != nil {
		return nil, fmt.Errorf("clause search failed: %w", err)
	}
	if len(clauses) > 0 {
		return clauses, nil
	}

	prompt := fmt.Sprintf(
		"Draft one standard legal clause about %q for a %s contract. Return only the clause text.",
		topic, contractType)
	drafted, err := s.AI.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("clause drafting failed: %w", err)
	}

	return []models.Clause{{
		Title:     topic,
		Content:   strings.TrimSpace(drafted),
		Category:  "suggested",
		CreatedAt: time.Now(),
	}}, nil
}

func buildGeneratePrompt(input GenerateContractInput, mustHave []models.Clause) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Draft a %s contract titled %q between the following parties:\n", input.Type, input.Title)
	for _, p := range input.Parties {
		fmt.Fprintf(&sb, "- %s (%s)\n", p.Name, p.Role)
	}
	if input.Notes != "" {
		fmt.Fprintf(&sb, "Additional requirements: %s\n", input.Notes)
	}
	if len(mustHave) > 0 {
		sb.WriteString("Incorporate the following mandatory clauses:\n")
		for _, cl := range mustHave {
			fmt.Fprintf(&sb, "- %s: %s\n", cl.Title, cl.Content)
		}
	}
	sb.WriteString("\nFormat every section as a markdown heading line starting with \"## \" followed by the section body.")
	return sb.String()
}

// parseSections splits model output on "## " heading lines.
func parseSections(raw string) []models.ContractSection {
	var sections []models.ContractSection
	var current *models.ContractSection

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "## ") {
			if current != nil {
				current.Content = strings.TrimSpace(current.Content)
				sections = append(sections, *current)
			}
			current = &models.ContractSection{
				Title: strings.TrimSpace(strings.TrimPrefix(line, "## ")),
				Order: len(sections) + 1,
			}
			continue
		}
		if current != nil {
			current.Content += line + "\n"
		}
	}
	if current != nil {
		current.Content = strings.TrimSpace(current.Content)
		sections = append(sections, *current)
	}
	return sections
}
