package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lexhub/models"
	"lexhub/utils"
)

const (
	AnalysisAll        = "all"
	AnalysisRisk       = "risk"
	AnalysisCompliance = "compliance"
	AnalysisTerms      = "terms"
)

func validAnalysisType(t string) bool {
	switch t {
	case AnalysisAll, AnalysisRisk, AnalysisCompliance, AnalysisTerms:
		return true
	}
	return false
}

// AnalyzeContract runs an AI review of an owned contract. The model is
// asked for structured JSON; sections outside the requested analysis type
// are stripped from the result.
func (s *DefaultContractService) AnalyzeContract(ctx context.Context, contractID, userID string, input AnalyzeContractInput) (*models.ContractAnalysis, error) {
	if input.AnalysisType == "" {
		input.AnalysisType = AnalysisAll
	}
	if !validAnalysisType(input.AnalysisType) {
		return nil, utils.BadRequestError{Reason: fmt.Sprintf("unknown analysis type %q", input.AnalysisType)}
	}

	c, err := s.getOwned(contractID, userID)
	if err != nil {
		return nil, err
	}
	if len(c.Sections) == 0 {
		return nil, utils.BadRequestError{Reason: "the contract has no sections to analyze"}
	}

	raw, err := s.AI.GenerateContent(ctx, buildAnalysisPrompt(c, input))
	if err != nil {
		return nil, fmt.Errorf("contract analysis failed: %w", err)
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		return nil, err
	}

	if input.AnalysisType != AnalysisAll && input.AnalysisType != AnalysisRisk {
		analysis.Risks = nil
	}
	if input.AnalysisType != AnalysisAll && input.AnalysisType != AnalysisCompliance {
		analysis.Compliance = nil
	}
	if input.AnalysisType != AnalysisAll && input.AnalysisType != AnalysisTerms {
		analysis.Terms = nil
	}
	return analysis, nil
}

func buildAnalysisPrompt(c *models.Contract, input AnalyzeContractInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the following %s contract titled %q.\n", c.Type, c.Title)
	if input.Jurisdiction != "" {
		fmt.Fprintf(&sb, "Jurisdiction: %s\n", input.Jurisdiction)
	}
	if input.Industry != "" {
		fmt.Fprintf(&sb, "Industry: %s\n", input.Industry)
	}
	sb.WriteString("Parties:\n")
	for _, p := range c.Parties {
		fmt.Fprintf(&sb, "- %s (%s)\n", p.Name, p.Role)
	}
	sb.WriteString("\nSections:\n")
	for _, section := range c.Sections {
		fmt.Fprintf(&sb, "## %s\n%s\n", section.Title, section.Content)
	}
	if input.AdditionalContext != "" {
		fmt.Fprintf(&sb, "\nAdditional context: %s\n", input.AdditionalContext)
	}

	switch input.AnalysisType {
	case AnalysisRisk:
		sb.WriteString("\nFocus on legal and business risks, their severity and mitigation.\n")
	case AnalysisCompliance:
		sb.WriteString("\nFocus on compliance with applicable law and missing required clauses.\n")
	case AnalysisTerms:
		sb.WriteString("\nFocus on key terms, unusual or onerous terms and important obligations.\n")
	default:
		sb.WriteString("\nCover risks, compliance and key terms.\n")
	}

	sb.WriteString(`
Reply with only a JSON object shaped as:
{"summary": "", "risks": [], "compliance": [], "terms": [], "recommendations": [], "severity": "High|Medium|Low", "confidence": "High|Medium|Low"}`)
	return sb.String()
}

// parseAnalysis decodes the model's JSON reply, tolerating a fenced code
// block around it.
func parseAnalysis(raw string) (*models.ContractAnalysis, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var analysis models.ContractAnalysis
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis reply: %w", err)
	}
	return &analysis, nil
}
