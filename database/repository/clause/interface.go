package clauseRepo

import "lexhub/models"

// ClauseRepository defines methods for clause library data access.
type ClauseRepository interface {
	GetByID(id string) (*models.Clause, error)
	Create(clause *models.Clause) error
	Update(clause *models.Clause) error
	Delete(id string) error
	// Search matches the query against title, content and keywords,
	// must-have clauses first, capped at limit.
	Search(query string, limit int) ([]models.Clause, error)
	// GetByCategory returns clauses in a category, must-have first.
	GetByCategory(category string) ([]models.Clause, error)
	// GetMustHave returns the must-have clauses for a contract type.
	GetMustHave(contractType string) ([]models.Clause, error)
}
