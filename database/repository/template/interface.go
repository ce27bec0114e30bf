package templateRepo

import "lexhub/models"

// TemplateRepository defines methods for template library data access.
type TemplateRepository interface {
	GetByID(id string) (*models.Template, error)
	Create(t *models.Template) error
	Update(t *models.Template) error
	Delete(id string) error
	// Search matches the query against title and description, newest first.
	Search(query string, limit int) ([]models.Template, error)
	GetByCategory(category string) ([]models.Template, error)
	GetByIndustry(industry string) ([]models.Template, error)
	// GetPopular returns the best reviewed templates.
	GetPopular(limit int) ([]models.Template, error)
	// AddReview appends a review to a template.
	AddReview(id string, review models.TemplateReview) error
}
