package template

import (
	"errors"
	"fmt"
	"time"

	templateRepo "lexhub/database/repository/template"
	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
)

// ReviewInput is one user's rating of a template.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment,omitempty"`
}

// TemplateService manages the reusable contract template library.
type TemplateService interface {
	CreateTemplate(data models.Template) (*models.Template, error)
	GetTemplate(id string) (*models.Template, error)
	UpdateTemplate(id string, data models.Template) (*models.Template, error)
	DeleteTemplate(id string) error
	SearchTemplates(query string, limit int) ([]models.Template, error)
	GetByCategory(category string) ([]models.Template, error)
	GetByIndustry(industry string) ([]models.Template, error)
	PopularTemplates(limit int) ([]models.Template, error)
	// AddReview records a user's rating of a template.
	AddReview(id, userID string, input ReviewInput) (*models.Template, error)
}

// DefaultTemplateService is the production implementation.
type DefaultTemplateService struct {
	Repo templateRepo.TemplateRepository
}

func (s *DefaultTemplateService) CreateTemplate(data models.Template) (*models.Template, error) {
	if data.Title == "" || data.Type == "" {
		return nil, utils.BadRequestError{Reason: "title and type are required"}
	}
	if len(data.Sections) == 0 {
		return nil, utils.BadRequestError{Reason: "a template needs at least one section"}
	}

	now := time.Now()
	data.ID = uuid.New().String()
	data.Reviews = nil
	data.CreatedAt = now
	data.UpdatedAt = now
	if err := s.Repo.Create(&data); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	return &data, nil
}

func (s *DefaultTemplateService) GetTemplate(id string) (*models.Template, error) {
	tpl, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, templateRepo.ErrNotFound) {
			return nil, utils.NotFoundError{Resource: "template"}
		}
		return nil, fmt.Errorf("failed to fetch template %s: %w", id, err)
	}
	return tpl, nil
}

func (s *DefaultTemplateService) UpdateTemplate(id string, data models.Template) (*models.Template, error) {
	existing, err := s.GetTemplate(id)
	if err != nil {
		return nil, err
	}

	data.ID = existing.ID
	data.Reviews = existing.Reviews
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now()
	if err := s.Repo.Update(&data); err != nil {
		return nil, fmt.Errorf("failed to update template %s: %w", id, err)
	}
	return &data, nil
}

func (s *DefaultTemplateService) DeleteTemplate(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, templateRepo.ErrNotFound) {
			return utils.NotFoundError{Resource: "template"}
		}
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}
	return nil
}

func (s *DefaultTemplateService) SearchTemplates(query string, limit int) ([]models.Template, error) {
	if query == "" {
		return nil, utils.BadRequestError{Reason: "query is required"}
	}
	return s.Repo.Search(query, limit)
}

func (s *DefaultTemplateService) GetByCategory(category string) ([]models.Template, error) {
	return s.Repo.GetByCategory(category)
}

func (s *DefaultTemplateService) GetByIndustry(industry string) ([]models.Template, error) {
	return s.Repo.GetByIndustry(industry)
}

func (s *DefaultTemplateService) PopularTemplates(limit int) ([]models.Template, error) {
	return s.Repo.GetPopular(limit)
}

func (s *DefaultTemplateService) AddReview(id, userID string, input ReviewInput) (*models.Template, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.BadRequestError{Reason: "rating must be between 1 and 5"}
	}
	if _, err := s.GetTemplate(id); err != nil {
		return nil, err
	}

	review := models.TemplateReview{
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.AddReview(id, review); err != nil {
		return nil, fmt.Errorf("failed to add review to template %s: %w", id, err)
	}
	return s.GetTemplate(id)
}
