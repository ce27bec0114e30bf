package clause

import (
	"errors"
	"fmt"
	"time"

	clauseRepo "lexhub/database/repository/clause"
	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
)

// ClauseService manages the reusable clause library.
type ClauseService interface {
	CreateClause(data models.Clause) (*models.Clause, error)
	GetClause(id string) (*models.Clause, error)
	UpdateClause(id string, data models.Clause) (*models.Clause, error)
	DeleteClause(id string) error
	SearchClauses(query string, limit int) ([]models.Clause, error)
	GetByCategory(category string) ([]models.Clause, error)
	GetMustHave(contractType string) ([]models.Clause, error)
}

// DefaultClauseService is the production implementation.
type DefaultClauseService struct {
	Repo clauseRepo.ClauseRepository
}

func (s *DefaultClauseService) CreateClause(data models.Clause) (*models.Clause, error) {
	if data.Title == "" || data.Content == "" {
		return nil, utils.BadRequestError{Reason: "title and content are required"}
	}

	now := time.Now()
	data.ID = uuid.New().String()
	data.CreatedAt = now
	data.UpdatedAt = now
	if err := s.Repo.Create(&data); err != nil {
		return nil, fmt.Errorf("failed to create clause: %w", err)
	}
	return &data, nil
}

func (s *DefaultClauseService) GetClause(id string) (*models.Clause, error) {
	cl, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, clauseRepo.ErrNotFound) {
			return nil, utils.NotFoundError{Resource: "clause"}
		}
		return nil, fmt.Errorf("failed to fetch clause %s: %w", id, err)
	}
	return cl, nil
}

func (s *DefaultClauseService) UpdateClause(id string, data models.Clause) (*models.Clause, error) {
	existing, err := s.GetClause(id)
	if err != nil {
		return nil, err
	}

	data.ID = existing.ID
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now()
	if err := s.Repo.Update(&data); err != nil {
		return nil, fmt.Errorf("failed to update clause %s: %w", id, err)
	}
	return &data, nil
}

func (s *DefaultClauseService) DeleteClause(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, clauseRepo.ErrNotFound) {
			return utils.NotFoundError{Resource: "clause"}
		}
		return fmt.Errorf("failed to delete clause %s: %w", id, err)
	}
	return nil
}

func (s *DefaultClauseService) SearchClauses(query string, limit int) ([]models.Clause, error) {
	if query == "" {
		return nil, utils.BadRequestError{Reason: "query is required"}
	}
	return s.Repo.Search(query, limit)
}

func (s *DefaultClauseService) GetByCategory(category string) ([]models.Clause, error) {
	return s.Repo.GetByCategory(category)
}

func (s *DefaultClauseService) GetMustHave(contractType string) ([]models.Clause, error) {
	return s.Repo.GetMustHave(contractType)
}
