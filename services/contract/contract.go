package contract

import (
	"errors"
	"fmt"
	"time"

	contractRepo "lexhub/database/repository/contract"
	"lexhub/models"
	"lexhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultContractService) CreateContract(userID string, data models.Contract) (*models.Contract, error) {
	if data.Title == "" || data.Type == "" {
		return nil, utils.BadRequestError{Reason: "title and type are required"}
	}

	now := time.Now()
	data.ID = uuid.New().String()
	data.UserID = userID
	if data.Status == "" {
		data.Status = "draft"
	}
	data.CreatedAt = now
	data.UpdatedAt = now

	if err := s.Repo.Create(&data); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	return &data, nil
}

// getOwned loads a contract and enforces ownership.
func (s *DefaultContractService) getOwned(contractID, userID string) (*models.Contract, error) {
	c, err := s.Repo.GetByID(contractID)
	if err != nil {
		if errors.Is(err, contractRepo.ErrNotFound) {
			return nil, utils.NotFoundError{Resource: "contract"}
		}
		return nil, fmt.Errorf("failed to fetch contract %s: %w", contractID, err)
	}
	if c.UserID != userID {
		return nil, utils.ForbiddenError{Reason: "you do not own this contract"}
	}
	return c, nil
}

func (s *DefaultContractService) GetContract(contractID, userID string) (*models.Contract, error) {
	return s.getOwned(contractID, userID)
}

func (s *DefaultContractService) UpdateContract(contractID, userID string, data models.Contract) (*models.Contract, error) {
	existing, err := s.getOwned(contractID, userID)
	if err != nil {
		return nil, err
	}

	data.ID = existing.ID
	data.UserID = existing.UserID
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = time.Now()

	if err := s.Repo.Update(&data); err != nil {
		return nil, fmt.Errorf("failed to update contract %s: %w", contractID, err)
	}
	return &data, nil
}

func (s *DefaultContractService) DeleteContract(contractID, userID string) error {
	if err := s.Repo.Delete(contractID, userID); err != nil {
		if errors.Is(err, contractRepo.ErrNotFound) {
			return utils.NotFoundError{Resource: "contract"}
		}
		return fmt.Errorf("failed to delete contract %s: %w", contractID, err)
	}
	utils.GetLogger().Info("Contract deleted", zap.String("contractID", contractID))
	return nil
}

func (s *DefaultContractService) ListContracts(userID string, page, limit int) (*models.ContractPage, error) {
	return s.Repo.ListForUser(userID, page, limit, "createdAt", true)
}
