package contractRepo

import "lexhub/models"

// ContractRepository defines methods for contract data access.
type ContractRepository interface {
	// GetByID retrieves a contract by its unique ID.
	GetByID(id string) (*models.Contract, error)
	// Create inserts a new contract record.
	Create(contract *models.Contract) error
	// Update overwrites an existing contract record.
	Update(contract *models.Contract) error
	// Delete removes a contract owned by the given user.
	Delete(id, userID string) error
	// ListForUser returns one page of the user's contracts.
	ListForUser(userID string, page, limit int, sortBy string, descending bool) (*models.ContractPage, error)
}
