package repositories

import (
	"gerai/internal/models"
)

// StockMovementRepository defines the interface for the inventory audit
// trail. Movements are append-only.
type StockMovementRepository interface {
	Create(movement *models.StockMovement) error
	GetByProductID(productID string) ([]models.StockMovement, error)
}
