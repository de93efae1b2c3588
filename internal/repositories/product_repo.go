package repositories

import (
	"gerai/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// AdjustStock is the one mutation the inventory ledger relies on: a single
// atomic read-modify-write of the stock column. Implementations must
// guarantee that two concurrent adjustments for the last unit of stock cannot
// both succeed, and must return a ValidationError (stock unchanged) when the
// adjustment would take stock below zero.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// AdjustStock applies delta atomically and returns the new stock level.
	AdjustStock(id string, delta int) (int, error)
}
