package repositories

import (
	"gerai/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// never deleted; they only accumulate status history and move to a terminal
// status.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
}
