package repositories

import (
	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMStockMovementRepository is a GORM implementation of
// StockMovementRepository.
type GORMStockMovementRepository struct {
	db *gorm.DB
}

// NewGORMStockMovementRepository creates a new instance of
// GORMStockMovementRepository.
func NewGORMStockMovementRepository(db *gorm.DB) *GORMStockMovementRepository {
	return &GORMStockMovementRepository{
		db: db,
	}
}

// Create appends a movement to the trail.
func (r *GORMStockMovementRepository) Create(movement *models.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	return r.db.Create(movement).Error
}

// GetByProductID retrieves the movements recorded for a product, oldest
// first.
func (r *GORMStockMovementRepository) GetByProductID(productID string) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	if err := r.db.Order("created_at asc").Find(&movements, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return movements, nil
}
