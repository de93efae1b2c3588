package repositories

import (
	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders, with their items and status history.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Preload("StatusHistory").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID, with items and history.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Preload("StatusHistory").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("order with ID %s not found", id)
		}
		return nil, err
	}
	return &order, nil
}

// Create persists a new order together with its items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	return r.db.Create(order).Error
}

// Update persists the order's fields and any new status history entries.
func (r *GORMOrderRepository) Update(order *models.Order) error {
	res := r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("order with ID %s not found", order.ID)
	}
	return nil
}
