package repositories

import (
	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("product with ID %s not found", id)
		}
		return nil, err
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return r.db.Create(product).Error
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Save(product) // Save will update all fields, including zero values
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound when no rows matched,
		// so we check RowsAffected.
		return models.NewNotFoundError("product with ID %s not found", product.ID)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("product with ID %s not found", id)
	}
	return nil
}

// AdjustStock applies delta with a single conditional UPDATE, guarding the
// non-negativity invariant in the database itself: the row is only touched
// while stock + delta >= 0, so concurrent reservations of the last unit
// serialize on the row and exactly one wins.
func (r *GORMProductRepository) AdjustStock(id string, delta int) (int, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND stock + ? >= 0", id, delta).
		Update("stock", gorm.Expr("stock + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// Either the product does not exist or the adjustment would have
		// taken stock below zero; re-read to tell the two apart.
		if _, err := r.GetByID(id); err != nil {
			return 0, err
		}
		return 0, models.NewValidationError("stock cannot be negative")
	}

	product, err := r.GetByID(id)
	if err != nil {
		return 0, err
	}
	return product.Stock, nil
}
