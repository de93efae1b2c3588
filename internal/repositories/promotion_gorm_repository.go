package repositories

import (
	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCouponRepository is a GORM implementation of CouponRepository.
type GORMCouponRepository struct {
	db *gorm.DB
}

// NewGORMCouponRepository creates a new instance of GORMCouponRepository.
func NewGORMCouponRepository(db *gorm.DB) *GORMCouponRepository {
	return &GORMCouponRepository{
		db: db,
	}
}

// GetAll retrieves all coupons from the database.
func (r *GORMCouponRepository) GetAll() ([]models.Coupon, error) {
	var coupons []models.Coupon
	if err := r.db.Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

// GetByCode retrieves a single coupon by its code from the database.
func (r *GORMCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, "code = ?", code).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("coupon with code %s not found", code)
		}
		return nil, err
	}
	return &coupon, nil
}

// Create creates a new coupon in the database.
func (r *GORMCouponRepository) Create(coupon *models.Coupon) error {
	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	return r.db.Create(coupon).Error
}

// Update updates an existing coupon in the database.
func (r *GORMCouponRepository) Update(coupon *models.Coupon) error {
	res := r.db.Save(coupon)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("coupon with code %s not found", coupon.Code)
	}
	return nil
}

// Delete deletes a coupon by its code from the database.
func (r *GORMCouponRepository) Delete(code string) error {
	res := r.db.Delete(&models.Coupon{}, "code = ?", code)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("coupon with code %s not found", code)
	}
	return nil
}

// Redeem performs the increment-if-below-cap in one conditional UPDATE, so
// the database serializes concurrent redemptions on the coupon row: when the
// cap has been reached between the caller's eligibility check and this call,
// no row matches and the caller gets a ConflictError.
func (r *GORMCouponRepository) Redeem(code string) (*models.Coupon, error) {
	res := r.db.Model(&models.Coupon{}).
		Where("code = ? AND (max_usage = 0 OR usage_count < max_usage)", code).
		Update("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// No matching row: distinguish unknown code from an exhausted cap.
		if _, err := r.GetByCode(code); err != nil {
			return nil, err
		}
		return nil, models.NewConflictError("coupon exhausted")
	}
	return r.GetByCode(code)
}

// Unredeem gives back one usage after an aborted checkout.
func (r *GORMCouponRepository) Unredeem(code string) error {
	res := r.db.Model(&models.Coupon{}).
		Where("code = ? AND usage_count > 0", code).
		Update("usage_count", gorm.Expr("usage_count - 1"))
	return res.Error
}

// GORMDiscountRepository is a GORM implementation of DiscountRepository.
type GORMDiscountRepository struct {
	db *gorm.DB
}

// NewGORMDiscountRepository creates a new instance of GORMDiscountRepository.
func NewGORMDiscountRepository(db *gorm.DB) *GORMDiscountRepository {
	return &GORMDiscountRepository{
		db: db,
	}
}

// GetAll retrieves all discounts from the database.
func (r *GORMDiscountRepository) GetAll() ([]models.Discount, error) {
	var discounts []models.Discount
	if err := r.db.Find(&discounts).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

// GetByID retrieves a single discount by its ID from the database.
func (r *GORMDiscountRepository) GetByID(id string) (*models.Discount, error) {
	var discount models.Discount
	if err := r.db.First(&discount, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("discount with ID %s not found", id)
		}
		return nil, err
	}
	return &discount, nil
}

// GetByCategory retrieves all discounts scoped to a category.
func (r *GORMDiscountRepository) GetByCategory(category string) ([]models.Discount, error) {
	var discounts []models.Discount
	if err := r.db.Find(&discounts, "category = ?", category).Error; err != nil {
		return nil, err
	}
	return discounts, nil
}

// Create creates a new discount in the database.
func (r *GORMDiscountRepository) Create(discount *models.Discount) error {
	if discount.ID == "" {
		discount.ID = uuid.New().String()
	}
	return r.db.Create(discount).Error
}

// Update updates an existing discount in the database.
func (r *GORMDiscountRepository) Update(discount *models.Discount) error {
	res := r.db.Save(discount)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("discount with ID %s not found", discount.ID)
	}
	return nil
}

// Delete deletes a discount by its ID from the database.
func (r *GORMDiscountRepository) Delete(id string) error {
	res := r.db.Delete(&models.Discount{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("discount with ID %s not found", id)
	}
	return nil
}

// GORMDealRepository is a GORM implementation of DealRepository.
type GORMDealRepository struct {
	db *gorm.DB
}

// NewGORMDealRepository creates a new instance of GORMDealRepository.
func NewGORMDealRepository(db *gorm.DB) *GORMDealRepository {
	return &GORMDealRepository{
		db: db,
	}
}

// GetAll retrieves all deals from the database.
func (r *GORMDealRepository) GetAll() ([]models.Deal, error) {
	var deals []models.Deal
	if err := r.db.Find(&deals).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// GetByID retrieves a single deal by its ID from the database.
func (r *GORMDealRepository) GetByID(id string) (*models.Deal, error) {
	var deal models.Deal
	if err := r.db.First(&deal, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, models.NewNotFoundError("deal with ID %s not found", id)
		}
		return nil, err
	}
	return &deal, nil
}

// GetByProductID retrieves all deals targeting a product.
func (r *GORMDealRepository) GetByProductID(productID string) ([]models.Deal, error) {
	var deals []models.Deal
	if err := r.db.Find(&deals, "product_id = ?", productID).Error; err != nil {
		return nil, err
	}
	return deals, nil
}

// Create creates a new deal in the database.
func (r *GORMDealRepository) Create(deal *models.Deal) error {
	if deal.ID == "" {
		deal.ID = uuid.New().String()
	}
	return r.db.Create(deal).Error
}

// Update updates an existing deal in the database.
func (r *GORMDealRepository) Update(deal *models.Deal) error {
	res := r.db.Save(deal)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("deal with ID %s not found", deal.ID)
	}
	return nil
}

// Delete deletes a deal by its ID from the database.
func (r *GORMDealRepository) Delete(id string) error {
	res := r.db.Delete(&models.Deal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("deal with ID %s not found", id)
	}
	return nil
}
