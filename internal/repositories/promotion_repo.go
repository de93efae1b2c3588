package repositories

import (
	"gerai/internal/models"
)

// CouponRepository defines the interface for coupon data access.
//
// Redeem is the atomic "increment usage if still below cap" primitive: when
// two checkouts race for the last allowed use of a capped coupon, exactly one
// succeeds and the other gets a ConflictError. UsageCount never exceeds
// MaxUsage.
type CouponRepository interface {
	GetAll() ([]models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	Delete(code string) error
	// Redeem increments the usage count atomically and returns the updated
	// coupon, or a ConflictError if the cap has been reached.
	Redeem(code string) (*models.Coupon, error)
	// Unredeem gives back one usage, used to compensate an aborted checkout.
	Unredeem(code string) error
}

// DiscountRepository defines the interface for category discount data access.
type DiscountRepository interface {
	GetAll() ([]models.Discount, error)
	GetByID(id string) (*models.Discount, error)
	GetByCategory(category string) ([]models.Discount, error)
	Create(discount *models.Discount) error
	Update(discount *models.Discount) error
	Delete(id string) error
}

// DealRepository defines the interface for per-product deal data access.
type DealRepository interface {
	GetAll() ([]models.Deal, error)
	GetByID(id string) (*models.Deal, error)
	GetByProductID(productID string) ([]models.Deal, error)
	Create(deal *models.Deal) error
	Update(deal *models.Deal) error
	Delete(id string) error
}
