package repositories

import (
	"sync"

	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockCouponRepository is an in-memory implementation of CouponRepository.
// Redeem performs its check-then-increment inside the write lock, which is
// what makes the usage cap exact under concurrent redemption attempts.
type MockCouponRepository struct {
	coupons map[string]models.Coupon // keyed by code
	mu      sync.RWMutex
}

// NewMockCouponRepository creates a new instance of MockCouponRepository.
func NewMockCouponRepository() *MockCouponRepository {
	return &MockCouponRepository{
		coupons: make(map[string]models.Coupon),
	}
}

// GetAll returns all coupons.
func (r *MockCouponRepository) GetAll() ([]models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	couponList := make([]models.Coupon, 0, len(r.coupons))
	for _, c := range r.coupons {
		couponList = append(couponList, c)
	}
	return couponList, nil
}

// GetByCode returns a coupon by its code.
func (r *MockCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	coupon, ok := r.coupons[code]
	if !ok {
		return nil, models.NewNotFoundError("coupon with code %s not found", code)
	}
	return &coupon, nil
}

// Create adds a new coupon.
func (r *MockCouponRepository) Create(coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if coupon.ID == "" {
		coupon.ID = uuid.New().String()
	}
	if _, exists := r.coupons[coupon.Code]; exists {
		return models.NewValidationError("coupon with code %s already exists", coupon.Code)
	}
	r.coupons[coupon.Code] = *coupon
	return nil
}

// Update modifies an existing coupon.
func (r *MockCouponRepository) Update(coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.coupons[coupon.Code]
	if !ok {
		return models.NewNotFoundError("coupon with code %s not found", coupon.Code)
	}
	r.coupons[coupon.Code] = *coupon
	return nil
}

// Delete removes a coupon by its code.
func (r *MockCouponRepository) Delete(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.coupons[code]
	if !ok {
		return models.NewNotFoundError("coupon with code %s not found", code)
	}
	delete(r.coupons, code)
	return nil
}

// Redeem increments the coupon's usage count only while it is still below the
// cap. The loser of a race for the last allowed use gets a ConflictError.
func (r *MockCouponRepository) Redeem(code string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[code]
	if !ok {
		return nil, models.NewNotFoundError("coupon with code %s not found", code)
	}
	if coupon.MaxUsage > 0 && coupon.UsageCount >= coupon.MaxUsage {
		return nil, models.NewConflictError("coupon exhausted")
	}
	coupon.UsageCount++
	r.coupons[code] = coupon
	return &coupon, nil
}

// Unredeem gives back one usage after an aborted checkout.
func (r *MockCouponRepository) Unredeem(code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	coupon, ok := r.coupons[code]
	if !ok {
		return models.NewNotFoundError("coupon with code %s not found", code)
	}
	if coupon.UsageCount > 0 {
		coupon.UsageCount--
		r.coupons[code] = coupon
	}
	return nil
}

// MockDiscountRepository is an in-memory implementation of DiscountRepository.
type MockDiscountRepository struct {
	discounts map[string]models.Discount
	mu        sync.RWMutex
}

// NewMockDiscountRepository creates a new instance of MockDiscountRepository.
func NewMockDiscountRepository() *MockDiscountRepository {
	return &MockDiscountRepository{
		discounts: make(map[string]models.Discount),
	}
}

// GetAll returns all discounts.
func (r *MockDiscountRepository) GetAll() ([]models.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	discountList := make([]models.Discount, 0, len(r.discounts))
	for _, d := range r.discounts {
		discountList = append(discountList, d)
	}
	return discountList, nil
}

// GetByID returns a discount by its ID.
func (r *MockDiscountRepository) GetByID(id string) (*models.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	discount, ok := r.discounts[id]
	if !ok {
		return nil, models.NewNotFoundError("discount with ID %s not found", id)
	}
	return &discount, nil
}

// GetByCategory returns all discounts scoped to a category.
func (r *MockDiscountRepository) GetByCategory(category string) ([]models.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Discount
	for _, d := range r.discounts {
		if d.Category == category {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

// Create adds a new discount.
func (r *MockDiscountRepository) Create(discount *models.Discount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if discount.ID == "" {
		discount.ID = uuid.New().String()
	}
	r.discounts[discount.ID] = *discount
	return nil
}

// Update modifies an existing discount.
func (r *MockDiscountRepository) Update(discount *models.Discount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.discounts[discount.ID]
	if !ok {
		return models.NewNotFoundError("discount with ID %s not found", discount.ID)
	}
	r.discounts[discount.ID] = *discount
	return nil
}

// Delete removes a discount by its ID.
func (r *MockDiscountRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.discounts[id]
	if !ok {
		return models.NewNotFoundError("discount with ID %s not found", id)
	}
	delete(r.discounts, id)
	return nil
}

// MockDealRepository is an in-memory implementation of DealRepository.
type MockDealRepository struct {
	deals map[string]models.Deal
	mu    sync.RWMutex
}

// NewMockDealRepository creates a new instance of MockDealRepository.
func NewMockDealRepository() *MockDealRepository {
	return &MockDealRepository{
		deals: make(map[string]models.Deal),
	}
}

// GetAll returns all deals.
func (r *MockDealRepository) GetAll() ([]models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dealList := make([]models.Deal, 0, len(r.deals))
	for _, d := range r.deals {
		dealList = append(dealList, d)
	}
	return dealList, nil
}

// GetByID returns a deal by its ID.
func (r *MockDealRepository) GetByID(id string) (*models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deal, ok := r.deals[id]
	if !ok {
		return nil, models.NewNotFoundError("deal with ID %s not found", id)
	}
	return &deal, nil
}

// GetByProductID returns all deals targeting a product.
func (r *MockDealRepository) GetByProductID(productID string) ([]models.Deal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Deal
	for _, d := range r.deals {
		if d.ProductID == productID {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

// Create adds a new deal.
func (r *MockDealRepository) Create(deal *models.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if deal.ID == "" {
		deal.ID = uuid.New().String()
	}
	r.deals[deal.ID] = *deal
	return nil
}

// Update modifies an existing deal.
func (r *MockDealRepository) Update(deal *models.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.deals[deal.ID]
	if !ok {
		return models.NewNotFoundError("deal with ID %s not found", deal.ID)
	}
	r.deals[deal.ID] = *deal
	return nil
}

// Delete removes a deal by its ID.
func (r *MockDealRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.deals[id]
	if !ok {
		return models.NewNotFoundError("deal with ID %s not found", id)
	}
	delete(r.deals, id)
	return nil
}
