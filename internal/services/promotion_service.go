package services

import (
	"time"

	"gerai/internal/models"
	"gerai/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// PromotionService is the promotion registry: it stores coupons, category
// discounts and per-product deals, validates them on write, and answers
// "is this record eligible right now". The clock is injectable so the
// eligibility windows are testable.
type PromotionService struct {
	couponRepo   repositories.CouponRepository
	discountRepo repositories.DiscountRepository
	dealRepo     repositories.DealRepository
	productRepo  repositories.ProductRepository
	validate     *validator.Validate
	now          func() time.Time
}

// NewPromotionService creates a new PromotionService using the wall clock.
func NewPromotionService(couponRepo repositories.CouponRepository, discountRepo repositories.DiscountRepository, dealRepo repositories.DealRepository, productRepo repositories.ProductRepository) *PromotionService {
	return &PromotionService{
		couponRepo:   couponRepo,
		discountRepo: discountRepo,
		dealRepo:     dealRepo,
		productRepo:  productRepo,
		validate:     validator.New(),
		now:          time.Now,
	}
}

// WithClock overrides the service's clock. Intended for tests.
func (s *PromotionService) WithClock(now func() time.Time) *PromotionService {
	s.now = now
	return s
}

// Now returns the service's current time.
func (s *PromotionService) Now() time.Time {
	return s.now()
}

func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return models.NewValidationError("start date must not be after end date")
	}
	return nil
}

// CreateCoupon validates and stores a coupon.
func (s *PromotionService) CreateCoupon(coupon *models.Coupon) error {
	if err := s.validateCoupon(coupon); err != nil {
		return err
	}
	return s.couponRepo.Create(coupon)
}

// UpdateCoupon validates and updates a coupon.
func (s *PromotionService) UpdateCoupon(coupon *models.Coupon) error {
	if err := s.validateCoupon(coupon); err != nil {
		return err
	}
	return s.couponRepo.Update(coupon)
}

func (s *PromotionService) validateCoupon(coupon *models.Coupon) error {
	if err := s.validate.Struct(coupon); err != nil {
		return models.NewValidationError("invalid coupon: %v", err)
	}
	if coupon.DiscountType == models.DiscountPercentage && coupon.DiscountValue > 100 {
		return models.NewValidationError("percentage discount value must not exceed 100")
	}
	return validateWindow(coupon.StartDate, coupon.EndDate)
}

// GetAllCoupons retrieves all coupons.
func (s *PromotionService) GetAllCoupons() ([]models.Coupon, error) {
	return s.couponRepo.GetAll()
}

// GetCoupon retrieves a coupon by code.
func (s *PromotionService) GetCoupon(code string) (*models.Coupon, error) {
	return s.couponRepo.GetByCode(code)
}

// DeleteCoupon removes a coupon by code.
func (s *PromotionService) DeleteCoupon(code string) error {
	return s.couponRepo.Delete(code)
}

// EligibleCoupon looks up a coupon and checks it against the service clock.
// Returns a ValidationError for both a missing code and an ineligible record,
// so callers cannot probe which codes exist.
func (s *PromotionService) EligibleCoupon(code string, now time.Time) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByCode(code)
	if err != nil {
		if _, ok := err.(*models.NotFoundError); ok {
			return nil, models.NewValidationError("coupon not found or not eligible")
		}
		return nil, err
	}
	if !coupon.EligibleAt(now) {
		return nil, models.NewValidationError("coupon not found or not eligible")
	}
	return coupon, nil
}

// Redeem consumes one use of the coupon, atomically. The loser of a race for
// the last allowed use gets a ConflictError.
func (s *PromotionService) Redeem(code string) (*models.Coupon, error) {
	return s.couponRepo.Redeem(code)
}

// Unredeem compensates an aborted checkout by giving back one use.
func (s *PromotionService) Unredeem(code string) error {
	return s.couponRepo.Unredeem(code)
}

// CreateDiscount validates and stores a category discount.
func (s *PromotionService) CreateDiscount(discount *models.Discount) error {
	if err := s.validateDiscount(discount); err != nil {
		return err
	}
	return s.discountRepo.Create(discount)
}

// UpdateDiscount validates and updates a category discount.
func (s *PromotionService) UpdateDiscount(discount *models.Discount) error {
	if err := s.validateDiscount(discount); err != nil {
		return err
	}
	return s.discountRepo.Update(discount)
}

func (s *PromotionService) validateDiscount(discount *models.Discount) error {
	if err := s.validate.Struct(discount); err != nil {
		return models.NewValidationError("invalid discount: %v", err)
	}
	if discount.DiscountType == models.DiscountPercentage && discount.DiscountValue > 100 {
		return models.NewValidationError("percentage discount value must not exceed 100")
	}
	return validateWindow(discount.StartDate, discount.EndDate)
}

// GetAllDiscounts retrieves all category discounts.
func (s *PromotionService) GetAllDiscounts() ([]models.Discount, error) {
	return s.discountRepo.GetAll()
}

// DeleteDiscount removes a discount by ID.
func (s *PromotionService) DeleteDiscount(id string) error {
	return s.discountRepo.Delete(id)
}

// ActiveDiscountForCategory returns the first discount eligible for the
// category at the given time, or nil when none applies.
func (s *PromotionService) ActiveDiscountForCategory(category string, now time.Time) (*models.Discount, error) {
	discounts, err := s.discountRepo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	for i := range discounts {
		if discounts[i].EligibleAt(now) {
			return &discounts[i], nil
		}
	}
	return nil, nil
}

// CreateDeal validates and stores a deal.
func (s *PromotionService) CreateDeal(deal *models.Deal) error {
	if err := s.validateDeal(deal); err != nil {
		return err
	}
	return s.dealRepo.Create(deal)
}

// UpdateDeal validates and updates a deal.
func (s *PromotionService) UpdateDeal(deal *models.Deal) error {
	if err := s.validateDeal(deal); err != nil {
		return err
	}
	return s.dealRepo.Update(deal)
}

func (s *PromotionService) validateDeal(deal *models.Deal) error {
	if err := s.validate.Struct(deal); err != nil {
		return models.NewValidationError("invalid deal: %v", err)
	}
	if err := validateWindow(deal.StartDate, deal.EndDate); err != nil {
		return err
	}
	product, err := s.productRepo.GetByID(deal.ProductID)
	if err != nil {
		return err
	}
	// A deal that does not undercut the list price is a data-entry mistake.
	if deal.SalePrice >= product.Price {
		return models.NewValidationError("sale price must be below the product price")
	}
	return nil
}

// GetAllDeals retrieves all deals.
func (s *PromotionService) GetAllDeals() ([]models.Deal, error) {
	return s.dealRepo.GetAll()
}

// DeleteDeal removes a deal by ID.
func (s *PromotionService) DeleteDeal(id string) error {
	return s.dealRepo.Delete(id)
}

// ActiveDealForProduct returns the first deal eligible for the product at the
// given time, or nil when none applies.
func (s *PromotionService) ActiveDealForProduct(productID string, now time.Time) (*models.Deal, error) {
	deals, err := s.dealRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	for i := range deals {
		if deals[i].EligibleAt(now) {
			return &deals[i], nil
		}
	}
	return nil, nil
}
