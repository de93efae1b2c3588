package services

import (
	"time"

	"gerai/internal/models"
	"gerai/internal/repositories"
)

// PricingService turns a cart into priced, promotion-annotated line items and
// an order total. Quote is pure: it reads the catalog and the promotion
// registry but redeems nothing and reserves nothing, so it doubles as the
// checkout preview.
//
// The pipeline order is fixed: deal price first, then the category discount
// per line, then the coupon against the order subtotal. No other stacking
// order is supported.
type PricingService struct {
	productRepo repositories.ProductRepository
	promotions  *PromotionService
}

// NewPricingService creates a new PricingService.
func NewPricingService(productRepo repositories.ProductRepository, promotions *PromotionService) *PricingService {
	return &PricingService{
		productRepo: productRepo,
		promotions:  promotions,
	}
}

// Quote prices the cart at the given moment. couponCode may be empty. Two
// calls with identical inputs and an identical now return identical output.
func (s *PricingService) Quote(items []models.CartItem, couponCode string, now time.Time) (*models.PricedOrder, error) {
	if len(items) == 0 {
		return nil, models.NewValidationError("cart must contain at least one item")
	}

	priced := &models.PricedOrder{CouponCode: couponCode}
	var listSubtotal float64

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, models.NewValidationError("item quantity must be positive")
		}

		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}

		line := models.PricedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		}

		// Step 1: an eligible deal overrides the unit price.
		deal, err := s.promotions.ActiveDealForProduct(item.ProductID, now)
		if err != nil {
			return nil, err
		}
		if deal != nil {
			line.UnitPrice = deal.SalePrice
			line.AppliedPromotions = append(line.AppliedPromotions, deal.ID)
		}
		line.LineTotal = line.UnitPrice * float64(item.Quantity)
		listSubtotal += line.LineTotal

		// Step 2: an eligible category discount reduces the line, never
		// below zero.
		discount, err := s.promotions.ActiveDiscountForCategory(product.Category, now)
		if err != nil {
			return nil, err
		}
		if discount != nil {
			reduction := discountAmount(discount.DiscountType, discount.DiscountValue, discount.MaxDiscount, line.LineTotal)
			if reduction > 0 {
				line.LineTotal -= reduction
				line.AppliedPromotions = append(line.AppliedPromotions, discount.ID)
			}
		}

		priced.Items = append(priced.Items, line)
		priced.ItemsSubtotal += line.LineTotal
	}

	// Step 3: the coupon reduces the order total, never the line subtotal.
	// ItemsSubtotal stays the sum of the line totals after steps 1–2.
	var couponReduction float64
	if couponCode != "" {
		coupon, err := s.promotions.EligibleCoupon(couponCode, now)
		if err != nil {
			return nil, err
		}
		if priced.ItemsSubtotal < coupon.MinPurchase {
			return nil, models.NewValidationError("minimum purchase not met")
		}
		couponReduction = discountAmount(coupon.DiscountType, coupon.DiscountValue, coupon.MaxDiscount, priced.ItemsSubtotal)
	}

	priced.DiscountTotal = listSubtotal - priced.ItemsSubtotal + couponReduction
	priced.GrandTotal = priced.ItemsSubtotal - couponReduction + priced.ShippingTotal
	return priced, nil
}

// discountAmount computes the reduction a percentage or fixed discount takes
// off base. A percentage reduction is capped at maxDiscount when the cap is
// set; either kind is capped at base itself so nothing ever goes negative.
func discountAmount(kind models.DiscountType, value, maxDiscount, base float64) float64 {
	var amount float64
	switch kind {
	case models.DiscountPercentage:
		amount = base * value / 100
		if maxDiscount > 0 && amount > maxDiscount {
			amount = maxDiscount
		}
	case models.DiscountFixed:
		amount = value
	}
	if amount > base {
		amount = base
	}
	return amount
}
