package models

import (
	"time"

	"gorm.io/gorm"
)

// DiscountType says how a coupon or discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// withinWindow checks an eligibility window; either bound may be unset.
func withinWindow(start, end *time.Time, now time.Time) bool {
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && now.After(*end) {
		return false
	}
	return true
}

// Coupon is a code-redeemable, time-bounded, usage-capped reduction applied
// at order level. MaxUsage 0 means unlimited. MaxDiscount caps the amount a
// percentage coupon may take off; it is ignored for fixed coupons.
type Coupon struct {
	ID            string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Code          string       `json:"code" gorm:"uniqueIndex;type:varchar(64)" validate:"required,min=3,max=64"`
	DiscountType  DiscountType `json:"discount_type" gorm:"type:varchar(20)" validate:"required,oneof=percentage fixed"`
	DiscountValue float64      `json:"discount_value" validate:"required,gt=0"`
	MinPurchase   float64      `json:"min_purchase" validate:"gte=0"`
	MaxDiscount   float64      `json:"max_discount" validate:"gte=0"`
	MaxUsage      int          `json:"max_usage" validate:"gte=0"`
	UsageCount    int          `json:"usage_count"`
	StartDate     *time.Time   `json:"start_date,omitempty"`
	EndDate       *time.Time   `json:"end_date,omitempty"`
	IsActive      bool         `json:"is_active"`
	gorm.Model
}

// EligibleAt reports whether the coupon may be applied at the given moment:
// active, inside its window, and not exhausted. Computed on read, never
// stored.
func (c *Coupon) EligibleAt(now time.Time) bool {
	if !c.IsActive || !withinWindow(c.StartDate, c.EndDate, now) {
		return false
	}
	if c.MaxUsage > 0 && c.UsageCount >= c.MaxUsage {
		return false
	}
	return true
}

// Discount is a time-bounded reduction scoped to a product category. Same
// shape as a coupon but applied per line, never redeemed by code, and with no
// usage cap.
type Discount struct {
	ID            string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Category      string       `json:"category" gorm:"index;type:varchar(100)" validate:"required,min=2,max=100"`
	DiscountType  DiscountType `json:"discount_type" gorm:"type:varchar(20)" validate:"required,oneof=percentage fixed"`
	DiscountValue float64      `json:"discount_value" validate:"required,gt=0"`
	MaxDiscount   float64      `json:"max_discount" validate:"gte=0"`
	StartDate     *time.Time   `json:"start_date,omitempty"`
	EndDate       *time.Time   `json:"end_date,omitempty"`
	IsActive      bool         `json:"is_active"`
	gorm.Model
}

// EligibleAt reports whether the discount applies at the given moment.
func (d *Discount) EligibleAt(now time.Time) bool {
	return d.IsActive && withinWindow(d.StartDate, d.EndDate, now)
}

// Deal is a time-bounded override of a single product's unit price. While a
// deal is eligible the product sells at SalePrice instead of its list price.
type Deal struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string     `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	SalePrice float64    `json:"sale_price" validate:"required,gt=0"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsActive  bool       `json:"is_active"`
	gorm.Model
}

// EligibleAt reports whether the deal applies at the given moment.
func (d *Deal) EligibleAt(now time.Time) bool {
	return d.IsActive && withinWindow(d.StartDate, d.EndDate, now)
}

// PricedItem is one priced cart line: the unit price actually charged and the
// promotion ids that produced it.
type PricedItem struct {
	ProductID         string   `json:"product_id"`
	Quantity          int      `json:"quantity"`
	UnitPrice         float64  `json:"unit_price"`
	LineTotal         float64  `json:"line_total"`
	AppliedPromotions []string `json:"applied_promotions,omitempty"`
}

// PricedOrder is the result of running a cart through the pricing pipeline.
// All amounts are snapshots: later changes to coupon, discount or deal
// records never alter an order priced from this.
type PricedOrder struct {
	Items         []PricedItem `json:"items"`
	CouponCode    string       `json:"coupon_code,omitempty"`
	ItemsSubtotal float64      `json:"items_subtotal"`
	DiscountTotal float64      `json:"discount_total"`
	ShippingTotal float64      `json:"shipping_total"`
	GrandTotal    float64      `json:"grand_total"`
}
