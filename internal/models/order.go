package models

import "time"

// OrderStatus is the closed set of order lifecycle states. "Paid" is
// deliberately not a status: payment is an orthogonal flag on the order
// (IsPaid/PaidAt), stamped by the payment-confirmation hook.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipping   OrderStatus = "shipping"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// ParseOrderStatus converts a raw string into an OrderStatus, rejecting
// anything outside the closed set.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipping, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", NewValidationError("unknown order status: %s", s)
}

// IsTerminal reports whether no further forward transition is possible from
// this status. Terminal orders may only be reset to pending, explicitly.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo is the transition table. A status never transitions to
// itself; a terminal status only allows the manual reset to pending; between
// non-terminal statuses any move is legal, including straight to cancelled.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s == target {
		return false
	}
	if s.IsTerminal() {
		return target == StatusPending
	}
	return true
}

// OrderItem is a single line of an order. UnitPrice is the price actually
// charged, frozen at order-creation time, so later changes to deals or
// discounts never retroactively alter an existing order.
type OrderItem struct {
	ID                uint     `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID           string   `json:"-" gorm:"index;type:varchar(36)"`
	ProductID         string   `json:"product_id" gorm:"type:varchar(36)"`
	Quantity          int      `json:"quantity"`
	UnitPrice         float64  `json:"unit_price"`
	AppliedPromotions []string `json:"applied_promotions,omitempty" gorm:"serializer:json"`
}

// StatusChange is one entry of an order's status trail.
type StatusChange struct {
	ID        uint        `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string      `json:"-" gorm:"index;type:varchar(36)"`
	From      OrderStatus `json:"from" gorm:"type:varchar(20)"`
	To        OrderStatus `json:"to" gorm:"type:varchar(20)"`
	Note      string      `json:"note,omitempty"`
	ChangedAt time.Time   `json:"changed_at"`
}

// Order represents a customer order. Created once at checkout and mutated
// only through the order service's transition and payment hooks; orders are
// never deleted, only moved to a terminal status.
type Order struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string         `json:"user_id" gorm:"index;type:varchar(36)"`
	Items         []OrderItem    `json:"items" gorm:"foreignKey:OrderID"`
	Status        OrderStatus    `json:"status" gorm:"type:varchar(20)"`
	StatusHistory []StatusChange `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CouponCode    string         `json:"coupon_code,omitempty"`
	ItemsSubtotal float64        `json:"items_subtotal"`
	DiscountTotal float64        `json:"discount_total"`
	ShippingTotal float64        `json:"shipping_total"`
	GrandTotal    float64        `json:"grand_total"`
	IsPaid        bool           `json:"is_paid"`
	PaidAt        *time.Time     `json:"paid_at,omitempty"`
	IsDelivered   bool           `json:"is_delivered"`
	DeliveredAt   *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// CartItem is what a caller submits at checkout: just a product reference and
// a quantity. Prices and promotions are resolved server-side.
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}
