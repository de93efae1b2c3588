package services

import (
	"encoding/json"
	"log"
	"time"

	"gerai/internal/models"
	"gerai/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes order events to the message broker. Satisfied by
// *rabbitmq.Client; mocked in tests.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService owns the order lifecycle. It composes the pricing resolver,
// the inventory ledger and the promotion registry into the two operations
// with real failure modes: checkout (price, reserve stock, redeem coupon,
// persist — with compensating rollback at every step) and status transition
// (legality table plus the stock-release side effect of cancellation).
type OrderService struct {
	orderRepo  repositories.OrderRepository
	pricing    *PricingService
	inventory  *InventoryService
	promotions *PromotionService
	mqClient   EventPublisher
	now        func() time.Time
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, pricing *PricingService, inventory *InventoryService, promotions *PromotionService, mqClient EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		pricing:    pricing,
		inventory:  inventory,
		promotions: promotions,
		mqClient:   mqClient,
		now:        time.Now,
	}
}

// WithClock overrides the service's clock. Intended for tests.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Preview prices a cart without any side effects: nothing is reserved and no
// coupon usage is consumed, so the same request gives the same answer as long
// as the promotion records do not change.
func (s *OrderService) Preview(items []models.CartItem, couponCode string) (*models.PricedOrder, error) {
	return s.pricing.Quote(items, couponCode, s.now())
}

// CreateOrder runs checkout as one logical unit: price the cart, reserve
// stock per line, consume the coupon, persist the order, publish the event.
// Any failure unwinds everything done so far — a checkout either commits
// fully or leaves stock and coupon usage untouched.
func (s *OrderService) CreateOrder(userID string, items []models.CartItem, couponCode string) (*models.Order, error) {
	now := s.now()

	priced, err := s.pricing.Quote(items, couponCode, now)
	if err != nil {
		return nil, err
	}

	// Reserve stock line by line; on failure, put back what was taken. The
	// coupon has not been consumed yet at this point, so a stock failure
	// costs nothing.
	reserved := make([]models.PricedItem, 0, len(priced.Items))
	rollbackStock := func() {
		for _, line := range reserved {
			if _, rbErr := s.inventory.Release(line.ProductID, line.Quantity); rbErr != nil {
				log.Printf("Warning: failed to roll back reservation of product %s: %v", line.ProductID, rbErr)
			}
		}
	}
	for _, line := range priced.Items {
		if _, err := s.inventory.Reserve(line.ProductID, line.Quantity); err != nil {
			rollbackStock()
			return nil, err
		}
		reserved = append(reserved, line)
	}

	// Consume the coupon last among the guarded steps: if the cap was lost to
	// a concurrent checkout the reservation above is undone and the whole
	// operation fails with the ConflictError.
	if couponCode != "" {
		if _, err := s.promotions.Redeem(couponCode); err != nil {
			rollbackStock()
			return nil, err
		}
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		Status:        models.StatusPending,
		CouponCode:    couponCode,
		ItemsSubtotal: priced.ItemsSubtotal,
		DiscountTotal: priced.DiscountTotal,
		ShippingTotal: priced.ShippingTotal,
		GrandTotal:    priced.GrandTotal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, line := range priced.Items {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:           order.ID,
			ProductID:         line.ProductID,
			Quantity:          line.Quantity,
			UnitPrice:         line.UnitPrice,
			AppliedPromotions: line.AppliedPromotions,
		})
	}

	if err := s.orderRepo.Create(order); err != nil {
		if couponCode != "" {
			if rbErr := s.promotions.Unredeem(couponCode); rbErr != nil {
				log.Printf("Warning: failed to roll back coupon %s: %v", couponCode, rbErr)
			}
		}
		rollbackStock()
		return nil, err
	}

	s.publish("order.created", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.GrandTotal,
	})

	return order, nil
}

// Transition moves an order to the requested status, enforcing the legality
// table and performing the cancellation side effect. The status change and
// the stock release succeed or fail together.
func (s *OrderService) Transition(orderID string, requestedStatus string, note string) (*models.Order, error) {
	requested, err := models.ParseOrderStatus(requestedStatus)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(requested) {
		return nil, models.NewStateError("illegal transition from %s to %s", order.Status, requested)
	}

	now := s.now()
	previous := order.Status

	// Cancelling releases every line's stock exactly once, and reopening a
	// cancelled order takes the stock back. The pairing keeps releases backed
	// by reservations: cancel, reset to pending, cancel again releases what
	// the reset re-reserved, never more.
	var released, reserved []models.OrderItem
	if requested == models.StatusCancelled {
		for _, item := range order.Items {
			if _, err := s.inventory.Release(item.ProductID, item.Quantity); err != nil {
				// Re-reserve what was already released so the failed
				// transition leaves stock untouched.
				s.rereserve(released)
				return nil, err
			}
			released = append(released, item)
		}
	}
	if previous == models.StatusCancelled && requested == models.StatusPending {
		for _, item := range order.Items {
			if _, err := s.inventory.Reserve(item.ProductID, item.Quantity); err != nil {
				// The stock was sold in the meantime; the reset fails and the
				// order stays cancelled.
				s.release(reserved)
				return nil, err
			}
			reserved = append(reserved, item)
		}
	}

	order.Status = requested
	order.UpdatedAt = now
	if requested == models.StatusDelivered {
		order.IsDelivered = true
		deliveredAt := now
		order.DeliveredAt = &deliveredAt
	}
	order.StatusHistory = append(order.StatusHistory, models.StatusChange{
		OrderID:   order.ID,
		From:      previous,
		To:        requested,
		Note:      note,
		ChangedAt: now,
	})

	if err := s.orderRepo.Update(order); err != nil {
		s.rereserve(released)
		s.release(reserved)
		return nil, err
	}

	event := "order.status_changed"
	if requested == models.StatusCancelled {
		event = "order.cancelled"
	}
	s.publish(event, map[string]interface{}{
		"orderID": order.ID,
		"from":    previous,
		"to":      order.Status,
		"note":    note,
	})

	return order, nil
}

// MarkPaid is the payment-confirmation hook. Payment is an orthogonal flag,
// not a status: confirming payment stamps IsPaid/PaidAt and leaves the
// lifecycle untouched. A second confirmation is a StateError.
func (s *OrderService) MarkPaid(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.IsPaid {
		return nil, models.NewStateError("order %s is already paid", orderID)
	}

	now := s.now()
	order.IsPaid = true
	order.PaidAt = &now
	order.UpdatedAt = now

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	s.publish("order.paid", map[string]interface{}{
		"orderID": order.ID,
		"paidAt":  now,
	})

	return order, nil
}

func (s *OrderService) rereserve(items []models.OrderItem) {
	for _, item := range items {
		if _, err := s.inventory.Reserve(item.ProductID, item.Quantity); err != nil {
			log.Printf("Warning: failed to re-reserve product %s during rollback: %v", item.ProductID, err)
		}
	}
}

func (s *OrderService) release(items []models.OrderItem) {
	for _, item := range items {
		if _, err := s.inventory.Release(item.ProductID, item.Quantity); err != nil {
			log.Printf("Warning: failed to release product %s during rollback: %v", item.ProductID, err)
		}
	}
}

func (s *OrderService) publish(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("order", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
