package handlers

import (
	"log"

	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Post("/preview", h.HandlePreview)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", h.HandleTransition)
	orderRoutes.Post("/:id/paid", h.HandleMarkPaid)
}

// CreateOrderRequest is the checkout payload: cart lines plus an optional
// coupon code.
type CreateOrderRequest struct {
	UserID     string            `json:"user_id"`
	Items      []models.CartItem `json:"items"`
	CouponCode string            `json:"coupon_code,omitempty"`
}

// HandleGetOrders retrieves all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return respondError(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleCreateOrder runs checkout: prices the cart, reserves stock, consumes
// the coupon and persists the order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.UserID == "" || len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "UserID and at least one item are required for an order.",
		})
	}

	createdOrder, err := h.service.CreateOrder(req.UserID, req.Items, req.CouponCode)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, err, "Could not create order")
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandlePreview prices a cart without side effects: nothing is reserved and
// no coupon usage is consumed.
func (h *OrderHandler) HandlePreview(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing preview request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if len(req.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "At least one item is required.",
		})
	}

	priced, err := h.service.Preview(req.Items, req.CouponCode)
	if err != nil {
		log.Printf("Error previewing order: %v", err)
		return respondError(c, err, "Could not price order")
	}

	return c.JSON(priced)
}

// TransitionRequest is the payload for a status change.
type TransitionRequest struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// HandleTransition moves an order to a new status.
func (h *OrderHandler) HandleTransition(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing transition request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	order, err := h.service.Transition(orderID, req.Status, req.Note)
	if err != nil {
		log.Printf("Error transitioning order %s to %s: %v", orderID, req.Status, err)
		return respondError(c, err, "Could not update order status")
	}

	return c.JSON(order)
}

// HandleMarkPaid is the payment-confirmation hook: it stamps the orthogonal
// paid flag and leaves the order status untouched.
func (h *OrderHandler) HandleMarkPaid(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.MarkPaid(orderID)
	if err != nil {
		log.Printf("Error marking order %s paid: %v", orderID, err)
		return respondError(c, err, "Could not confirm payment")
	}
	return c.JSON(order)
}
