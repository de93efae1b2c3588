package handlers

import (
	"log"

	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for stock adjustments and the
// movement audit trail.
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the inventory routes.
func (h *InventoryHandler) RegisterAdminRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Post("/:productId/adjust", h.HandleAdjust)
	inventoryRoutes.Get("/:productId/movements", h.HandleGetMovements)
}

// AdjustRequest is the payload for a stock adjustment.
type AdjustRequest struct {
	Delta  int    `json:"delta"`
	Reason string `json:"reason"`
}

// HandleAdjust applies a stock adjustment and returns the new stock level.
func (h *InventoryHandler) HandleAdjust(c *fiber.Ctx) error {
	productID := c.Params("productId")
	var req AdjustRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing adjust request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	newStock, err := h.service.Adjust(productID, req.Delta, models.StockReason(req.Reason))
	if err != nil {
		log.Printf("Error adjusting stock for product %s: %v", productID, err)
		return respondError(c, err, "Could not adjust stock")
	}

	return c.JSON(fiber.Map{
		"product_id": productID,
		"stock":      newStock,
	})
}

// HandleGetMovements returns the audit trail for a product.
func (h *InventoryHandler) HandleGetMovements(c *fiber.Ctx) error {
	productID := c.Params("productId")
	movements, err := h.service.Movements(productID)
	if err != nil {
		log.Printf("Error getting movements for product %s: %v", productID, err)
		return respondError(c, err, "Could not retrieve stock movements")
	}
	return c.JSON(movements)
}
