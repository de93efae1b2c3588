package handlers

import (
	"log"

	"gerai/internal/models"
	"gerai/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PromotionHandler handles HTTP requests for coupons, category discounts and
// deals.
type PromotionHandler struct {
	service *services.PromotionService
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(service *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the promotion management routes.
func (h *PromotionHandler) RegisterAdminRoutes(router fiber.Router) {
	couponRoutes := router.Group("/coupons")
	couponRoutes.Get("/", h.HandleGetCoupons)
	couponRoutes.Get("/:code", h.HandleGetCoupon)
	couponRoutes.Post("/", h.HandleCreateCoupon)
	couponRoutes.Put("/:code", h.HandleUpdateCoupon)
	couponRoutes.Delete("/:code", h.HandleDeleteCoupon)

	discountRoutes := router.Group("/discounts")
	discountRoutes.Get("/", h.HandleGetDiscounts)
	discountRoutes.Post("/", h.HandleCreateDiscount)
	discountRoutes.Put("/:id", h.HandleUpdateDiscount)
	discountRoutes.Delete("/:id", h.HandleDeleteDiscount)

	dealRoutes := router.Group("/deals")
	dealRoutes.Get("/", h.HandleGetDeals)
	dealRoutes.Post("/", h.HandleCreateDeal)
	dealRoutes.Put("/:id", h.HandleUpdateDeal)
	dealRoutes.Delete("/:id", h.HandleDeleteDeal)
}

// HandleGetCoupons retrieves all coupons.
func (h *PromotionHandler) HandleGetCoupons(c *fiber.Ctx) error {
	coupons, err := h.service.GetAllCoupons()
	if err != nil {
		log.Printf("Error getting all coupons: %v", err)
		return respondError(c, err, "Could not retrieve coupons")
	}
	return c.JSON(coupons)
}

// HandleGetCoupon retrieves a single coupon by code.
func (h *PromotionHandler) HandleGetCoupon(c *fiber.Ctx) error {
	code := c.Params("code")
	coupon, err := h.service.GetCoupon(code)
	if err != nil {
		log.Printf("Error getting coupon %s: %v", code, err)
		return respondError(c, err, "Could not retrieve coupon")
	}
	return c.JSON(coupon)
}

// HandleCreateCoupon creates a new coupon.
func (h *PromotionHandler) HandleCreateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		log.Printf("Error parsing create coupon request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateCoupon(&coupon); err != nil {
		log.Printf("Error creating coupon: %v", err)
		return respondError(c, err, "Could not create coupon")
	}

	return c.Status(fiber.StatusCreated).JSON(coupon)
}

// HandleUpdateCoupon updates an existing coupon.
func (h *PromotionHandler) HandleUpdateCoupon(c *fiber.Ctx) error {
	var coupon models.Coupon
	if err := c.BodyParser(&coupon); err != nil {
		log.Printf("Error parsing update coupon request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	coupon.Code = c.Params("code")

	if err := h.service.UpdateCoupon(&coupon); err != nil {
		log.Printf("Error updating coupon %s: %v", coupon.Code, err)
		return respondError(c, err, "Could not update coupon")
	}

	return c.JSON(coupon)
}

// HandleDeleteCoupon deletes a coupon by code.
func (h *PromotionHandler) HandleDeleteCoupon(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.service.DeleteCoupon(code); err != nil {
		log.Printf("Error deleting coupon %s: %v", code, err)
		return respondError(c, err, "Could not delete coupon")
	}
	return c.JSON(fiber.Map{
		"message": "Coupon deleted successfully",
	})
}

// HandleGetDiscounts retrieves all category discounts.
func (h *PromotionHandler) HandleGetDiscounts(c *fiber.Ctx) error {
	discounts, err := h.service.GetAllDiscounts()
	if err != nil {
		log.Printf("Error getting all discounts: %v", err)
		return respondError(c, err, "Could not retrieve discounts")
	}
	return c.JSON(discounts)
}

// HandleCreateDiscount creates a new category discount.
func (h *PromotionHandler) HandleCreateDiscount(c *fiber.Ctx) error {
	var discount models.Discount
	if err := c.BodyParser(&discount); err != nil {
		log.Printf("Error parsing create discount request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateDiscount(&discount); err != nil {
		log.Printf("Error creating discount: %v", err)
		return respondError(c, err, "Could not create discount")
	}

	return c.Status(fiber.StatusCreated).JSON(discount)
}

// HandleUpdateDiscount updates an existing category discount.
func (h *PromotionHandler) HandleUpdateDiscount(c *fiber.Ctx) error {
	var discount models.Discount
	if err := c.BodyParser(&discount); err != nil {
		log.Printf("Error parsing update discount request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	discount.ID = c.Params("id")

	if err := h.service.UpdateDiscount(&discount); err != nil {
		log.Printf("Error updating discount %s: %v", discount.ID, err)
		return respondError(c, err, "Could not update discount")
	}

	return c.JSON(discount)
}

// HandleDeleteDiscount deletes a discount by ID.
func (h *PromotionHandler) HandleDeleteDiscount(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteDiscount(id); err != nil {
		log.Printf("Error deleting discount %s: %v", id, err)
		return respondError(c, err, "Could not delete discount")
	}
	return c.JSON(fiber.Map{
		"message": "Discount deleted successfully",
	})
}

// HandleGetDeals retrieves all deals.
func (h *PromotionHandler) HandleGetDeals(c *fiber.Ctx) error {
	deals, err := h.service.GetAllDeals()
	if err != nil {
		log.Printf("Error getting all deals: %v", err)
		return respondError(c, err, "Could not retrieve deals")
	}
	return c.JSON(deals)
}

// HandleCreateDeal creates a new deal.
func (h *PromotionHandler) HandleCreateDeal(c *fiber.Ctx) error {
	var deal models.Deal
	if err := c.BodyParser(&deal); err != nil {
		log.Printf("Error parsing create deal request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateDeal(&deal); err != nil {
		log.Printf("Error creating deal: %v", err)
		return respondError(c, err, "Could not create deal")
	}

	return c.Status(fiber.StatusCreated).JSON(deal)
}

// HandleUpdateDeal updates an existing deal.
func (h *PromotionHandler) HandleUpdateDeal(c *fiber.Ctx) error {
	var deal models.Deal
	if err := c.BodyParser(&deal); err != nil {
		log.Printf("Error parsing update deal request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	deal.ID = c.Params("id")

	if err := h.service.UpdateDeal(&deal); err != nil {
		log.Printf("Error updating deal %s: %v", deal.ID, err)
		return respondError(c, err, "Could not update deal")
	}

	return c.JSON(deal)
}

// HandleDeleteDeal deletes a deal by ID.
func (h *PromotionHandler) HandleDeleteDeal(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteDeal(id); err != nil {
		log.Printf("Error deleting deal %s: %v", id, err)
		return respondError(c, err, "Could not delete deal")
	}
	return c.JSON(fiber.Map{
		"message": "Deal deleted successfully",
	})
}
