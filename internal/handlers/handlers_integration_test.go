package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gerai/internal/handlers"
	"gerai/internal/middleware"
	"gerai/internal/models"
	"gerai/internal/repositories"
	"gerai/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// setupApp wires a complete Fiber app against in-memory repositories, the
// same shape as the production wiring but without a broker or database. It
// returns the app plus a customer token and an admin token.
func setupApp(t *testing.T) (*fiber.App, string, string) {
	t.Helper()

	productRepo := repositories.NewMockProductRepository()
	orderRepo := repositories.NewMockOrderRepository()
	couponRepo := repositories.NewMockCouponRepository()
	discountRepo := repositories.NewMockDiscountRepository()
	dealRepo := repositories.NewMockDealRepository()
	movementRepo := repositories.NewMockStockMovementRepository()
	userRepo := repositories.NewMockUserRepository()

	inventoryService := services.NewInventoryService(productRepo, movementRepo)
	promotionService := services.NewPromotionService(couponRepo, discountRepo, dealRepo, productRepo)
	pricingService := services.NewPricingService(productRepo, promotionService)
	orderService := services.NewOrderService(orderRepo, pricingService, inventoryService, promotionService, nil)
	productService := services.NewProductService(productRepo)
	authService := services.NewAuthService(userRepo, "test_jwt_secret")

	app := fiber.New()
	apiV1 := app.Group("/api/v1")

	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)
	productHandler := handlers.NewProductHandler(productService)
	productHandler.RegisterRoutes(apiV1)

	authenticated := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewOrderHandler(orderService).RegisterRoutes(authenticated)

	admin := authenticated.Group("", middleware.AdminRequired())
	productHandler.RegisterAdminRoutes(admin)
	handlers.NewPromotionHandler(promotionService).RegisterAdminRoutes(admin)
	handlers.NewInventoryHandler(inventoryService).RegisterAdminRoutes(admin)

	// Seed the catalog and one coupon.
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "prod-1", Name: "Laptop", Category: "electronics", Price: 12000000, Stock: 10,
	}))
	assert.NoError(t, productRepo.Create(&models.Product{
		ID: "prod-2", Name: "Mouse", Category: "electronics", Price: 250000, Stock: 2,
	}))
	assert.NoError(t, couponRepo.Create(&models.Coupon{
		Code: "WELCOME10", DiscountType: models.DiscountPercentage, DiscountValue: 10,
		MaxUsage: 100, IsActive: true,
	}))

	// One customer and one admin, registered through the service so the
	// passwords are hashed the same way login expects.
	assert.NoError(t, authService.RegisterUser(&models.User{
		Username: "budi", Email: "budi@example.com", Password: "password123",
	}))
	assert.NoError(t, authService.RegisterUser(&models.User{
		Username: "admin", Email: "admin@example.com", Password: "admin12345", Role: models.RoleAdmin,
	}))

	customerToken := login(t, app, "budi", "password123")
	adminToken := login(t, app, "admin", "admin12345")
	return app, customerToken, adminToken
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := request(t, app, http.MethodPost, "/api/v1/auth/login", fiber.Map{
		"username": username,
		"password": password,
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	return body.Token
}

func request(t *testing.T, app *fiber.App, method, path string, payload interface{}, token string) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestPublicCatalog(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := request(t, app, http.MethodGet, "/api/v1/products/", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var products []models.Product
	decode(t, resp, &products)
	assert.Len(t, products, 2)
}

func TestOrdersRequireAuthentication(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := request(t, app, http.MethodGet, "/api/v1/orders/", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/v1/orders/", fiber.Map{
		"user_id": "budi",
		"items":   []fiber.Map{{"product_id": "prod-1", "quantity": 1}},
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesAreGated(t *testing.T) {
	app, customerToken, adminToken := setupApp(t)

	coupon := fiber.Map{
		"code": "FLASH", "discount_type": "fixed", "discount_value": 5000, "is_active": true,
	}

	resp := request(t, app, http.MethodPost, "/api/v1/coupons/", coupon, customerToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/v1/coupons/", coupon, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Same gate on inventory adjustments.
	adjust := fiber.Map{"delta": 5, "reason": "restock"}
	resp = request(t, app, http.MethodPost, "/api/v1/inventory/prod-1/adjust", adjust, customerToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/v1/inventory/prod-1/adjust", adjust, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var adjusted struct {
		Stock int `json:"stock"`
	}
	decode(t, resp, &adjusted)
	assert.Equal(t, 15, adjusted.Stock)
}

func TestCheckoutFlow(t *testing.T) {
	app, customerToken, _ := setupApp(t)

	// Preview first: nothing is consumed.
	payload := fiber.Map{
		"user_id":     "budi",
		"items":       []fiber.Map{{"product_id": "prod-1", "quantity": 1}},
		"coupon_code": "WELCOME10",
	}
	resp := request(t, app, http.MethodPost, "/api/v1/orders/preview", payload, customerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var priced models.PricedOrder
	decode(t, resp, &priced)
	assert.Equal(t, 10800000.0, priced.GrandTotal)

	// Checkout.
	resp = request(t, app, http.MethodPost, "/api/v1/orders/", payload, customerToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	decode(t, resp, &order)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 10800000.0, order.GrandTotal)

	// Walk the lifecycle and confirm payment.
	resp = request(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", fiber.Map{"status": "confirmed"}, customerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = request(t, app, http.MethodPost, "/api/v1/orders/"+order.ID+"/paid", nil, customerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var paid models.Order
	decode(t, resp, &paid)
	assert.True(t, paid.IsPaid)
	assert.Equal(t, models.StatusConfirmed, paid.Status)
}

func TestErrorStatusMapping(t *testing.T) {
	app, customerToken, _ := setupApp(t)

	// ValidationError -> 400: not enough stock.
	resp := request(t, app, http.MethodPost, "/api/v1/orders/", fiber.Map{
		"user_id": "budi",
		"items":   []fiber.Map{{"product_id": "prod-2", "quantity": 5}},
	}, customerToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// NotFoundError -> 404.
	resp = request(t, app, http.MethodGet, "/api/v1/orders/no-such-order", nil, customerToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// StateError -> 409: cancel twice.
	resp = request(t, app, http.MethodPost, "/api/v1/orders/", fiber.Map{
		"user_id": "budi",
		"items":   []fiber.Map{{"product_id": "prod-2", "quantity": 1}},
	}, customerToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var order models.Order
	decode(t, resp, &order)

	resp = request(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", fiber.Map{"status": "cancelled"}, customerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = request(t, app, http.MethodPatch, "/api/v1/orders/"+order.ID+"/status", fiber.Map{"status": "cancelled"}, customerToken)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterNeverGrantsAdmin(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := request(t, app, http.MethodPost, "/api/v1/auth/register", fiber.Map{
		"username": "sneaky", "email": "sneaky@example.com", "password": "password123",
		"role": "admin",
	}, "")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		User models.User `json:"user"`
	}
	decode(t, resp, &body)
	assert.Equal(t, models.RoleCustomer, body.User.Role)

	// The freshly registered customer still cannot reach admin routes.
	token := login(t, app, "sneaky", "password123")
	resp = request(t, app, http.MethodPost, "/api/v1/products/", fiber.Map{
		"name": "Backdoor", "category": "misc", "price": 1, "stock": 1,
	}, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
