package services

import (
	"log"
	"time"

	"gerai/internal/models"
	"gerai/internal/repositories"
)

// InventoryService is the stock ledger: every change to a product's stock
// level goes through Adjust, which is atomic and keeps stock non-negative.
// Each successful adjustment is recorded as a StockMovement for audit.
type InventoryService struct {
	productRepo  repositories.ProductRepository
	movementRepo repositories.StockMovementRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(productRepo repositories.ProductRepository, movementRepo repositories.StockMovementRepository) *InventoryService {
	return &InventoryService{
		productRepo:  productRepo,
		movementRepo: movementRepo,
	}
}

// Adjust applies delta to the product's stock and returns the new level. The
// reason classifies the movement for audit and never branches the logic. An
// adjustment that would take stock below zero is rejected with a
// ValidationError and leaves stock unchanged.
func (s *InventoryService) Adjust(productID string, delta int, reason models.StockReason) (int, error) {
	if _, err := models.ParseStockReason(string(reason)); err != nil {
		return 0, err
	}
	if delta == 0 {
		return 0, models.NewValidationError("adjustment delta must be non-zero")
	}

	newStock, err := s.productRepo.AdjustStock(productID, delta)
	if err != nil {
		return 0, err
	}

	movement := &models.StockMovement{
		ProductID:      productID,
		Delta:          delta,
		Reason:         reason,
		ResultingStock: newStock,
		CreatedAt:      time.Now(),
	}
	if err := s.movementRepo.Create(movement); err != nil {
		// The adjustment itself succeeded; a lost audit row is logged, not
		// surfaced as a business failure.
		log.Printf("Warning: failed to record stock movement for product %s: %v", productID, err)
	}

	return newStock, nil
}

// Reserve takes quantity units out of stock at order creation.
func (s *InventoryService) Reserve(productID string, quantity int) (int, error) {
	return s.Adjust(productID, -quantity, models.ReasonSale)
}

// Release puts quantity units back into stock when an order is cancelled.
func (s *InventoryService) Release(productID string, quantity int) (int, error) {
	return s.Adjust(productID, quantity, models.ReasonRelease)
}

// Movements returns the audit trail for a product.
func (s *InventoryService) Movements(productID string) ([]models.StockMovement, error) {
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, err
	}
	return s.movementRepo.GetByProductID(productID)
}
