package repositories

import (
	"sync"
	"time"

	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockStockMovementRepository is an in-memory implementation of
// StockMovementRepository.
type MockStockMovementRepository struct {
	movements []models.StockMovement
	mu        sync.RWMutex
}

// NewMockStockMovementRepository creates a new instance of
// MockStockMovementRepository.
func NewMockStockMovementRepository() *MockStockMovementRepository {
	return &MockStockMovementRepository{}
}

// Create appends a movement to the trail.
func (r *MockStockMovementRepository) Create(movement *models.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now()
	}
	r.movements = append(r.movements, *movement)
	return nil
}

// GetByProductID returns the movements recorded for a product, oldest first.
func (r *MockStockMovementRepository) GetByProductID(productID string) ([]models.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			matched = append(matched, m)
		}
	}
	return matched, nil
}
