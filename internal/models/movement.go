package models

import "time"

// StockReason classifies a stock adjustment for the audit trail. It is
// recorded as-is and never branches business logic.
type StockReason string

const (
	ReasonRestock    StockReason = "restock"
	ReasonSale       StockReason = "sale"
	ReasonReturn     StockReason = "return"
	ReasonCorrection StockReason = "correction"
	ReasonDamaged    StockReason = "damaged"
	ReasonRelease    StockReason = "release"
)

// ParseStockReason converts a raw string into a StockReason.
func ParseStockReason(s string) (StockReason, error) {
	switch StockReason(s) {
	case ReasonRestock, ReasonSale, ReasonReturn, ReasonCorrection, ReasonDamaged, ReasonRelease:
		return StockReason(s), nil
	}
	return "", NewValidationError("unknown stock adjustment reason: %s", s)
}

// StockMovement is one audit entry of the inventory ledger: what changed,
// why, and the stock level after the change.
type StockMovement struct {
	ID             string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID      string      `json:"product_id" gorm:"index;type:varchar(36)"`
	Delta          int         `json:"delta"`
	Reason         StockReason `json:"reason" gorm:"type:varchar(20)"`
	ResultingStock int         `json:"resulting_stock"`
	CreatedAt      time.Time   `json:"created_at"`
}
