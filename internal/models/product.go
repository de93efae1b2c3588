package models

import "gorm.io/gorm"

// Product represents a product in the store. Stock is never negative; every
// change to it goes through the inventory service so it can be audited.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Category    string  `json:"category" gorm:"index;type:varchar(100)" validate:"required,min=2,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
