package models

import (
	"github.com/google/uuid"
)

type LineItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID      string    `gorm:"uniqueIndex"` // business key
	InvoiceID   uuid.UUID `gorm:"type:uuid;index"`
	Description string
	Quantity    int
	UnitPrice   float64 `gorm:"type:numeric(12,2)"`
	Total       float64 `gorm:"type:numeric(12,2)"`
}
