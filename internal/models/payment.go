package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Payment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentID   string    `gorm:"uniqueIndex"` // business key
	InvoiceID   uuid.UUID `gorm:"type:uuid;index"`
	PaymentDate datatypes.Date
	Amount      float64 `gorm:"type:numeric(12,2)"`
	Method      string
}
