package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Invoice status values as they appear in the source dataset.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
	StatusOverdue = "overdue"
)

type Invoice struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	InvoiceID   string         `gorm:"uniqueIndex"` // business key, e.g. "INV-001"
	VendorID    uuid.UUID      `gorm:"type:uuid;index"`
	Vendor      Vendor         `gorm:"constraint:OnDelete:CASCADE"`
	CustomerID  uuid.UUID      `gorm:"type:uuid;index"`
	Customer    Customer       `gorm:"constraint:OnDelete:CASCADE"`
	InvoiceDate datatypes.Date `gorm:"index"`
	DueDate     datatypes.Date `gorm:"index"`
	TotalAmount float64        `gorm:"type:numeric(12,2);index"`
	Status      string         `gorm:"index"`
	LineItems   []LineItem     `gorm:"constraint:OnDelete:CASCADE"`
	Payments    []Payment      `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
}
