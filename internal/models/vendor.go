package models

import (
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID  string    `gorm:"uniqueIndex"` // business key, e.g. "V1"
	Name      string    `gorm:"index"`
	Category  string    `gorm:"index"`
	CreatedAt time.Time
}
