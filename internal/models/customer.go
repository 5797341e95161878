package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID string    `gorm:"uniqueIndex"` // business key
	Name       string    `gorm:"index"`
	Email      string
	CreatedAt  time.Time
}
