package repository

import (
	"path/filepath"
	"testing"
	"time"

	"invoice-analytics-backend/internal/database"
	"invoice-analytics-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func createVendor(t *testing.T, db *gorm.DB, key, name, category string) models.Vendor {
	t.Helper()
	vendor := models.Vendor{ID: uuid.New(), VendorID: key, Name: name, Category: category}
	if err := db.Create(&vendor).Error; err != nil {
		t.Fatalf("failed to create vendor %s: %v", key, err)
	}
	return vendor
}

func createCustomer(t *testing.T, db *gorm.DB, key, name, email string) models.Customer {
	t.Helper()
	customer := models.Customer{ID: uuid.New(), CustomerID: key, Name: name, Email: email}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to create customer %s: %v", key, err)
	}
	return customer
}

func createInvoice(t *testing.T, db *gorm.DB, key string, vendor models.Vendor, customer models.Customer,
	invoiceDate, dueDate datatypes.Date, amount float64, status string) models.Invoice {
	t.Helper()
	invoice := models.Invoice{
		ID:          uuid.New(),
		InvoiceID:   key,
		VendorID:    vendor.ID,
		CustomerID:  customer.ID,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		TotalAmount: amount,
		Status:      status,
	}
	if err := db.Create(&invoice).Error; err != nil {
		t.Fatalf("failed to create invoice %s: %v", key, err)
	}
	return invoice
}
