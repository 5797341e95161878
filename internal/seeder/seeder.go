package seeder

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"invoice-analytics-backend/internal/metrics"
	"invoice-analytics-backend/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed file record shapes. Field names follow the dataset's camelCase keys.
type vendorRecord struct {
	VendorID string `json:"vendorId"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type customerRecord struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type lineItemRecord struct {
	ItemID      string  `json:"itemId"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type paymentRecord struct {
	PaymentID   string  `json:"paymentId"`
	PaymentDate string  `json:"paymentDate"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
}

type invoiceRecord struct {
	InvoiceID   string           `json:"invoiceId"`
	InvoiceDate string           `json:"invoiceDate"`
	DueDate     string           `json:"dueDate"`
	TotalAmount float64          `json:"totalAmount"`
	Status      string           `json:"status"`
	Vendor      vendorRecord     `json:"vendor"`
	Customer    customerRecord   `json:"customer"`
	LineItems   []lineItemRecord `json:"lineItems"`
	Payments    []paymentRecord  `json:"payments"`
}

type Seeder struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Seeder {
	return &Seeder{db: db, log: log}
}

// Run reads the JSON dataset at path and rebuilds the relational tables from
// it. All existing rows are deleted first, so rerunning with the same file
// yields the same database state. The first write error aborts the run.
func (s *Seeder) Run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var records []invoiceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	s.log.Info("seeding database", zap.String("file", path), zap.Int("records", len(records)))

	if err := s.reset(); err != nil {
		return err
	}

	vendorIDs, customerIDs, err := s.upsertParties(records)
	if err != nil {
		return err
	}

	for i, rec := range records {
		if err := s.createInvoice(rec, vendorIDs, customerIDs); err != nil {
			return fmt.Errorf("failed to seed invoice %s: %w", rec.InvoiceID, err)
		}
		metrics.SeededInvoicesTotal.Inc()
		if (i+1)%100 == 0 {
			s.log.Info("seeded invoices", zap.Int("count", i+1))
		}
	}

	s.log.Info("seeding completed", zap.Int("invoices", len(records)))
	return nil
}

// reset wipes all tables, children before parents to respect foreign keys.
func (s *Seeder) reset() error {
	tables := []interface{}{
		&models.Payment{},
		&models.LineItem{},
		&models.Invoice{},
		&models.Vendor{},
		&models.Customer{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table %T: %w", table, err)
		}
	}
	return nil
}

// upsertParties deduplicates embedded vendor and customer records by business
// key (last occurrence in the file wins) and upserts each once, returning the
// business key to surrogate id mappings used by invoice creation.
func (s *Seeder) upsertParties(records []invoiceRecord) (map[string]uuid.UUID, map[string]uuid.UUID, error) {
	vendors := make(map[string]vendorRecord)
	customers := make(map[string]customerRecord)
	for _, rec := range records {
		vendors[rec.Vendor.VendorID] = rec.Vendor
		customers[rec.Customer.CustomerID] = rec.Customer
	}

	vendorIDs := make(map[string]uuid.UUID, len(vendors))
	for key, rec := range vendors {
		vendor := models.Vendor{
			ID:        uuid.New(),
			VendorID:  rec.VendorID,
			Name:      rec.Name,
			Category:  rec.Category,
			CreatedAt: time.Now(),
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "vendor_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category"}),
		}).Create(&vendor).Error
		if err != nil {
			return nil, nil, fmt.Errorf("failed to upsert vendor %s: %w", key, err)
		}
		vendorIDs[key] = vendor.ID
	}

	customerIDs := make(map[string]uuid.UUID, len(customers))
	for key, rec := range customers {
		customer := models.Customer{
			ID:         uuid.New(),
			CustomerID: rec.CustomerID,
			Name:       rec.Name,
			Email:      rec.Email,
			CreatedAt:  time.Now(),
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "email"}),
		}).Create(&customer).Error
		if err != nil {
			return nil, nil, fmt.Errorf("failed to upsert customer %s: %w", key, err)
		}
		customerIDs[key] = customer.ID
	}

	s.log.Info("upserted parties",
		zap.Int("vendors", len(vendorIDs)),
		zap.Int("customers", len(customerIDs)))

	return vendorIDs, customerIDs, nil
}

// createInvoice writes one invoice with its line items and payments in a
// single nested create.
func (s *Seeder) createInvoice(rec invoiceRecord, vendorIDs, customerIDs map[string]uuid.UUID) error {
	vendorID, ok := vendorIDs[rec.Vendor.VendorID]
	if !ok {
		return fmt.Errorf("unknown vendor %q", rec.Vendor.VendorID)
	}
	customerID, ok := customerIDs[rec.Customer.CustomerID]
	if !ok {
		return fmt.Errorf("unknown customer %q", rec.Customer.CustomerID)
	}

	invoiceDate, err := parseDate(rec.InvoiceDate)
	if err != nil {
		return fmt.Errorf("invalid invoiceDate: %w", err)
	}
	dueDate, err := parseDate(rec.DueDate)
	if err != nil {
		return fmt.Errorf("invalid dueDate: %w", err)
	}

	invoice := models.Invoice{
		ID:          uuid.New(),
		InvoiceID:   rec.InvoiceID,
		VendorID:    vendorID,
		CustomerID:  customerID,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		TotalAmount: rec.TotalAmount,
		Status:      rec.Status,
		CreatedAt:   time.Now(),
	}

	for _, item := range rec.LineItems {
		invoice.LineItems = append(invoice.LineItems, models.LineItem{
			ID:          uuid.New(),
			ItemID:      item.ItemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}

	for _, payment := range rec.Payments {
		paymentDate, err := parseDate(payment.PaymentDate)
		if err != nil {
			return fmt.Errorf("invalid paymentDate on payment %s: %w", payment.PaymentID, err)
		}
		invoice.Payments = append(invoice.Payments, models.Payment{
			ID:          uuid.New(),
			PaymentID:   payment.PaymentID,
			PaymentDate: paymentDate,
			Amount:      payment.Amount,
			Method:      payment.Method,
		})
	}

	return s.db.Create(&invoice).Error
}

func parseDate(value string) (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}
