package repository

import (
	"strings"

	"invoice-analytics-backend/internal/models"

	"gorm.io/gorm"
)

// InvoiceFilter is the typed search filter for invoice listings. Zero values
// mean "no filter"; Page and Limit are normalized by the caller.
type InvoiceFilter struct {
	Search string
	Page   int
	Limit  int
}

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// searchQuery builds the base query for a filter. Built fresh per use so the
// count and page queries never share GORM statement state.
func (r *InvoiceRepository) searchQuery(filter InvoiceFilter) *gorm.DB {
	query := r.db.Model(&models.Invoice{}).
		Joins("JOIN vendors ON vendors.id = invoices.vendor_id").
		Joins("JOIN customers ON customers.id = invoices.customer_id")

	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(invoices.invoice_id) LIKE ? OR LOWER(vendors.name) LIKE ? OR LOWER(customers.name) LIKE ?",
			like, like, like,
		)
	}

	return query
}

// Count returns the number of invoices matching the filter, ignoring paging.
func (r *InvoiceRepository) Count(filter InvoiceFilter) (int64, error) {
	var total int64
	err := r.searchQuery(filter).Count(&total).Error
	return total, err
}

// Search returns one page of invoices matching the filter, newest first.
func (r *InvoiceRepository) Search(filter InvoiceFilter) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.searchQuery(filter).
		Select("invoices.*").
		Preload("Vendor").
		Preload("Customer").
		Order("invoices.invoice_date DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&invoices).Error
	return invoices, err
}

// GetByBusinessKey fetches a single invoice by its business key, with vendor,
// customer, line items and payments loaded.
func (r *InvoiceRepository) GetByBusinessKey(invoiceID string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.
		Preload("Vendor").
		Preload("Customer").
		Preload("LineItems").
		Preload("Payments").
		First(&invoice, "invoice_id = ?", invoiceID).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}
