package repository

import (
	"time"

	"invoice-analytics-backend/internal/models"

	"gorm.io/gorm"
)

// monthExpr extracts a "YYYY-MM" key from a date column. Both Postgres and
// sqlite render dates as ISO text under CAST, which keeps the aggregation
// queries portable between production and tests.
const (
	invoiceMonthExpr = "substr(CAST(invoice_date AS TEXT), 1, 7)"
	dueMonthExpr     = "substr(CAST(due_date AS TEXT), 1, 7)"
)

type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type YearTotalsRow struct {
	TotalSpend   float64
	InvoiceCount int64
}

type OverallTotalsRow struct {
	InvoiceCount  int64
	AverageAmount float64
}

type MonthRow struct {
	Month        string
	InvoiceCount int64
	TotalSpend   float64
}

type VendorSpendRow struct {
	VendorID   string
	Name       string
	Category   string
	TotalSpend float64
}

type CategorySpendRow struct {
	Category string
	Spend    float64
}

type OutflowRow struct {
	Month  string
	Amount float64
}

// YearTotals sums and counts invoices dated within the given calendar year.
func (r *AnalyticsRepository) YearTotals(year int) (YearTotalsRow, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var row YearTotalsRow
	err := r.db.Model(&models.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_spend, COUNT(*) AS invoice_count").
		Where("invoice_date >= ? AND invoice_date <= ?", start, end).
		Scan(&row).Error
	return row, err
}

// OverallTotals counts all invoices and averages their amounts.
func (r *AnalyticsRepository) OverallTotals() (OverallTotalsRow, error) {
	var row OverallTotalsRow
	err := r.db.Model(&models.Invoice{}).
		Select("COUNT(*) AS invoice_count, COALESCE(AVG(total_amount), 0) AS average_amount").
		Scan(&row).Error
	return row, err
}

// MonthlyTrends groups all invoices by invoice month, oldest first.
func (r *AnalyticsRepository) MonthlyTrends() ([]MonthRow, error) {
	var rows []MonthRow
	err := r.db.Model(&models.Invoice{}).
		Select(invoiceMonthExpr + " AS month, COUNT(*) AS invoice_count, COALESCE(SUM(total_amount), 0) AS total_spend").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}

// TopVendors sums invoice amounts per vendor, highest spend first. Ties break
// on vendor business key so the ordering is deterministic across engines.
// The LEFT JOIN keeps invoice-less vendors in the ranking at zero spend.
func (r *AnalyticsRepository) TopVendors(limit int) ([]VendorSpendRow, error) {
	var rows []VendorSpendRow
	err := r.db.Model(&models.Vendor{}).
		Select("vendors.vendor_id AS vendor_id, vendors.name AS name, vendors.category AS category, COALESCE(SUM(invoices.total_amount), 0) AS total_spend").
		Joins("LEFT JOIN invoices ON invoices.vendor_id = vendors.id").
		Group("vendors.vendor_id, vendors.name, vendors.category").
		Order("total_spend DESC, vendors.vendor_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// CategorySpend accumulates vendor invoice totals per vendor category.
func (r *AnalyticsRepository) CategorySpend() ([]CategorySpendRow, error) {
	var rows []CategorySpendRow
	err := r.db.Model(&models.Vendor{}).
		Select("vendors.category AS category, COALESCE(SUM(invoices.total_amount), 0) AS spend").
		Joins("LEFT JOIN invoices ON invoices.vendor_id = vendors.id").
		Group("vendors.category").
		Order("vendors.category ASC").
		Scan(&rows).Error
	return rows, err
}

// CashOutflow sums pending invoice amounts per due month, oldest first.
func (r *AnalyticsRepository) CashOutflow() ([]OutflowRow, error) {
	var rows []OutflowRow
	err := r.db.Model(&models.Invoice{}).
		Select(dueMonthExpr + " AS month, COALESCE(SUM(total_amount), 0) AS amount").
		Where("status = ?", models.StatusPending).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	return rows, err
}
