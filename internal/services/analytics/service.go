package analytics

import (
	"math"
	"time"

	"invoice-analytics-backend/internal/models"
	"invoice-analytics-backend/internal/repository"

	"gorm.io/datatypes"
)

// Service composes the repositories into dashboard-shaped payloads. All
// operations are pure reads.
type Service struct {
	invoiceRepo   *repository.InvoiceRepository
	analyticsRepo *repository.AnalyticsRepository
	now           func() time.Time
}

func NewService(invoiceRepo *repository.InvoiceRepository, analyticsRepo *repository.AnalyticsRepository) *Service {
	return &Service{
		invoiceRepo:   invoiceRepo,
		analyticsRepo: analyticsRepo,
		now:           time.Now,
	}
}

type SummaryStats struct {
	TotalSpendYTD          float64 `json:"totalSpendYTD"`
	TotalInvoicesProcessed int64   `json:"totalInvoicesProcessed"`
	DocumentsUploaded      int64   `json:"documentsUploaded"`
	AverageInvoiceValue    float64 `json:"averageInvoiceValue"`
}

type MonthlyTrend struct {
	Month        string  `json:"month"`
	InvoiceCount int64   `json:"invoiceCount"`
	TotalSpend   float64 `json:"totalSpend"`
}

type VendorSpend struct {
	VendorID   string  `json:"vendorId"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	TotalSpend float64 `json:"totalSpend"`
}

type CategorySpend struct {
	Category string  `json:"category"`
	Spend    float64 `json:"spend"`
}

type OutflowPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type VendorInfo struct {
	VendorID string `json:"vendorId"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type CustomerInfo struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type LineItemInfo struct {
	ItemID      string  `json:"itemId"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type PaymentInfo struct {
	PaymentID   string  `json:"paymentId"`
	PaymentDate string  `json:"paymentDate"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
}

type InvoiceSummary struct {
	InvoiceID   string       `json:"invoiceId"`
	InvoiceDate string       `json:"invoiceDate"`
	DueDate     string       `json:"dueDate"`
	TotalAmount float64      `json:"totalAmount"`
	Status      string       `json:"status"`
	Vendor      VendorInfo   `json:"vendor"`
	Customer    CustomerInfo `json:"customer"`
}

type InvoiceDetail struct {
	InvoiceSummary
	LineItems []LineItemInfo `json:"lineItems"`
	Payments  []PaymentInfo  `json:"payments"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type InvoicePage struct {
	Invoices   []InvoiceSummary `json:"invoices"`
	Pagination Pagination       `json:"pagination"`
}

// Summary returns the dashboard headline figures. YTD covers the current
// calendar year; the document count and average cover all invoices.
func (s *Service) Summary() (SummaryStats, error) {
	year, err := s.analyticsRepo.YearTotals(s.now().Year())
	if err != nil {
		return SummaryStats{}, err
	}
	overall, err := s.analyticsRepo.OverallTotals()
	if err != nil {
		return SummaryStats{}, err
	}
	return SummaryStats{
		TotalSpendYTD:          year.TotalSpend,
		TotalInvoicesProcessed: year.InvoiceCount,
		DocumentsUploaded:      overall.InvoiceCount,
		AverageInvoiceValue:    overall.AverageAmount,
	}, nil
}

func (s *Service) MonthlyTrends() ([]MonthlyTrend, error) {
	rows, err := s.analyticsRepo.MonthlyTrends()
	if err != nil {
		return nil, err
	}
	trends := make([]MonthlyTrend, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, MonthlyTrend{
			Month:        row.Month,
			InvoiceCount: row.InvoiceCount,
			TotalSpend:   row.TotalSpend,
		})
	}
	return trends, nil
}

func (s *Service) TopVendors() ([]VendorSpend, error) {
	rows, err := s.analyticsRepo.TopVendors(10)
	if err != nil {
		return nil, err
	}
	vendors := make([]VendorSpend, 0, len(rows))
	for _, row := range rows {
		vendors = append(vendors, VendorSpend{
			VendorID:   row.VendorID,
			Name:       row.Name,
			Category:   row.Category,
			TotalSpend: row.TotalSpend,
		})
	}
	return vendors, nil
}

func (s *Service) CategorySpend() ([]CategorySpend, error) {
	rows, err := s.analyticsRepo.CategorySpend()
	if err != nil {
		return nil, err
	}
	categories := make([]CategorySpend, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, CategorySpend{
			Category: row.Category,
			Spend:    row.Spend,
		})
	}
	return categories, nil
}

func (s *Service) CashOutflow() ([]OutflowPoint, error) {
	rows, err := s.analyticsRepo.CashOutflow()
	if err != nil {
		return nil, err
	}
	points := make([]OutflowPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, OutflowPoint{
			Month:  row.Month,
			Amount: row.Amount,
		})
	}
	return points, nil
}

// SearchInvoices returns one page of invoices plus pagination metadata.
// Total counts every invoice matching the search, not just the page.
func (s *Service) SearchInvoices(filter repository.InvoiceFilter) (InvoicePage, error) {
	total, err := s.invoiceRepo.Count(filter)
	if err != nil {
		return InvoicePage{}, err
	}
	invoices, err := s.invoiceRepo.Search(filter)
	if err != nil {
		return InvoicePage{}, err
	}

	summaries := make([]InvoiceSummary, 0, len(invoices))
	for i := range invoices {
		summaries = append(summaries, toSummary(&invoices[i]))
	}

	return InvoicePage{
		Invoices: summaries,
		Pagination: Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

// GetInvoice returns the full projection for one invoice business key.
// A missing key surfaces as gorm.ErrRecordNotFound from the repository.
func (s *Service) GetInvoice(invoiceID string) (*InvoiceDetail, error) {
	invoice, err := s.invoiceRepo.GetByBusinessKey(invoiceID)
	if err != nil {
		return nil, err
	}

	detail := InvoiceDetail{
		InvoiceSummary: toSummary(invoice),
		LineItems:      make([]LineItemInfo, 0, len(invoice.LineItems)),
		Payments:       make([]PaymentInfo, 0, len(invoice.Payments)),
	}
	for _, item := range invoice.LineItems {
		detail.LineItems = append(detail.LineItems, LineItemInfo{
			ItemID:      item.ItemID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	for _, payment := range invoice.Payments {
		detail.Payments = append(detail.Payments, PaymentInfo{
			PaymentID:   payment.PaymentID,
			PaymentDate: formatDate(payment.PaymentDate),
			Amount:      payment.Amount,
			Method:      payment.Method,
		})
	}
	return &detail, nil
}

func toSummary(invoice *models.Invoice) InvoiceSummary {
	return InvoiceSummary{
		InvoiceID:   invoice.InvoiceID,
		InvoiceDate: formatDate(invoice.InvoiceDate),
		DueDate:     formatDate(invoice.DueDate),
		TotalAmount: invoice.TotalAmount,
		Status:      invoice.Status,
		Vendor: VendorInfo{
			VendorID: invoice.Vendor.VendorID,
			Name:     invoice.Vendor.Name,
			Category: invoice.Vendor.Category,
		},
		Customer: CustomerInfo{
			CustomerID: invoice.Customer.CustomerID,
			Name:       invoice.Customer.Name,
			Email:      invoice.Customer.Email,
		},
	}
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format("2006-01-02")
}
