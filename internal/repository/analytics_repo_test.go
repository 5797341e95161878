package repository

import (
	"fmt"
	"math"
	"testing"
	"time"

	"invoice-analytics-backend/internal/models"
)

func TestAnalyticsAggregations(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)

	v1 := createVendor(t, db, "V1", "Acme", "Office")
	v2 := createVendor(t, db, "V2", "Soylent", "Office")
	createVendor(t, db, "V3", "Initrode", "Catering") // no invoices
	c1 := createCustomer(t, db, "C1", "Globex", "billing@globex.test")

	createInvoice(t, db, "INV-A", v1, c1, date(2024, time.January, 15), date(2024, time.February, 15), 100, models.StatusPaid)
	createInvoice(t, db, "INV-B", v1, c1, date(2024, time.January, 20), date(2024, time.February, 20), 50, models.StatusPending)
	createInvoice(t, db, "INV-C", v2, c1, date(2024, time.March, 5), date(2024, time.April, 5), 200, models.StatusPending)
	createInvoice(t, db, "INV-D", v2, c1, date(2023, time.November, 1), date(2023, time.December, 1), 75, models.StatusOverdue)

	t.Run("YearTotals splits by calendar year", func(t *testing.T) {
		y2024, err := repo.YearTotals(2024)
		if err != nil {
			t.Fatalf("YearTotals(2024): %v", err)
		}
		if y2024.TotalSpend != 350 || y2024.InvoiceCount != 3 {
			t.Errorf("2024 totals = %v/%d, want 350/3", y2024.TotalSpend, y2024.InvoiceCount)
		}

		y2023, err := repo.YearTotals(2023)
		if err != nil {
			t.Fatalf("YearTotals(2023): %v", err)
		}
		if y2023.TotalSpend != 75 || y2023.InvoiceCount != 1 {
			t.Errorf("2023 totals = %v/%d, want 75/1", y2023.TotalSpend, y2023.InvoiceCount)
		}
	})

	t.Run("OverallTotals covers every invoice", func(t *testing.T) {
		overall, err := repo.OverallTotals()
		if err != nil {
			t.Fatalf("OverallTotals: %v", err)
		}
		if overall.InvoiceCount != 4 {
			t.Errorf("count = %d, want 4", overall.InvoiceCount)
		}
		if math.Abs(overall.AverageAmount-106.25) > 1e-9 {
			t.Errorf("average = %v, want 106.25", overall.AverageAmount)
		}
	})

	t.Run("MonthlyTrends partitions all invoices in ascending order", func(t *testing.T) {
		rows, err := repo.MonthlyTrends()
		if err != nil {
			t.Fatalf("MonthlyTrends: %v", err)
		}

		want := []MonthRow{
			{Month: "2023-11", InvoiceCount: 1, TotalSpend: 75},
			{Month: "2024-01", InvoiceCount: 2, TotalSpend: 150},
			{Month: "2024-03", InvoiceCount: 1, TotalSpend: 200},
		}
		if len(rows) != len(want) {
			t.Fatalf("got %d rows, want %d: %+v", len(rows), len(want), rows)
		}
		var countSum int64
		var spendSum float64
		for i, row := range rows {
			if row != want[i] {
				t.Errorf("row %d = %+v, want %+v", i, row, want[i])
			}
			countSum += row.InvoiceCount
			spendSum += row.TotalSpend
		}
		if countSum != 4 || spendSum != 425 {
			t.Errorf("partition sums = %d/%v, want 4/425", countSum, spendSum)
		}
	})

	t.Run("TopVendors sorts by spend and keeps zero-spend vendors", func(t *testing.T) {
		rows, err := repo.TopVendors(10)
		if err != nil {
			t.Fatalf("TopVendors: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("got %d vendors, want 3: %+v", len(rows), rows)
		}
		if rows[0].VendorID != "V2" || rows[0].TotalSpend != 275 {
			t.Errorf("rows[0] = %+v, want V2/275", rows[0])
		}
		if rows[1].VendorID != "V1" || rows[1].TotalSpend != 150 {
			t.Errorf("rows[1] = %+v, want V1/150", rows[1])
		}
		if rows[2].VendorID != "V3" || rows[2].TotalSpend != 0 {
			t.Errorf("rows[2] = %+v, want V3/0", rows[2])
		}
		for i := 1; i < len(rows); i++ {
			if rows[i].TotalSpend > rows[i-1].TotalSpend {
				t.Errorf("ordering not non-increasing at %d: %+v", i, rows)
			}
		}
	})

	t.Run("CategorySpend accumulates per vendor category", func(t *testing.T) {
		rows, err := repo.CategorySpend()
		if err != nil {
			t.Fatalf("CategorySpend: %v", err)
		}
		spend := make(map[string]float64, len(rows))
		for _, row := range rows {
			spend[row.Category] = row.Spend
		}
		if len(rows) != 2 || spend["Office"] != 425 || spend["Catering"] != 0 {
			t.Errorf("category spend = %+v, want Office 425 / Catering 0", rows)
		}
	})

	t.Run("CashOutflow groups pending invoices by due month", func(t *testing.T) {
		rows, err := repo.CashOutflow()
		if err != nil {
			t.Fatalf("CashOutflow: %v", err)
		}
		want := []OutflowRow{
			{Month: "2024-02", Amount: 50},
			{Month: "2024-04", Amount: 200},
		}
		if len(rows) != len(want) {
			t.Fatalf("got %d rows, want %d: %+v", len(rows), len(want), rows)
		}
		for i, row := range rows {
			if row != want[i] {
				t.Errorf("row %d = %+v, want %+v", i, row, want[i])
			}
		}
	})
}

func TestTopVendorsLimitAndTieBreak(t *testing.T) {
	db := openTestDB(t)
	repo := NewAnalyticsRepository(db)
	c1 := createCustomer(t, db, "C1", "Globex", "billing@globex.test")

	// Twelve vendors with identical spend: truncated to ten, ordered by
	// vendor business key.
	for i := 1; i <= 12; i++ {
		key := fmt.Sprintf("T%02d", i)
		v := createVendor(t, db, key, "Vendor "+key, "Misc")
		createInvoice(t, db, "INV-"+key, v, c1, date(2024, time.May, i), date(2024, time.June, i), 10, models.StatusPaid)
	}

	rows, err := repo.TopVendors(10)
	if err != nil {
		t.Fatalf("TopVendors: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(rows))
	}
	for i, row := range rows {
		want := fmt.Sprintf("T%02d", i+1)
		if row.VendorID != want {
			t.Errorf("rows[%d].VendorID = %s, want %s", i, row.VendorID, want)
		}
	}
}
