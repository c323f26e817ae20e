package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizease/bizease_backend/internal/apperrors"
	"github.com/bizease/bizease_backend/internal/core/domain"
	portsrepo "github.com/bizease/bizease_backend/internal/core/ports/repositories"
	portssvc "github.com/bizease/bizease_backend/internal/core/ports/services"
	"github.com/bizease/bizease_backend/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	documentRepo  portsrepo.DocumentRepository
	expenseRepo   portsrepo.ExpenseRepository
	inventoryRepo portsrepo.InventoryRepository
	alertRepo     portsrepo.AlertRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	documentRepo portsrepo.DocumentRepository,
	expenseRepo portsrepo.ExpenseRepository,
	inventoryRepo portsrepo.InventoryRepository,
	alertRepo portsrepo.AlertRepository,
) portssvc.ReportingSvc {
	return &reportingService{
		documentRepo:  documentRepo,
		expenseRepo:   expenseRepo,
		inventoryRepo: inventoryRepo,
		alertRepo:     alertRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) resolveRange(period accounting.Period) (accounting.DateRange, error) {
	rng, err := period.Range(nowFunc())
	if err != nil {
		return accounting.DateRange{}, apperrors.NewAppError(400, "invalid report period", err)
	}
	return rng, nil
}

// costOfGoods prices the sold quantities at the current purchase price of
// each item. Items deleted since the sale contribute zero.
func (s *reportingService) costOfGoods(ctx context.Context, sales []domain.Document) (decimal.Decimal, error) {
	idSet := make(map[string]struct{})
	for _, doc := range sales {
		for _, l := range doc.Lines {
			idSet[l.ItemID] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return decimal.Zero, nil
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	items, err := s.inventoryRepo.GetItemsByIDs(ctx, ids)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load items for cost of goods: %w", err)
	}
	priceByID := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		priceByID[it.ItemID] = it.PurchasePrice
	}

	cogs := decimal.Zero
	for _, doc := range sales {
		for _, l := range doc.Lines {
			cogs = cogs.Add(l.Quantity.Mul(priceByID[l.ItemID]))
		}
	}
	return cogs, nil
}

func sumOutstanding(docs []domain.Document) decimal.Decimal {
	total := decimal.Zero
	for _, d := range docs {
		total = total.Add(d.Outstanding())
	}
	return total
}

func (s *reportingService) GetDashboardStats(ctx context.Context, period accounting.Period) (domain.DashboardStats, error) {
	rng, err := s.resolveRange(period)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	now := nowFunc()

	sales, err := s.documentRepo.ListDocumentsInRange(ctx, domain.SalesInvoice, rng.Start, rng.End)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load sales for dashboard: %w", err)
	}
	purchases, err := s.documentRepo.ListDocumentsInRange(ctx, domain.PurchaseBill, rng.Start, rng.End)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load purchases for dashboard: %w", err)
	}
	totalExpenses, err := s.expenseRepo.SumExpenses(ctx, rng.Start, rng.End)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to sum expenses for dashboard: %w", err)
	}
	unpaidSales, err := s.documentRepo.ListUnpaidDocuments(ctx, domain.SalesInvoice)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load unpaid invoices: %w", err)
	}
	unpaidPurchases, err := s.documentRepo.ListUnpaidDocuments(ctx, domain.PurchaseBill)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load unpaid bills: %w", err)
	}
	lowStock, err := s.inventoryRepo.ListItems(ctx, portsrepo.ListInventoryParams{LowStock: true})
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load low stock items: %w", err)
	}
	unreadAlerts, err := s.alertRepo.ListAlerts(ctx, true)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to load unread alerts: %w", err)
	}
	totalInvoices, paidInvoices, overdueInvoices, err := s.documentRepo.CountDocumentsByStatus(ctx, domain.SalesInvoice, rng.Start, rng.End, now)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("failed to count invoices: %w", err)
	}

	totalSales := decimal.Zero
	for _, d := range sales {
		totalSales = totalSales.Add(d.GrandTotal)
	}
	totalPurchases := decimal.Zero
	for _, d := range purchases {
		totalPurchases = totalPurchases.Add(d.GrandTotal)
	}
	// The dashboard's quick profit view nets purchases, not cost of goods
	// sold; the P&L report carries the COGS-based figures.
	grossProfit := totalSales.Sub(totalPurchases)
	netProfit := grossProfit.Sub(totalExpenses)

	if lowStock == nil {
		lowStock = []domain.InventoryItem{}
	}
	if unreadAlerts == nil {
		unreadAlerts = []domain.Alert{}
	}

	return domain.DashboardStats{
		TotalSales:             totalSales,
		TotalPurchases:         totalPurchases,
		TotalExpenses:          totalExpenses,
		OutstandingReceivables: sumOutstanding(unpaidSales),
		OutstandingPayables:    sumOutstanding(unpaidPurchases),
		GrossProfit:            grossProfit,
		NetProfit:              netProfit,
		LowStockItems:          lowStock,
		UnreadAlerts:           unreadAlerts,
		SalesByDay:             buildDaySeries(sales, purchases, rng),
		TotalInvoices:          totalInvoices,
		PaidInvoices:           paidInvoices,
		OverdueInvoices:        overdueInvoices,
	}, nil
}

// buildDaySeries groups document grand totals by calendar day over the whole
// range, ascending. Days without activity carry zeros so charts keep an
// unbroken axis.
func buildDaySeries(sales, purchases []domain.Document, rng accounting.DateRange) []domain.DaySales {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	salesByDay := make(map[time.Time]decimal.Decimal)
	purchasesByDay := make(map[time.Time]decimal.Decimal)
	for _, doc := range sales {
		d := day(doc.DocumentDate)
		salesByDay[d] = salesByDay[d].Add(doc.GrandTotal)
	}
	for _, doc := range purchases {
		d := day(doc.DocumentDate)
		purchasesByDay[d] = purchasesByDay[d].Add(doc.GrandTotal)
	}

	var series []domain.DaySales
	for d, last := day(rng.Start), day(rng.End); !d.After(last); d = d.AddDate(0, 0, 1) {
		point := domain.DaySales{Date: d, Sales: decimal.Zero, Purchases: decimal.Zero}
		if v, ok := salesByDay[d]; ok {
			point.Sales = v
		}
		if v, ok := purchasesByDay[d]; ok {
			point.Purchases = v
		}
		series = append(series, point)
	}
	return series
}

func gstBreakupOf(docs []domain.Document) (taxable decimal.Decimal, breakup domain.GSTBreakup) {
	taxable = decimal.Zero
	breakup = domain.GSTBreakup{CGST: decimal.Zero, SGST: decimal.Zero, IGST: decimal.Zero, Total: decimal.Zero}
	for _, d := range docs {
		taxable = taxable.Add(d.Subtotal)
		breakup.CGST = breakup.CGST.Add(d.TotalCGST)
		breakup.SGST = breakup.SGST.Add(d.TotalSGST)
		breakup.IGST = breakup.IGST.Add(d.TotalIGST)
	}
	breakup.Total = breakup.CGST.Add(breakup.SGST).Add(breakup.IGST)
	return taxable, breakup
}

func (s *reportingService) GetGSTSummary(ctx context.Context, period accounting.Period) (domain.GSTSummary, error) {
	rng, err := s.resolveRange(period)
	if err != nil {
		return domain.GSTSummary{}, err
	}

	sales, err := s.documentRepo.ListDocumentsInRange(ctx, domain.SalesInvoice, rng.Start, rng.End)
	if err != nil {
		return domain.GSTSummary{}, fmt.Errorf("failed to load sales for GST summary: %w", err)
	}
	purchases, err := s.documentRepo.ListDocumentsInRange(ctx, domain.PurchaseBill, rng.Start, rng.End)
	if err != nil {
		return domain.GSTSummary{}, fmt.Errorf("failed to load purchases for GST summary: %w", err)
	}

	taxableSales, output := gstBreakupOf(sales)
	taxablePurchases, input := gstBreakupOf(purchases)

	return domain.GSTSummary{
		TaxableSales:     taxableSales,
		TaxablePurchases: taxablePurchases,
		Output:           output,
		Input:            input,
		Net: domain.GSTBreakup{
			CGST:  output.CGST.Sub(input.CGST),
			SGST:  output.SGST.Sub(input.SGST),
			IGST:  output.IGST.Sub(input.IGST),
			Total: output.Total.Sub(input.Total),
		},
	}, nil
}

func (s *reportingService) GetHSNSummary(ctx context.Context, period accounting.Period) ([]domain.HSNSummaryRow, error) {
	rng, err := s.resolveRange(period)
	if err != nil {
		return nil, err
	}
	sales, err := s.documentRepo.ListDocumentsInRange(ctx, domain.SalesInvoice, rng.Start, rng.End)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for HSN summary: %w", err)
	}

	byHSN := make(map[string]*domain.HSNSummaryRow)
	var order []string
	for _, doc := range sales {
		for _, l := range doc.Lines {
			row, ok := byHSN[l.HSN]
			if !ok {
				row = &domain.HSNSummaryRow{
					HSN:          l.HSN,
					Description:  l.Name,
					GSTRate:      l.GSTRate,
					TaxableValue: decimal.Zero,
					CGST:         decimal.Zero,
					SGST:         decimal.Zero,
					Total:        decimal.Zero,
				}
				byHSN[l.HSN] = row
				order = append(order, l.HSN)
			}
			row.TaxableValue = row.TaxableValue.Add(l.TaxableAmount)
			row.CGST = row.CGST.Add(l.CGST)
			row.SGST = row.SGST.Add(l.SGST)
			row.Total = row.Total.Add(l.TotalAmount)
		}
	}

	sort.Strings(order)
	rows := make([]domain.HSNSummaryRow, 0, len(order))
	for _, hsn := range order {
		rows = append(rows, *byHSN[hsn])
	}
	return rows, nil
}

func (s *reportingService) GetPAndL(ctx context.Context, period accounting.Period) (domain.PAndLReport, error) {
	rng, err := s.resolveRange(period)
	if err != nil {
		return domain.PAndLReport{}, err
	}

	sales, err := s.documentRepo.ListDocumentsInRange(ctx, domain.SalesInvoice, rng.Start, rng.End)
	if err != nil {
		return domain.PAndLReport{}, fmt.Errorf("failed to load sales for P&L: %w", err)
	}
	totalExpenses, err := s.expenseRepo.SumExpenses(ctx, rng.Start, rng.End)
	if err != nil {
		return domain.PAndLReport{}, fmt.Errorf("failed to sum expenses for P&L: %w", err)
	}

	// Revenue is the pre-tax subtotal; collected GST is not income.
	revenue := decimal.Zero
	for _, d := range sales {
		revenue = revenue.Add(d.Subtotal)
	}
	cogs, err := s.costOfGoods(ctx, sales)
	if err != nil {
		return domain.PAndLReport{}, err
	}
	grossProfit := revenue.Sub(cogs)
	netProfit := grossProfit.Sub(totalExpenses)

	return domain.PAndLReport{
		Revenue:       revenue,
		CostOfGoods:   cogs,
		GrossProfit:   grossProfit,
		GrossMargin:   accounting.Margin(grossProfit, revenue),
		TotalExpenses: totalExpenses,
		NetProfit:     netProfit,
		NetMargin:     accounting.Margin(netProfit, revenue),
	}, nil
}

// GetInventoryValuation values current stock at cost and at selling price.
// Per-item margin is the selling markup over the purchase price; a zero
// purchase price yields a zero margin rather than a division failure.
func (s *reportingService) GetInventoryValuation(ctx context.Context) (domain.InventoryValuationReport, error) {
	items, err := s.inventoryRepo.ListItems(ctx, portsrepo.ListInventoryParams{})
	if err != nil {
		return domain.InventoryValuationReport{}, fmt.Errorf("failed to load items for valuation: %w", err)
	}

	report := domain.InventoryValuationReport{
		TotalItems:      len(items),
		TotalQuantity:   decimal.Zero,
		StockValue:      decimal.Zero,
		SellableValue:   decimal.Zero,
		PotentialProfit: decimal.Zero,
		Rows:            make([]domain.InventoryValuationRow, 0, len(items)),
	}
	for _, item := range items {
		stockValue := item.Quantity.Mul(item.PurchasePrice)
		sellableValue := item.Quantity.Mul(item.SellingPrice)

		report.TotalQuantity = report.TotalQuantity.Add(item.Quantity)
		report.StockValue = report.StockValue.Add(stockValue)
		report.SellableValue = report.SellableValue.Add(sellableValue)
		report.Rows = append(report.Rows, domain.InventoryValuationRow{
			ItemID:        item.ItemID,
			Name:          item.Name,
			Category:      item.Category,
			Quantity:      item.Quantity,
			StockValue:    stockValue,
			SellableValue: sellableValue,
			Margin:        accounting.Margin(item.SellingPrice.Sub(item.PurchasePrice), item.PurchasePrice),
		})
	}
	report.PotentialProfit = report.SellableValue.Sub(report.StockValue)

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].StockValue.GreaterThan(report.Rows[j].StockValue)
	})
	return report, nil
}

func (s *reportingService) GetAging(ctx context.Context, kind domain.DocumentKind) ([]domain.AgingBucket, error) {
	unpaid, err := s.documentRepo.ListUnpaidDocuments(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to load unpaid documents for aging: %w", err)
	}
	return accounting.AgeDocuments(unpaid, nowFunc()), nil
}
