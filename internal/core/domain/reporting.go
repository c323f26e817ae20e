package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgingBucket groups unpaid documents by how far past due they are.
type AgingBucket struct {
	Range       string          `json:"range"`
	Count       int             `json:"count"`
	Outstanding decimal.Decimal `json:"outstanding"`
}

// GSTBreakup holds CGST/SGST/IGST components and their sum.
type GSTBreakup struct {
	CGST  decimal.Decimal `json:"cgst"`
	SGST  decimal.Decimal `json:"sgst"`
	IGST  decimal.Decimal `json:"igst"`
	Total decimal.Decimal `json:"total"`
}

// GSTSummary is the period GST position: tax collected on sales (output),
// input tax credit from purchases, and the net payable.
type GSTSummary struct {
	TaxableSales     decimal.Decimal `json:"taxableSales"`
	TaxablePurchases decimal.Decimal `json:"taxablePurchases"`
	Output           GSTBreakup      `json:"output"`
	Input            GSTBreakup      `json:"input"`
	Net              GSTBreakup      `json:"net"`
}

// HSNSummaryRow aggregates sales lines by HSN code for GST filing.
type HSNSummaryRow struct {
	HSN          string          `json:"hsn"`
	Description  string          `json:"description"`
	GSTRate      decimal.Decimal `json:"gstRate"`
	TaxableValue decimal.Decimal `json:"taxableValue"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	Total        decimal.Decimal `json:"total"`
}

// PAndLReport represents a profit and loss report for a period.
type PAndLReport struct {
	Revenue       decimal.Decimal `json:"revenue"`
	CostOfGoods   decimal.Decimal `json:"costOfGoods"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	GrossMargin   decimal.Decimal `json:"grossMargin"` // percent, zero when revenue is zero
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`
	NetMargin     decimal.Decimal `json:"netMargin"` // percent, zero when revenue is zero
}

// InventoryValuationRow values one item's stock at cost and at the selling
// price.
type InventoryValuationRow struct {
	ItemID        string          `json:"itemID"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      decimal.Decimal `json:"quantity"`
	StockValue    decimal.Decimal `json:"stockValue"`
	SellableValue decimal.Decimal `json:"sellableValue"`
	Margin        decimal.Decimal `json:"margin"` // percent, zero when the purchase price is zero
}

// InventoryValuationReport is the stock valuation snapshot: what the current
// inventory cost, what it would sell for, and the spread between the two.
type InventoryValuationReport struct {
	TotalItems      int                     `json:"totalItems"`
	TotalQuantity   decimal.Decimal         `json:"totalQuantity"`
	StockValue      decimal.Decimal         `json:"stockValue"`
	SellableValue   decimal.Decimal         `json:"sellableValue"`
	PotentialProfit decimal.Decimal         `json:"potentialProfit"`
	Rows            []InventoryValuationRow `json:"rows"`
}

// DaySales is one point of the dashboard sales/purchases series.
type DaySales struct {
	Date      time.Time       `json:"date"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
}

// DashboardStats is the aggregate snapshot shown on the dashboard.
type DashboardStats struct {
	TotalSales             decimal.Decimal `json:"totalSales"`
	TotalPurchases         decimal.Decimal `json:"totalPurchases"`
	TotalExpenses          decimal.Decimal `json:"totalExpenses"`
	OutstandingReceivables decimal.Decimal `json:"outstandingReceivables"`
	OutstandingPayables    decimal.Decimal `json:"outstandingPayables"`
	GrossProfit            decimal.Decimal `json:"grossProfit"`
	NetProfit              decimal.Decimal `json:"netProfit"`
	LowStockItems          []InventoryItem `json:"lowStockItems"`
	UnreadAlerts           []Alert         `json:"unreadAlerts"`
	SalesByDay             []DaySales      `json:"salesByDay"`
	TotalInvoices          int             `json:"totalInvoices"`
	PaidInvoices           int             `json:"paidInvoices"`
	OverdueInvoices        int             `json:"overdueInvoices"`
}
