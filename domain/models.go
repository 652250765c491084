package domain

import "time"

// CatalogItem is one sellable product. Stock is only ever mutated through
// the inventory store's decrement/restock/correction operations.
type CatalogItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Unit       string `json:"unit"`
	Stock      int    `json:"stock"`
	PricePaise int64  `json:"price_paise"`
	CostPaise  int64  `json:"cost_paise"`
}

// LineRequest is a single line of a sale attempt: a free-text product
// reference as the merchant spoke or typed it, and a requested quantity.
type LineRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// LineOutcome records one fulfilled line. Price and cost are snapshotted
// at decrement time so later catalog edits never alter a recorded sale.
type LineOutcome struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	PricePaise int64  `json:"price_paise"`
	CostPaise  int64  `json:"cost_paise"`
}

// SaleOutcome is the immutable result of one sale-processing call.
// AmountPaise and ProfitPaise always equal the sums over Items.
type SaleOutcome struct {
	Success     bool          `json:"success"`
	Message     string        `json:"message"`
	Items       []LineOutcome `json:"items"`
	AmountPaise int64         `json:"amount_paise"`
	ProfitPaise int64         `json:"profit_paise"`
}

// SaleRecord is the persistable form of a successful sale. The caller owns
// durable storage for these.
type SaleRecord struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	PaymentMethod string        `json:"payment_method"`
	Items         []LineOutcome `json:"items"`
	AmountPaise   int64         `json:"amount_paise"`
	ProfitPaise   int64         `json:"profit_paise"`
}

// StockAdjustment is one entry in an item's stock movement history.
type StockAdjustment struct {
	At       time.Time `json:"at"`
	Kind     string    `json:"kind"`
	Change   int       `json:"change"`
	NewStock int       `json:"new_stock"`
	Note     string    `json:"note,omitempty"`
}

// StatsSummary is the read-only reporting view over sale history and
// current inventory.
type StatsSummary struct {
	RevenuePaise  int64    `json:"revenue_paise"`
	ProfitPaise   int64    `json:"profit_paise"`
	LowStockCount int      `json:"low_stock_count"`
	LowStockItems []string `json:"low_stock_items"`
}

const (
	AdjustmentSale       = "sale"
	AdjustmentRestock    = "restock"
	AdjustmentCorrection = "correction"
)

const (
	PaymentCash = "cash"
	PaymentUPI  = "upi"
	PaymentCard = "card"
)

// DefaultLowStockThreshold marks items as low-stock when their stock is
// strictly below it.
const DefaultLowStockThreshold = 10
