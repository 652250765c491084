// Package stats folds completed sales and the current inventory into the
// dashboard summary. Everything here is read-only.
package stats

import (
	"vmitra/engine/domain"
)

type Aggregator struct {
	lowStockThreshold int
}

func New(lowStockThreshold int) *Aggregator {
	if lowStockThreshold < 1 {
		lowStockThreshold = domain.DefaultLowStockThreshold
	}
	return &Aggregator{lowStockThreshold: lowStockThreshold}
}

// Summarize totals revenue and profit over the sale history and counts
// catalog items whose stock sits strictly below the low-stock threshold.
// Low-stock names are reported in the order the inventory was given.
func (a *Aggregator) Summarize(sales []domain.SaleRecord, items []domain.CatalogItem) domain.StatsSummary {
	summary := domain.StatsSummary{LowStockItems: []string{}}

	for _, record := range sales {
		summary.RevenuePaise += record.AmountPaise
		summary.ProfitPaise += record.ProfitPaise
	}

	for _, item := range items {
		if item.Stock < a.lowStockThreshold {
			summary.LowStockCount++
			summary.LowStockItems = append(summary.LowStockItems, item.Name)
		}
	}

	return summary
}
