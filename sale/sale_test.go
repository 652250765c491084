package sale

import (
	"context"
	"sync"
	"testing"

	"vmitra/engine/domain"
	"vmitra/engine/inventory"
)

func newTestProcessor(t *testing.T, seed []domain.CatalogItem) (*Processor, *inventory.Store) {
	t.Helper()
	store, err := inventory.New(seed, nil, nil, 0)
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	return New(store), store
}

func TestProcessSalePartialFulfillment(t *testing.T) {
	// One line resolves via the lexicon, the other references an item the
	// catalog does not carry; the sale still succeeds with what it could.
	processor, store := newTestProcessor(t, []domain.CatalogItem{
		{ID: "itm-sugar", Name: "Sugar 1kg", Stock: 5, PricePaise: 5000, CostPaise: 4000},
	})

	outcome := processor.ProcessSale(context.Background(), []domain.LineRequest{
		{Name: "cheeni", Quantity: 3},
		{Name: "doodh", Quantity: 2},
	})

	if !outcome.Success {
		t.Fatalf("expected partial sale to succeed: %+v", outcome)
	}
	if len(outcome.Items) != 1 {
		t.Fatalf("expected 1 fulfilled line, got %d", len(outcome.Items))
	}
	line := outcome.Items[0]
	if line.Name != "Sugar 1kg" || line.Quantity != 3 {
		t.Fatalf("unexpected line: %+v", line)
	}
	if outcome.AmountPaise != 15000 {
		t.Fatalf("expected amount 15000, got %d", outcome.AmountPaise)
	}
	if outcome.ProfitPaise != 3000 {
		t.Fatalf("expected profit 3000, got %d", outcome.ProfitPaise)
	}

	item, err := store.Get("itm-sugar")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if item.Stock != 2 {
		t.Fatalf("expected stock 2 after sale, got %d", item.Stock)
	}
}

func TestProcessSaleClampsToAvailableStock(t *testing.T) {
	processor, _ := newTestProcessor(t, []domain.CatalogItem{
		{ID: "itm-milk", Name: "Milk (1L)", Stock: 2, PricePaise: 6000, CostPaise: 5200},
	})

	outcome := processor.ProcessSale(context.Background(), []domain.LineRequest{
		{Name: "milk", Quantity: 5},
	})

	if !outcome.Success {
		t.Fatalf("expected clamped sale to succeed: %+v", outcome)
	}
	if outcome.Items[0].Quantity != 2 {
		t.Fatalf("expected fulfilled quantity 2, got %d", outcome.Items[0].Quantity)
	}
	if outcome.AmountPaise != 12000 {
		t.Fatalf("expected amount 12000, got %d", outcome.AmountPaise)
	}
}

func TestProcessSaleFailsWhenStockExhausted(t *testing.T) {
	processor, _ := newTestProcessor(t, []domain.CatalogItem{
		{ID: "itm-sugar", Name: "Sugar 1kg", Stock: 0, PricePaise: 5000, CostPaise: 4000},
	})

	outcome := processor.ProcessSale(context.Background(), []domain.LineRequest{
		{Name: "sugar", Quantity: 5},
	})

	if outcome.Success {
		t.Fatalf("expected sale against empty stock to fail")
	}
	if outcome.Message != MessageNoMatch {
		t.Fatalf("unexpected failure message: %q", outcome.Message)
	}
	if len(outcome.Items) != 0 || outcome.AmountPaise != 0 || outcome.ProfitPaise != 0 {
		t.Fatalf("expected empty failed outcome, got %+v", outcome)
	}
}

func TestProcessSaleFailsWhenNothingMatches(t *testing.T) {
	processor, _ := newTestProcessor(t, []domain.CatalogItem{
		{ID: "itm-sugar", Name: "Sugar 1kg", Stock: 10, PricePaise: 5000, CostPaise: 4000},
	})

	outcome := processor.ProcessSale(context.Background(), []domain.LineRequest{
		{Name: "unknown item", Quantity: 1},
	})

	if outcome.Success {
		t.Fatalf("expected no-match sale to fail")
	}
	if outcome.Message != MessageNoMatch {
		t.Fatalf("unexpected failure message: %q", outcome.Message)
	}
}

func TestProcessSaleSkipsNonPositiveQuantities(t *testing.T) {
	processor, store := newTestProcessor(t, []domain.CatalogItem{
		{ID: "itm-sugar", Name: "Sugar 1kg", Stock: 10, PricePaise: 5000, CostPaise: 4000},
		{ID: "itm-milk", Name: "Milk (1L)", Stock: 10, PricePaise: 6000, CostPaise: 5200},
	})

	outcome := processor.ProcessSale(context.Background(), []domain.LineRequest{
		{Name: "sugar", Quantity: 0},
		{Name: "milk", Quantity: 2},
	})

	if !outcome.Success {
		t.Fatalf("expected sale to succeed on the valid line: %+v", outcome)
	}
	if len(outcome.Items) != 1 || outcome.Items[0].Name != "Milk (1L)" {
		t.Fatalf("expected only the milk line, got %+v", outcome.Items)
	}

	sugar, err := store.Get("itm-sugar")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if sugar.Stock != 10 {
		t.Fatalf("expected sugar stock untouched, got %d", sugar.Stock)
	}
}

func TestProcessSaleTotalsEqualLineSums(t *testing.T) {
	processor, _ := newTestProcessor(t, []domain.CatalogItem{
		{ID: "itm-sugar", Name: "Sugar 1kg", Stock: 10, PricePaise: 5000, CostPaise: 4000},
		{ID: "itm-milk", Name: "Milk (1L)", Stock: 10, PricePaise: 6000, CostPaise: 5200},
	})

	outcome := processor.ProcessSale(context.Background(), []domain.LineRequest{
		{Name: "sugar", Quantity: 2},
		{Name: "milk", Quantity: 3},
	})

	var amount, profit int64
	for _, line := range outcome.Items {
		amount += line.PricePaise * int64(line.Quantity)
		profit += (line.PricePaise - line.CostPaise) * int64(line.Quantity)
	}
	if outcome.AmountPaise != amount {
		t.Fatalf("amount %d does not equal line sum %d", outcome.AmountPaise, amount)
	}
	if outcome.ProfitPaise != profit {
		t.Fatalf("profit %d does not equal line sum %d", outcome.ProfitPaise, profit)
	}
}

func TestConcurrentSalesNeverOversell(t *testing.T) {
	processor, store := newTestProcessor(t, []domain.CatalogItem{
		{ID: "itm-sugar", Name: "Sugar 1kg", Stock: 40, PricePaise: 5000, CostPaise: 4000},
	})

	const workers = 20
	var wg sync.WaitGroup
	outcomes := make([]domain.SaleOutcome, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			outcomes[idx] = processor.ProcessSale(context.Background(), []domain.LineRequest{
				{Name: "cheeni", Quantity: 3},
			})
		}(i)
	}
	wg.Wait()

	totalSold := 0
	for _, outcome := range outcomes {
		for _, line := range outcome.Items {
			totalSold += line.Quantity
		}
	}
	if totalSold > 40 {
		t.Fatalf("sold %d units from initial stock 40", totalSold)
	}

	item, err := store.Get("itm-sugar")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if item.Stock != 40-totalSold {
		t.Fatalf("expected stock %d, got %d", 40-totalSold, item.Stock)
	}
}

func TestNewRecordFreezesOutcome(t *testing.T) {
	outcome := domain.SaleOutcome{
		Success:     true,
		Message:     MessageSaved,
		Items:       []domain.LineOutcome{{Name: "Sugar 1kg", Quantity: 3, PricePaise: 5000, CostPaise: 4000}},
		AmountPaise: 15000,
		ProfitPaise: 3000,
	}

	record := NewRecord(outcome, "UPI")
	if record.ID == "" {
		t.Fatalf("expected record id to be set")
	}
	if record.CreatedAt.IsZero() {
		t.Fatalf("expected record timestamp to be set")
	}
	if record.PaymentMethod != domain.PaymentUPI {
		t.Fatalf("expected upi payment method, got %s", record.PaymentMethod)
	}
	if record.AmountPaise != 15000 || record.ProfitPaise != 3000 {
		t.Fatalf("unexpected totals: %+v", record)
	}

	// The record owns its own copy of the lines.
	outcome.Items[0].Quantity = 99
	if record.Items[0].Quantity != 3 {
		t.Fatalf("expected record lines to be independent of the outcome")
	}
}

func TestNewRecordUnknownPaymentFallsBackToCash(t *testing.T) {
	record := NewRecord(domain.SaleOutcome{}, "barter")
	if record.PaymentMethod != domain.PaymentCash {
		t.Fatalf("expected cash fallback, got %s", record.PaymentMethod)
	}
}
