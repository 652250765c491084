// Package sale turns a batch of free-text line requests into a sale
// against the inventory store.
package sale

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"vmitra/engine/domain"
	"vmitra/engine/inventory"
)

// Status messages mirror what merchants see on the till.
const (
	MessageSaved   = "Bill save ho gaya!"
	MessageNoMatch = "Samaan nahi mila ya stock khatam hai."
)

type Processor struct {
	store *inventory.Store
}

func New(store *inventory.Store) *Processor {
	return &Processor{store: store}
}

// ProcessSale resolves each request against the catalog and decrements
// stock for what it can fulfill. Lines that resolve to nothing, request a
// non-positive quantity, or hit exhausted stock are skipped; the sale
// fails only when every line was skipped. Applied decrements are never
// rolled back; compensation is an explicit external operation.
func (p *Processor) ProcessSale(ctx context.Context, requests []domain.LineRequest) domain.SaleOutcome {
	outcome := domain.SaleOutcome{Items: make([]domain.LineOutcome, 0, len(requests))}

	for _, req := range requests {
		candidate, found := p.store.FindCandidate(ctx, req.Name)
		if !found {
			continue
		}

		fulfilled, snapshot, err := p.store.TryDecrement(candidate.ID, req.Quantity)
		if err != nil {
			if !errors.Is(err, inventory.ErrInvalidQuantity) {
				log.Printf("[sale] WARN: decrement %s failed: %v", candidate.ID, err)
			}
			continue
		}
		if fulfilled == 0 {
			continue
		}

		line := domain.LineOutcome{
			Name:       snapshot.Name,
			Quantity:   fulfilled,
			PricePaise: snapshot.PricePaise,
			CostPaise:  snapshot.CostPaise,
		}
		outcome.Items = append(outcome.Items, line)
		outcome.AmountPaise += line.PricePaise * int64(fulfilled)
		outcome.ProfitPaise += (line.PricePaise - line.CostPaise) * int64(fulfilled)
	}

	if len(outcome.Items) == 0 {
		return domain.SaleOutcome{
			Success: false,
			Message: MessageNoMatch,
			Items:   []domain.LineOutcome{},
		}
	}

	outcome.Success = true
	outcome.Message = MessageSaved
	return outcome
}

// NewRecord freezes a successful outcome into the record the caller
// persists. Unknown payment methods fall back to cash.
func NewRecord(outcome domain.SaleOutcome, paymentMethod string) domain.SaleRecord {
	method := strings.ToLower(strings.TrimSpace(paymentMethod))
	switch method {
	case domain.PaymentCash, domain.PaymentUPI, domain.PaymentCard:
	default:
		method = domain.PaymentCash
	}

	items := make([]domain.LineOutcome, len(outcome.Items))
	copy(items, outcome.Items)

	return domain.SaleRecord{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		PaymentMethod: method,
		Items:         items,
		AmountPaise:   outcome.AmountPaise,
		ProfitPaise:   outcome.ProfitPaise,
	}
}
