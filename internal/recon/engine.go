// Package recon computes a customer's or supplier's outstanding balance
// from its source documents. The engine is pure: it performs no I/O
// beyond the injected rate table and holds no state across calls.
package recon

import (
	"context"
	"fmt"

	"github.com/veloxerp/cari-recon/internal/domain"
	"github.com/veloxerp/cari-recon/internal/fx"
)

type Engine struct {
	resolver  *fx.Resolver
	reporting domain.Currency
}

func NewEngine(table fx.RateTable, reporting domain.Currency) *Engine {
	return &Engine{
		resolver:  fx.NewResolver(table),
		reporting: domain.NormalizeCurrency(string(reporting)),
	}
}

// Reconcile normalizes every document in the set against the given party
// role and folds the result into one balance. Errors on any single
// document abort the call; no partial balance is ever returned.
func (e *Engine) Reconcile(ctx context.Context, role domain.PartyRole, docs domain.DocumentSet) (*domain.PartyBalance, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("Reconcile: %q: %w", role, domain.ErrInvalidPartyRole)
	}

	entries := make([]domain.LedgerEntry, 0,
		len(docs.SalesInvoices)+len(docs.PurchaseInvoices)+len(docs.Payments))

	for _, inv := range docs.SalesInvoices {
		entry, err := NormalizeSalesInvoice(inv, role)
		if err != nil {
			return nil, fmt.Errorf("Reconcile: %w", err)
		}
		entries = append(entries, entry)
	}
	for _, inv := range docs.PurchaseInvoices {
		entry, err := NormalizePurchaseInvoice(inv, role)
		if err != nil {
			return nil, fmt.Errorf("Reconcile: %w", err)
		}
		entries = append(entries, entry)
	}
	for _, p := range docs.Payments {
		entry, err := NormalizePayment(p, role)
		if err != nil {
			return nil, fmt.Errorf("Reconcile: %w", err)
		}
		entries = append(entries, entry)
	}

	balance, err := Accumulate(ctx, entries, e.reporting, e.resolver)
	if err != nil {
		return nil, fmt.Errorf("Reconcile: %w", err)
	}
	return balance, nil
}
