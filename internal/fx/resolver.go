package fx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/veloxerp/cari-recon/internal/domain"
)

// RateTable is the conversion collaborator injected into a
// reconciliation. RateService implements it.
type RateTable interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error)
}

// Resolver turns document amounts into the reporting currency. A locked
// rate captured on the document at transaction time always wins over the
// rate table.
type Resolver struct {
	table RateTable
}

func NewResolver(table RateTable) *Resolver {
	return &Resolver{table: table}
}

func (r *Resolver) ToReporting(ctx context.Context, amount decimal.Decimal, currency domain.Currency, lockedRate *decimal.Decimal, reporting domain.Currency) (decimal.Decimal, error) {
	currency = domain.NormalizeCurrency(string(currency))
	reporting = domain.NormalizeCurrency(string(reporting))

	if currency == reporting {
		return amount, nil
	}
	if lockedRate != nil && lockedRate.IsPositive() {
		return amount.Mul(*lockedRate), nil
	}

	converted, err := r.table.Convert(ctx, amount, currency, reporting)
	if err != nil {
		return decimal.Zero, fmt.Errorf("ToReporting: %w", err)
	}
	return converted, nil
}
