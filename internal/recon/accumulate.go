package recon

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/veloxerp/cari-recon/internal/domain"
	"github.com/veloxerp/cari-recon/internal/fx"
)

// Accumulate folds canonical entries into a party balance. Addition is
// commutative, so input order never changes the result. Any conversion
// failure aborts the whole fold: a balance missing one entry is worse
// than no balance at all.
func Accumulate(ctx context.Context, entries []domain.LedgerEntry, reporting domain.Currency, resolver *fx.Resolver) (*domain.PartyBalance, error) {
	reporting = domain.NormalizeCurrency(string(reporting))

	total := decimal.Zero
	native := make(map[domain.Currency]decimal.Decimal)

	for _, entry := range entries {
		converted, err := resolver.ToReporting(ctx, entry.SignedAmount, entry.Currency, entry.LockedRate, reporting)
		if err != nil {
			return nil, fmt.Errorf("Accumulate: %s %s: %w", entry.Kind, entry.SourceID, err)
		}
		total = total.Add(converted)

		if entry.Currency != reporting {
			native[entry.Currency] = native[entry.Currency].Add(entry.SignedAmount)
		}
	}

	return &domain.PartyBalance{
		ReportingCurrency: reporting,
		Total:             total,
		NativeSubtotals:   native,
	}, nil
}
