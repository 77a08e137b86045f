package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is the canonical form every source document is reduced to
// before accumulation. SignedAmount is Amount multiplied by the resolved
// sign: positive increases what the party owes us, negative decreases it.
type LedgerEntry struct {
	SourceID     uuid.UUID
	Kind         DocumentKind
	Amount       decimal.Decimal
	Currency     Currency
	SignedAmount decimal.Decimal
	LockedRate   *decimal.Decimal
	OccurredOn   time.Time
}

// PartyBalance is the reconciliation result: the consolidated total in
// the reporting currency plus untouched native subtotals per foreign
// currency. NativeSubtotals never contains the reporting currency.
type PartyBalance struct {
	ReportingCurrency Currency
	Total             decimal.Decimal
	NativeSubtotals   map[Currency]decimal.Decimal
}
