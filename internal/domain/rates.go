package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one row of a daily rate snapshot: one unit of Base is
// worth Rate units of Quote on SnapshotDate.
type ExchangeRate struct {
	Base         Currency
	Quote        Currency
	Rate         decimal.Decimal
	SnapshotDate time.Time
}
