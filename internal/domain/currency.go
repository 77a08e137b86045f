package domain

import "strings"

type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// currencyAliases maps legacy spellings still present in older documents
// to their ISO 4217 codes.
var currencyAliases = map[string]Currency{
	"TL": CurrencyTRY,
}

// NormalizeCurrency upper-cases a raw currency code and resolves known
// aliases. Unknown codes pass through unchanged and are treated as
// already canonical.
func NormalizeCurrency(code string) Currency {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if iso, ok := currencyAliases[upper]; ok {
		return iso
	}
	return Currency(upper)
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return true
	}
	return false
}
