package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Currency
	}{
		{name: "legacy TL alias", code: "TL", want: CurrencyTRY},
		{name: "lowercase alias", code: "tl", want: CurrencyTRY},
		{name: "iso code untouched", code: "TRY", want: CurrencyTRY},
		{name: "lowercase iso code", code: "usd", want: CurrencyUSD},
		{name: "surrounding whitespace", code: " EUR ", want: CurrencyEUR},
		{name: "unknown code passes through", code: "CHF", want: Currency("CHF")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeCurrency(tc.code))
		})
	}
}

func TestCurrencyIsValid(t *testing.T) {
	assert.True(t, CurrencyTRY.IsValid())
	assert.True(t, CurrencyGBP.IsValid())
	assert.False(t, Currency("TL").IsValid(), "aliases must be normalized before validation")
	assert.False(t, Currency("").IsValid())
}
