package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidPartyRole     = errors.New("invalid party role")
	ErrInvalidCurrency      = errors.New("invalid currency")
	ErrInvalidAmount        = errors.New("amount must not be negative")
	ErrUnclassifiedDocument = errors.New("document kind not classifiable for party role")
	ErrRateUnavailable      = errors.New("exchange rate unavailable")
)
