package fx

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/veloxerp/cari-recon/internal/domain"
)

// RateSource supplies the most recent daily rate snapshot. Staleness
// policy belongs to the source, not to this service.
type RateSource interface {
	LatestRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// RateService converts amounts between currencies using a snapshot of
// pair rates. The snapshot is cached per calendar day; concurrent
// reconciliations share one cached copy.
type RateService struct {
	source   RateSource
	fallback map[string]decimal.Decimal

	mu        sync.RWMutex
	rates     map[string]decimal.Decimal
	loadedDay string
}

func NewRateService(source RateSource) *RateService {
	return &RateService{source: source}
}

// NewRateServiceWithFallback behaves like NewRateService, except that an
// empty snapshot falls back to the given rates instead of leaving every
// cross-currency conversion unresolvable. A non-empty snapshot always
// wins; the fallback never overrides stored rates.
func NewRateServiceWithFallback(source RateSource, fallback []domain.ExchangeRate) *RateService {
	return &RateService{source: source, fallback: buildPairMap(fallback)}
}

func pairKey(from, to domain.Currency) string {
	return string(from) + "_" + string(to)
}

// Convert expresses amount (which may be negative: signed ledger amounts
// pass through here) in the target currency. A missing pair is
// domain.ErrRateUnavailable; there is no implicit 1:1 fallback.
func (s *RateService) Convert(ctx context.Context, amount decimal.Decimal, from, to domain.Currency) (decimal.Decimal, error) {
	from = domain.NormalizeCurrency(string(from))
	to = domain.NormalizeCurrency(string(to))

	if from == to {
		return amount, nil
	}

	rates, err := s.snapshot(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("Convert: %w", err)
	}

	if rate, ok := rates[pairKey(from, to)]; ok {
		return amount.Mul(rate), nil
	}
	// Snapshots usually carry only one direction per pair.
	if inverse, ok := rates[pairKey(to, from)]; ok && !inverse.IsZero() {
		return amount.Div(inverse), nil
	}

	return decimal.Zero, fmt.Errorf("Convert: pair %s/%s: %w", from, to, domain.ErrRateUnavailable)
}

func (s *RateService) snapshot(ctx context.Context) (map[string]decimal.Decimal, error) {
	today := time.Now().UTC().Format("2006-01-02")

	s.mu.RLock()
	if s.loadedDay == today && s.rates != nil {
		rates := s.rates
		s.mu.RUnlock()
		return rates, nil
	}
	s.mu.RUnlock()

	// Re-check under the write lock so concurrent first requests load
	// the snapshot exactly once.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadedDay == today && s.rates != nil {
		return s.rates, nil
	}

	rows, err := s.source.LatestRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	rates := buildPairMap(rows)
	if len(rates) == 0 && s.fallback != nil {
		rates = s.fallback
	}

	s.rates = rates
	s.loadedDay = today
	return rates, nil
}

func buildPairMap(rows []domain.ExchangeRate) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		base := domain.NormalizeCurrency(string(r.Base))
		quote := domain.NormalizeCurrency(string(r.Quote))
		rates[pairKey(base, quote)] = r.Rate
	}
	return rates
}

// ParseRateList parses a comma-separated pair list of the form
// "USD/TRY=34.20,EUR/TRY=37.10", as supplied through configuration.
func ParseRateList(s string) ([]domain.ExchangeRate, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var rates []domain.ExchangeRate
	for _, item := range strings.Split(s, ",") {
		pair, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			return nil, fmt.Errorf("ParseRateList: %q: missing '='", item)
		}
		base, quote, ok := strings.Cut(pair, "/")
		if !ok {
			return nil, fmt.Errorf("ParseRateList: %q: pair must be BASE/QUOTE", item)
		}

		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("ParseRateList: %q: %w", item, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("ParseRateList: %q: rate must be positive", item)
		}

		rates = append(rates, domain.ExchangeRate{
			Base:  domain.NormalizeCurrency(base),
			Quote: domain.NormalizeCurrency(quote),
			Rate:  rate,
		})
	}
	return rates, nil
}

// StaticSource serves a fixed rate set; used for development setups
// without a rates table and in tests.
type StaticSource struct {
	Rates []domain.ExchangeRate
}

func (s StaticSource) LatestRates(_ context.Context) ([]domain.ExchangeRate, error) {
	return s.Rates, nil
}
