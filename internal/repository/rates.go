package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/veloxerp/cari-recon/internal/domain"
)

type RateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// LatestRates returns the most recent daily snapshot in full. An empty
// table yields an empty slice; pair resolution failures surface later as
// rate-unavailable errors during conversion.
func (r *RateRepository) LatestRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT base_currency, quote_currency, rate, snapshot_date
		FROM exchange_rates
		WHERE snapshot_date = (SELECT MAX(snapshot_date) FROM exchange_rates)`,
	)
	if err != nil {
		return nil, fmt.Errorf("LatestRates: %w", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		var rate domain.ExchangeRate
		if err := rows.Scan(&rate.Base, &rate.Quote, &rate.Rate, &rate.SnapshotDate); err != nil {
			return nil, fmt.Errorf("LatestRates: scan: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LatestRates: rows: %w", err)
	}
	return rates, nil
}
