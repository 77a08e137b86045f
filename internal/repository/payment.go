package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/veloxerp/cari-recon/internal/domain"
)

const paymentColumns = `id, amount, currency, exchange_rate, payment_direction, payment_type, payment_date`

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) ListForParty(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) ([]domain.Payment, error) {
	column, err := partyColumn(role)
	if err != nil {
		return nil, fmt.Errorf("ListForParty: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE `+column+` = $1`,
		partyID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListForParty: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("ListForParty: scan: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListForParty: rows: %w", err)
	}
	return payments, nil
}

func scanPayment(s scanner) (*domain.Payment, error) {
	var p domain.Payment
	var lockedRate decimal.NullDecimal
	err := s.Scan(&p.ID, &p.Amount, &p.Currency, &lockedRate,
		&p.Direction, &p.VoucherType, &p.PaymentDate)
	if err != nil {
		return nil, err
	}
	if lockedRate.Valid {
		p.LockedRate = &lockedRate.Decimal
	}
	return &p, nil
}
