package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/veloxerp/cari-recon/internal/domain"
)

const salesInvoiceColumns = `id, total_amount, currency, exchange_rate, invoice_date`

type SalesInvoiceRepository struct {
	db *sql.DB
}

func NewSalesInvoiceRepository(db *sql.DB) *SalesInvoiceRepository {
	return &SalesInvoiceRepository{db: db}
}

// ListForParty returns every sales invoice owned by the party. No rows is
// an empty slice, never an error.
func (r *SalesInvoiceRepository) ListForParty(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) ([]domain.SalesInvoice, error) {
	column, err := partyColumn(role)
	if err != nil {
		return nil, fmt.Errorf("ListForParty: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+salesInvoiceColumns+` FROM sales_invoices WHERE `+column+` = $1`,
		partyID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListForParty: %w", err)
	}
	defer rows.Close()

	invoices := []domain.SalesInvoice{}
	for rows.Next() {
		inv, err := scanSalesInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("ListForParty: scan: %w", err)
		}
		invoices = append(invoices, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListForParty: rows: %w", err)
	}
	return invoices, nil
}

func scanSalesInvoice(s scanner) (*domain.SalesInvoice, error) {
	var inv domain.SalesInvoice
	var lockedRate decimal.NullDecimal
	err := s.Scan(&inv.ID, &inv.TotalAmount, &inv.Currency, &lockedRate, &inv.InvoiceDate)
	if err != nil {
		return nil, err
	}
	if lockedRate.Valid {
		inv.LockedRate = &lockedRate.Decimal
	}
	return &inv, nil
}
