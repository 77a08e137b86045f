package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/veloxerp/cari-recon/internal/domain"
)

const purchaseInvoiceColumns = `id, total_amount, currency, exchange_rate, invoice_date`

type PurchaseInvoiceRepository struct {
	db *sql.DB
}

func NewPurchaseInvoiceRepository(db *sql.DB) *PurchaseInvoiceRepository {
	return &PurchaseInvoiceRepository{db: db}
}

func (r *PurchaseInvoiceRepository) ListForParty(ctx context.Context, partyID uuid.UUID, role domain.PartyRole) ([]domain.PurchaseInvoice, error) {
	column, err := partyColumn(role)
	if err != nil {
		return nil, fmt.Errorf("ListForParty: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+purchaseInvoiceColumns+` FROM purchase_invoices WHERE `+column+` = $1`,
		partyID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListForParty: %w", err)
	}
	defer rows.Close()

	invoices := []domain.PurchaseInvoice{}
	for rows.Next() {
		inv, err := scanPurchaseInvoice(rows)
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

func scanPurchaseInvoice(s scanner) (*domain.PurchaseInvoice, error) {
	var inv domain.PurchaseInvoice
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
