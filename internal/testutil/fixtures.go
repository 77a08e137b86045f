package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/veloxerp/cari-recon/internal/domain"
)

func InsertCustomer(t *testing.T, db *sql.DB, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if _, err := db.Exec(`INSERT INTO customers (id, name) VALUES ($1, $2)`, id, name); err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	return id
}

func InsertSupplier(t *testing.T, db *sql.DB, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	if _, err := db.Exec(`INSERT INTO suppliers (id, name) VALUES ($1, $2)`, id, name); err != nil {
		t.Fatalf("insert supplier: %v", err)
	}
	return id
}

// DocumentOpts carries the optional columns shared by all document
// fixtures; zero values mean "leave NULL / use the default".
type DocumentOpts struct {
	CustomerID *uuid.UUID
	SupplierID *uuid.UUID
	LockedRate *decimal.Decimal
	Date       time.Time
}

func (o DocumentOpts) date() time.Time {
	if o.Date.IsZero() {
		return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	}
	return o.Date
}

func InsertSalesInvoice(t *testing.T, db *sql.DB, amount, currency string, opts DocumentOpts) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO sales_invoices (id, customer_id, supplier_id, total_amount, currency, exchange_rate, invoice_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, opts.CustomerID, opts.SupplierID, amount, currency, nullDecimal(opts.LockedRate), opts.date(),
	)
	if err != nil {
		t.Fatalf("insert sales invoice: %v", err)
	}
	return id
}

func InsertPurchaseInvoice(t *testing.T, db *sql.DB, amount, currency string, opts DocumentOpts) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO purchase_invoices (id, customer_id, supplier_id, total_amount, currency, exchange_rate, invoice_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, opts.CustomerID, opts.SupplierID, amount, currency, nullDecimal(opts.LockedRate), opts.date(),
	)
	if err != nil {
		t.Fatalf("insert purchase invoice: %v", err)
	}
	return id
}

func InsertPayment(t *testing.T, db *sql.DB, amount, currency string, direction domain.PaymentDirection, voucherType domain.VoucherType, opts DocumentOpts) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO payments (id, customer_id, supplier_id, amount, currency, exchange_rate, payment_direction, payment_type, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, opts.CustomerID, opts.SupplierID, amount, currency, nullDecimal(opts.LockedRate),
		direction, voucherType, opts.date(),
	)
	if err != nil {
		t.Fatalf("insert payment: %v", err)
	}
	return id
}

func InsertRate(t *testing.T, db *sql.DB, base, quote domain.Currency, rate string, snapshotDate time.Time) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO exchange_rates (base_currency, quote_currency, rate, snapshot_date)
		VALUES ($1, $2, $3, $4)`,
		base, quote, rate, snapshotDate,
	)
	if err != nil {
		t.Fatalf("insert exchange rate: %v", err)
	}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
