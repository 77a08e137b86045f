package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DocumentKind string

const (
	DocumentKindSalesInvoice    DocumentKind = "sales_invoice"
	DocumentKindPurchaseInvoice DocumentKind = "purchase_invoice"
	DocumentKindPayment         DocumentKind = "payment"
)

type PaymentDirection string

const (
	DirectionIncoming PaymentDirection = "incoming"
	DirectionOutgoing PaymentDirection = "outgoing"
)

type VoucherType string

const (
	// VoucherTypeRegular is an ordinary settlement payment.
	VoucherTypeRegular VoucherType = "regular"
	// VoucherTypeVoucher is a manual debit or credit memo; its polarity
	// comes from the payment direction, not from money movement.
	VoucherTypeVoucher VoucherType = "voucher"
)

// SalesInvoice and PurchaseInvoice carry the amount as a non-negative
// total; the party role decides which side of the account it lands on.
// LockedRate, when set, is the exchange rate captured at invoicing time.
type SalesInvoice struct {
	ID          uuid.UUID
	TotalAmount decimal.Decimal
	Currency    string
	LockedRate  *decimal.Decimal
	InvoiceDate time.Time
}

type PurchaseInvoice struct {
	ID          uuid.UUID
	TotalAmount decimal.Decimal
	Currency    string
	LockedRate  *decimal.Decimal
	InvoiceDate time.Time
}

type Payment struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Currency    string
	LockedRate  *decimal.Decimal
	Direction   PaymentDirection
	VoucherType VoucherType
	PaymentDate time.Time
}

// DocumentSet holds every document fetched for one party. Slices may be
// empty but never carry partially loaded rows.
type DocumentSet struct {
	SalesInvoices    []SalesInvoice
	PurchaseInvoices []PurchaseInvoice
	Payments         []Payment
}
