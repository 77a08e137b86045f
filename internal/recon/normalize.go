package recon

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/veloxerp/cari-recon/internal/domain"
)

// Kind-specific field mapping lives here: every raw document shape is
// reduced to the same canonical entry before anything downstream ever
// sees it.

func NormalizeSalesInvoice(inv domain.SalesInvoice, role domain.PartyRole) (domain.LedgerEntry, error) {
	return newEntry(inv.ID, domain.DocumentKindSalesInvoice, inv.TotalAmount, inv.Currency,
		inv.LockedRate, inv.InvoiceDate, role, "", "")
}

func NormalizePurchaseInvoice(inv domain.PurchaseInvoice, role domain.PartyRole) (domain.LedgerEntry, error) {
	return newEntry(inv.ID, domain.DocumentKindPurchaseInvoice, inv.TotalAmount, inv.Currency,
		inv.LockedRate, inv.InvoiceDate, role, "", "")
}

func NormalizePayment(p domain.Payment, role domain.PartyRole) (domain.LedgerEntry, error) {
	return newEntry(p.ID, domain.DocumentKindPayment, p.Amount, p.Currency,
		p.LockedRate, p.PaymentDate, role, p.Direction, p.VoucherType)
}

func newEntry(
	id uuid.UUID,
	kind domain.DocumentKind,
	amount decimal.Decimal,
	currency string,
	lockedRate *decimal.Decimal,
	occurredOn time.Time,
	role domain.PartyRole,
	direction domain.PaymentDirection,
	voucher domain.VoucherType,
) (domain.LedgerEntry, error) {
	if amount.IsNegative() {
		return domain.LedgerEntry{}, fmt.Errorf("newEntry: %s %s amount %s: %w",
			kind, id, amount, domain.ErrInvalidAmount)
	}

	sign, err := ResolveSign(role, kind, direction, voucher)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("newEntry: %s %s: %w", kind, id, err)
	}

	return domain.LedgerEntry{
		SourceID:     id,
		Kind:         kind,
		Amount:       amount,
		Currency:     domain.NormalizeCurrency(currency),
		SignedAmount: amount.Mul(decimal.NewFromInt(int64(sign))),
		LockedRate:   lockedRate,
		OccurredOn:   occurredOn,
	}, nil
}
