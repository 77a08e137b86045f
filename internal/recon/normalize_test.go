package recon

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veloxerp/cari-recon/internal/domain"
)

func TestNormalizeSalesInvoice(t *testing.T) {
	rate := decimal.RequireFromString("34.5")
	invoiceDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	inv := domain.SalesInvoice{
		ID:          uuid.New(),
		TotalAmount: decimal.RequireFromString("1200.40"),
		Currency:    "usd",
		LockedRate:  &rate,
		InvoiceDate: invoiceDate,
	}

	entry, err := NormalizeSalesInvoice(inv, domain.PartyRoleCustomer)
	require.NoError(t, err)

	assert.Equal(t, inv.ID, entry.SourceID)
	assert.Equal(t, domain.DocumentKindSalesInvoice, entry.Kind)
	assert.Equal(t, domain.CurrencyUSD, entry.Currency)
	assert.True(t, entry.SignedAmount.Equal(inv.TotalAmount), "signed: got %s", entry.SignedAmount)
	assert.Equal(t, &rate, entry.LockedRate)
	assert.Equal(t, invoiceDate, entry.OccurredOn)
}

func TestNormalizePurchaseInvoiceLegacyCurrencyAlias(t *testing.T) {
	inv := domain.PurchaseInvoice{
		ID:          uuid.New(),
		TotalAmount: decimal.NewFromInt(500),
		Currency:    "TL",
		InvoiceDate: time.Now().UTC(),
	}

	entry, err := NormalizePurchaseInvoice(inv, domain.PartyRoleSupplier)
	require.NoError(t, err)

	assert.Equal(t, domain.CurrencyTRY, entry.Currency)
	assert.True(t, entry.SignedAmount.Equal(decimal.NewFromInt(500)))
}

func TestNormalizePaymentSignApplied(t *testing.T) {
	p := domain.Payment{
		ID:          uuid.New(),
		Amount:      decimal.NewFromInt(400),
		Currency:    "TRY",
		Direction:   domain.DirectionIncoming,
		VoucherType: domain.VoucherTypeRegular,
		PaymentDate: time.Now().UTC(),
	}

	entry, err := NormalizePayment(p, domain.PartyRoleCustomer)
	require.NoError(t, err)

	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(400)), "amount stays unsigned")
	assert.True(t, entry.SignedAmount.Equal(decimal.NewFromInt(-400)),
		"collection from customer must be negative, got %s", entry.SignedAmount)
}

func TestNormalizeRejectsNegativeAmount(t *testing.T) {
	inv := domain.SalesInvoice{
		ID:          uuid.New(),
		TotalAmount: decimal.NewFromInt(-10),
		Currency:    "TRY",
	}

	_, err := NormalizeSalesInvoice(inv, domain.PartyRoleCustomer)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestNormalizePaymentUnclassifiedPropagates(t *testing.T) {
	p := domain.Payment{
		ID:          uuid.New(),
		Amount:      decimal.NewFromInt(100),
		Currency:    "TRY",
		Direction:   domain.PaymentDirection("sideways"),
		VoucherType: domain.VoucherTypeRegular,
	}

	_, err := NormalizePayment(p, domain.PartyRoleCustomer)
	require.ErrorIs(t, err, domain.ErrUnclassifiedDocument)
}
