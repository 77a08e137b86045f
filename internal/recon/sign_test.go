package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veloxerp/cari-recon/internal/domain"
)

func TestResolveSign(t *testing.T) {
	tests := []struct {
		name      string
		role      domain.PartyRole
		kind      domain.DocumentKind
		direction domain.PaymentDirection
		voucher   domain.VoucherType
		want      int
	}{
		{name: "customer sales invoice", role: domain.PartyRoleCustomer, kind: domain.DocumentKindSalesInvoice, want: +1},
		{name: "customer purchase invoice", role: domain.PartyRoleCustomer, kind: domain.DocumentKindPurchaseInvoice, want: -1},
		{name: "supplier purchase invoice", role: domain.PartyRoleSupplier, kind: domain.DocumentKindPurchaseInvoice, want: +1},
		{name: "supplier sales invoice", role: domain.PartyRoleSupplier, kind: domain.DocumentKindSalesInvoice, want: -1},

		{name: "customer collection", role: domain.PartyRoleCustomer, kind: domain.DocumentKindPayment, direction: domain.DirectionIncoming, voucher: domain.VoucherTypeRegular, want: -1},
		{name: "customer refund", role: domain.PartyRoleCustomer, kind: domain.DocumentKindPayment, direction: domain.DirectionOutgoing, voucher: domain.VoucherTypeRegular, want: +1},
		{name: "money received from supplier", role: domain.PartyRoleSupplier, kind: domain.DocumentKindPayment, direction: domain.DirectionIncoming, voucher: domain.VoucherTypeRegular, want: +1},
		{name: "money paid to supplier", role: domain.PartyRoleSupplier, kind: domain.DocumentKindPayment, direction: domain.DirectionOutgoing, voucher: domain.VoucherTypeRegular, want: -1},

		{name: "customer debit voucher", role: domain.PartyRoleCustomer, kind: domain.DocumentKindPayment, direction: domain.DirectionOutgoing, voucher: domain.VoucherTypeVoucher, want: +1},
		{name: "customer credit voucher", role: domain.PartyRoleCustomer, kind: domain.DocumentKindPayment, direction: domain.DirectionIncoming, voucher: domain.VoucherTypeVoucher, want: -1},
		{name: "supplier debit voucher", role: domain.PartyRoleSupplier, kind: domain.DocumentKindPayment, direction: domain.DirectionOutgoing, voucher: domain.VoucherTypeVoucher, want: +1},
		{name: "supplier credit voucher", role: domain.PartyRoleSupplier, kind: domain.DocumentKindPayment, direction: domain.DirectionIncoming, voucher: domain.VoucherTypeVoucher, want: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sign, err := ResolveSign(tc.role, tc.kind, tc.direction, tc.voucher)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sign)
		})
	}
}

func TestResolveSignUnclassified(t *testing.T) {
	tests := []struct {
		name      string
		role      domain.PartyRole
		kind      domain.DocumentKind
		direction domain.PaymentDirection
		voucher   domain.VoucherType
	}{
		{name: "unknown role", role: domain.PartyRole("employee"), kind: domain.DocumentKindSalesInvoice},
		{name: "unknown kind", role: domain.PartyRoleCustomer, kind: domain.DocumentKind("credit_note")},
		{name: "payment without direction", role: domain.PartyRoleCustomer, kind: domain.DocumentKindPayment, voucher: domain.VoucherTypeRegular},
		{name: "payment without voucher type", role: domain.PartyRoleSupplier, kind: domain.DocumentKindPayment, direction: domain.DirectionIncoming},
		{name: "unknown voucher type", role: domain.PartyRoleCustomer, kind: domain.DocumentKindPayment, direction: domain.DirectionIncoming, voucher: domain.VoucherType("memo")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveSign(tc.role, tc.kind, tc.direction, tc.voucher)
			require.ErrorIs(t, err, domain.ErrUnclassifiedDocument)
		})
	}
}
