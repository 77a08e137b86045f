package recon

import (
	"fmt"

	"github.com/veloxerp/cari-recon/internal/domain"
)

// signKey identifies one row of the classification table. Direction and
// Voucher are empty for invoice kinds.
type signKey struct {
	Role      domain.PartyRole
	Kind      domain.DocumentKind
	Direction domain.PaymentDirection
	Voucher   domain.VoucherType
}

// signTable is the single source of truth for document polarity.
// Positive means the document increases what the party owes us, negative
// means it decreases it. New document kinds are added here, never as
// conditionals at a call site.
var signTable = map[signKey]int{
	{Role: domain.PartyRoleCustomer, Kind: domain.DocumentKindSalesInvoice}:    +1,
	{Role: domain.PartyRoleCustomer, Kind: domain.DocumentKindPurchaseInvoice}: -1,
	{Role: domain.PartyRoleSupplier, Kind: domain.DocumentKindPurchaseInvoice}: +1,
	{Role: domain.PartyRoleSupplier, Kind: domain.DocumentKindSalesInvoice}:    -1,

	// Settlement payments move the balance opposite to the debt they
	// settle: collecting from a customer shrinks their debt, refunding
	// them grows it. The supplier half mirrors.
	{Role: domain.PartyRoleCustomer, Kind: domain.DocumentKindPayment, Direction: domain.DirectionIncoming, Voucher: domain.VoucherTypeRegular}: -1,
	{Role: domain.PartyRoleCustomer, Kind: domain.DocumentKindPayment, Direction: domain.DirectionOutgoing, Voucher: domain.VoucherTypeRegular}: +1,
	{Role: domain.PartyRoleSupplier, Kind: domain.DocumentKindPayment, Direction: domain.DirectionIncoming, Voucher: domain.VoucherTypeRegular}: +1,
	{Role: domain.PartyRoleSupplier, Kind: domain.DocumentKindPayment, Direction: domain.DirectionOutgoing, Voucher: domain.VoucherTypeRegular}: -1,

	// Manual memos: outgoing is a debit voucher, incoming a credit
	// voucher, for either role.
	{Role: domain.PartyRoleCustomer, Kind: domain.DocumentKindPayment, Direction: domain.DirectionOutgoing, Voucher: domain.VoucherTypeVoucher}: +1,
	{Role: domain.PartyRoleCustomer, Kind: domain.DocumentKindPayment, Direction: domain.DirectionIncoming, Voucher: domain.VoucherTypeVoucher}: -1,
	{Role: domain.PartyRoleSupplier, Kind: domain.DocumentKindPayment, Direction: domain.DirectionOutgoing, Voucher: domain.VoucherTypeVoucher}: +1,
	{Role: domain.PartyRoleSupplier, Kind: domain.DocumentKindPayment, Direction: domain.DirectionIncoming, Voucher: domain.VoucherTypeVoucher}: -1,
}

// ResolveSign returns the multiplier for one document. An unmapped
// combination is an error, never a defaulted sign: a silently wrong
// polarity corrupts the balance without any visible failure.
func ResolveSign(role domain.PartyRole, kind domain.DocumentKind, direction domain.PaymentDirection, voucher domain.VoucherType) (int, error) {
	key := signKey{Role: role, Kind: kind}
	if kind == domain.DocumentKindPayment {
		key.Direction = direction
		key.Voucher = voucher
	}

	sign, ok := signTable[key]
	if !ok {
		return 0, fmt.Errorf("ResolveSign: %s/%s direction=%q voucher=%q: %w",
			role, kind, direction, voucher, domain.ErrUnclassifiedDocument)
	}
	return sign, nil
}
