package repository

import (
	"fmt"

	"github.com/veloxerp/cari-recon/internal/domain"
)

type scanner interface {
	Scan(dest ...any) error
}

// partyColumn maps a party role to the owning foreign-key column on the
// document tables. Documents reference customers and suppliers through
// separate columns, mirroring the upstream schema.
func partyColumn(role domain.PartyRole) (string, error) {
	switch role {
	case domain.PartyRoleCustomer:
		return "customer_id", nil
	case domain.PartyRoleSupplier:
		return "supplier_id", nil
	default:
		return "", fmt.Errorf("partyColumn: %q: %w", role, domain.ErrInvalidPartyRole)
	}
}
