package domain

type PartyRole string

const (
	PartyRoleCustomer PartyRole = "customer"
	PartyRoleSupplier PartyRole = "supplier"
)

func (r PartyRole) IsValid() bool {
	return r == PartyRoleCustomer || r == PartyRoleSupplier
}
