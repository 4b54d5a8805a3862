package entities

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

// Principal is the authenticated caller.
type Principal struct {
	UserID  string
	Role    Role
	IsAdmin bool
}

func (p Principal) Admin() bool {
	return p.IsAdmin || p.Role == RoleAdmin
}
