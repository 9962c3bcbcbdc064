package domain

// Role identifies the principal kind resolved from a credential.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAgent    Role = "agent"
	RoleCustomer Role = "customer"
)

// Principal is the authenticated actor attached to a request.
// Exactly one role applies; ID is the row id in the role's table.
type Principal struct {
	Role  Role   `json:"role"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Agent-only extras, zero for other roles.
	AdminID        int64   `json:"admin_id,omitempty"`
	CommissionRate float64 `json:"commission_rate,omitempty"`
}
