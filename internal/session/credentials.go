package session

// Roles of the demo accounts.
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// Credential is a fixed demo account. Passwords are compared in plain text; this is a
// demo gate, not a security boundary.
type Credential struct {
	Username string
	Password string
	Role     string
}

// DefaultCredentials returns the demo account list.
func DefaultCredentials() []Credential {
	return []Credential{
		{Username: "admin", Password: "admin123", Role: RoleAdmin},
		{Username: "staff", Password: "staff123", Role: RoleEmployee},
	}
}
