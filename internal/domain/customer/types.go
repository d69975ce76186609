package customer

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleCustomer, RoleAdmin:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// DefaultGroupName is the discount group customers belong to when no
// explicit assignment exists. Its percentage is always 0.
const DefaultGroupName = "Standard"
