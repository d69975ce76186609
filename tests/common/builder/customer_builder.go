//go:build unit || e2e

package builder

import (
	"engros-ordering/internal/domain/customer"
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	CompanyName     string
	ContactName     string
	Phone           string
	Role            string
	GroupID         uuid.UUID
	GroupName       string
	GroupColor      string
	GroupPercentOff float64
	GroupActive     bool
	IsActive        bool
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:              uuid.New(),
		Email:           "mette@havnen.dk",
		PasswordHash:    "hashed_password",
		CompanyName:     "Restaurant Havnen ApS",
		ContactName:     "Mette Jensen",
		Phone:           "+45 22 33 44 55",
		Role:            "customer",
		GroupID:         uuid.New(),
		GroupName:       "Guld",
		GroupColor:      "#FFD700",
		GroupPercentOff: 10,
		GroupActive:     true,
		IsActive:        true,
	}
}

func (b *CustomerBuilder) WithID(id uuid.UUID) *CustomerBuilder {
	b.ID = id
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) WithRole(role string) *CustomerBuilder {
	b.Role = role
	return b
}

func (b *CustomerBuilder) WithGroup(name string, percentOff float64) *CustomerBuilder {
	b.GroupName = name
	b.GroupPercentOff = percentOff
	return b
}

func (b *CustomerBuilder) AsAdmin() *CustomerBuilder {
	b.Role = "admin"
	return b
}

func (b *CustomerBuilder) AsInactive() *CustomerBuilder {
	b.IsActive = false
	return b
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	email, err := customer.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := customer.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	group, err := customer.NewDiscountGroup(b.GroupID, b.GroupName, b.GroupColor, b.GroupPercentOff, b.GroupActive)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(email, b.PasswordHash, b.CompanyName, b.ContactName, b.Phone, role, group), nil
}

func (b *CustomerBuilder) BuildReadModel() *queries.CustomerView {
	return &queries.CustomerView{
		ID:              b.ID,
		Email:           b.Email,
		CompanyName:     b.CompanyName,
		ContactName:     b.ContactName,
		Phone:           b.Phone,
		Role:            b.Role,
		GroupName:       b.GroupName,
		GroupColor:      b.GroupColor,
		GroupPercentOff: b.GroupPercentOff,
	}
}

func (b *CustomerBuilder) BuildRecord() *queries.CustomerRecord {
	return &queries.CustomerRecord{
		ID:              b.ID,
		Email:           b.Email,
		CompanyName:     b.CompanyName,
		ContactName:     b.ContactName,
		Phone:           b.Phone,
		Role:            b.Role,
		GroupID:         b.GroupID,
		GroupName:       b.GroupName,
		GroupColor:      b.GroupColor,
		GroupPercentOff: b.GroupPercentOff,
		GroupActive:     b.GroupActive,
	}
}
