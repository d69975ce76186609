package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidGroupPercent = errors.New("group percentage must be between 0 and 100")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email string

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if !emailRegex.MatchString(value) {
		return "", ErrInvalidEmail
	}
	return Email(value), nil
}

func (e Email) String() string {
	return string(e)
}

// DiscountGroup is a named customer segment carrying a default
// percentage discount. Color is display-only.
type DiscountGroup struct {
	id         uuid.UUID
	name       string
	color      string
	percentOff float64
	active     bool
}

func NewDiscountGroup(id uuid.UUID, name, color string, percentOff float64, active bool) (*DiscountGroup, error) {
	if percentOff < 0 || percentOff > 100 {
		return nil, ErrInvalidGroupPercent
	}
	return &DiscountGroup{
		id:         id,
		name:       name,
		color:      color,
		percentOff: percentOff,
		active:     active,
	}, nil
}

func (g *DiscountGroup) ID() uuid.UUID       { return g.id }
func (g *DiscountGroup) Name() string        { return g.name }
func (g *DiscountGroup) Color() string       { return g.color }
func (g *DiscountGroup) PercentOff() float64 { return g.percentOff }
func (g *DiscountGroup) IsActive() bool      { return g.active }

// Customer is a company account. Every customer belongs to exactly one
// discount group; Group falls back to Standard (0%) upstream when the
// assignment is missing.
type Customer struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	companyName  string
	contactName  string
	phone        string
	role         Role
	group        *DiscountGroup
	active       bool
	createdAt    time.Time
}

func NewCustomer(email Email, passwordHash, companyName, contactName, phone string, role Role, group *DiscountGroup) *Customer {
	return &Customer{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		companyName:  companyName,
		contactName:  contactName,
		phone:        phone,
		role:         role,
		group:        group,
		active:       true,
	}
}

func Reconstruct(
	id uuid.UUID,
	email Email,
	passwordHash, companyName, contactName, phone string,
	role Role,
	group *DiscountGroup,
	active bool,
	createdAt time.Time,
) *Customer {
	return &Customer{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		companyName:  companyName,
		contactName:  contactName,
		phone:        phone,
		role:         role,
		group:        group,
		active:       active,
		createdAt:    createdAt,
	}
}

func (c *Customer) ID() uuid.UUID         { return c.id }
func (c *Customer) Email() Email          { return c.email }
func (c *Customer) PasswordHash() string  { return c.passwordHash }
func (c *Customer) CompanyName() string   { return c.companyName }
func (c *Customer) ContactName() string   { return c.contactName }
func (c *Customer) Phone() string         { return c.phone }
func (c *Customer) Role() Role            { return c.role }
func (c *Customer) Group() *DiscountGroup { return c.group }
func (c *Customer) IsActive() bool        { return c.active }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
