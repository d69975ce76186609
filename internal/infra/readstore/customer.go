package readstore

import (
	"context"

	"engros-ordering/internal/infra"
	"engros-ordering/internal/infra/db"
	"engros-ordering/internal/pkg/pgconv"
	"engros-ordering/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CustomerRow is the raw joined customer read shared by the query and
// the command side. Customers without a group assignment resolve to
// the Standard group with zero percent.
type CustomerRow struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	CompanyName     string
	ContactName     string
	Phone           string
	Role            string
	Active          bool
	GroupID         uuid.UUID
	GroupName       string
	GroupColor      string
	GroupPercentOff float64
	GroupActive     bool
}

const customerSelect = `
SELECT c.id, c.email, c.password_hash, c.company_name, c.contact_name,
       c.phone, c.role, c.active,
       g.id,
       COALESCE(g.name, 'Standard'),
       COALESCE(g.color, ''),
       COALESCE(g.percent_off, 0),
       COALESCE(g.active, TRUE)
FROM customers c
LEFT JOIN discount_groups g ON g.id = c.group_id
`

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

func (s *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerRecord, error) {
	row, err := s.FindRowByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.CustomerRecord{
		ID:              row.ID,
		Email:           row.Email,
		CompanyName:     row.CompanyName,
		ContactName:     row.ContactName,
		Phone:           row.Phone,
		Role:            row.Role,
		GroupID:         row.GroupID,
		GroupName:       row.GroupName,
		GroupColor:      row.GroupColor,
		GroupPercentOff: row.GroupPercentOff,
		GroupActive:     row.GroupActive,
	}, nil
}

func (s *CustomerReadStore) FindRowByID(ctx context.Context, id uuid.UUID) (*CustomerRow, error) {
	return s.scanOne(s.db.QueryRow(ctx, customerSelect+"WHERE c.id = $1", id), "customer not found by id")
}

func (s *CustomerReadStore) FindRowByEmail(ctx context.Context, email string) (*CustomerRow, error) {
	return s.scanOne(s.db.QueryRow(ctx, customerSelect+"WHERE c.email = $1", email), "customer not found by email")
}

func (s *CustomerReadStore) scanOne(row interface{ Scan(dest ...any) error }, notFoundMsg string) (*CustomerRow, error) {
	var (
		r       CustomerRow
		groupID pgtype.UUID
	)
	err := row.Scan(
		&r.ID, &r.Email, &r.PasswordHash, &r.CompanyName, &r.ContactName,
		&r.Phone, &r.Role, &r.Active,
		&groupID, &r.GroupName, &r.GroupColor, &r.GroupPercentOff, &r.GroupActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}
	if id := pgconv.UUIDPtrFromPgtype(groupID); id != nil {
		r.GroupID = *id
	}
	return &r, nil
}
