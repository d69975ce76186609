package queries

import (
	"context"

	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
}

type customerQueriesImpl struct {
	customers CustomerReadStore
}

func NewCustomerQueries(customers CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{customers: customers}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	record, err := q.customers.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Wrap(err, "failed to find customer")
	}

	return &CustomerView{
		ID:              record.ID,
		Email:           record.Email,
		CompanyName:     record.CompanyName,
		ContactName:     record.ContactName,
		Phone:           record.Phone,
		Role:            record.Role,
		GroupName:       record.GroupName,
		GroupColor:      record.GroupColor,
		GroupPercentOff: record.GroupPercentOff,
	}, nil
}
