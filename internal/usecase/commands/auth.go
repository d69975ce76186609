package commands

import (
	"context"

	"engros-ordering/internal/domain/customer"
	"engros-ordering/internal/infra"
	"engros-ordering/internal/pkg/errs"
	"engros-ordering/internal/pkg/jwt"
	"engros-ordering/internal/pkg/password"
	"engros-ordering/internal/usecase/queries"
	"engros-ordering/internal/usecase/shared"
)

type LoginOutput struct {
	Token    string
	Customer *queries.CustomerView
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginOutput, error)
}

type authCommandsImpl struct {
	uow             shared.UnitOfWork
	customerQueries queries.CustomerQueries
	jwtService      *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, customerQueries queries.CustomerQueries, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:             uow,
		customerQueries: customerQueries,
		jwtService:      jwtService,
	}
}

// Login never reveals whether the email or the password was wrong;
// unknown accounts and bad passwords both come back as
// ErrInvalidCredentials.
func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginOutput, error) {
	cust, err := a.uow.CommandReads().CustomerByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !cust.Active {
		return nil, ErrInvalidCredentials
	}

	if err := password.Compare(cust.PasswordHash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := customer.NewRole(cust.Role)
	if err != nil {
		return nil, errs.Wrap(err, "stored role is invalid")
	}

	token, err := a.jwtService.GenerateToken(cust.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	view, err := a.customerQueries.GetByID(ctx, cust.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Token: token, Customer: view}, nil
}
