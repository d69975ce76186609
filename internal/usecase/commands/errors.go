package commands

import "engros-ordering/internal/pkg/errs"

var (
	ErrNotAuthenticated        = errs.New("not authenticated")
	ErrInvalidQuantity         = errs.New("invalid quantity")
	ErrProductNotFound         = errs.New("product not found")
	ErrProductInactive         = errs.New("product is inactive")
	ErrCartEmpty               = errs.New("cart is empty")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrOrderNotFound           = errs.New("order not found")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrInvalidCredentials      = errs.New("invalid credentials")
	ErrInvalidOfferWindow      = errs.New("invalid offer validity window")
	ErrInvalidOfferPrice       = errs.New("invalid offer price")
	ErrFlashSaleNotFound       = errs.New("flash sale not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
