package response

import (
	"engros-ordering/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	Customer    *queries.CustomerView `json:"customer"`
}
