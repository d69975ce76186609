package response

import (
	"engros-ordering/internal/domain/pricing"

	"github.com/google/uuid"
)

type OverrideResultResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	GroupID   uuid.UUID `json:"group_id"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
}

type BulkGroupPriceResponse struct {
	Results []OverrideResultResponse `json:"results"`
}

func FromOverrideResults(results []pricing.OverrideResult) BulkGroupPriceResponse {
	resp := BulkGroupPriceResponse{Results: make([]OverrideResultResponse, len(results))}
	for i, r := range results {
		resp.Results[i] = OverrideResultResponse{
			ProductID: r.ProductID,
			GroupID:   r.GroupID,
			OK:        r.OK,
			Error:     r.Error,
		}
	}
	return resp
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
