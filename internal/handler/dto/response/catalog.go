package response

import (
	"pos-register/internal/domain/catalog"

	"github.com/google/uuid"
)

type CatalogEntryResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	UnitPriceCents    int64     `json:"unitPriceCents"`
	AvailableQuantity int       `json:"availableQuantity"`
}

func FromEntries(entries []catalog.Entry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = CatalogEntryResponse{
			ID:                e.ID,
			Name:              e.Name,
			Category:          e.Category,
			UnitPriceCents:    e.UnitPriceCents,
			AvailableQuantity: e.AvailableQuantity,
		}
	}
	return out
}
