package salesgw

import (
	"encoding/json"

	"pos-register/internal/domain/catalog"
	"pos-register/internal/domain/sale"

	"github.com/google/uuid"
)

// Wire shapes of the sales authority. The authority owns this contract;
// the register only decodes it.

type sessionDTO struct {
	ID             uuid.UUID     `json:"id"`
	SequenceNumber int64         `json:"sequenceNumber"`
	Status         string        `json:"status"`
	Items          []lineItemDTO `json:"items"`
	TotalCents     int64         `json:"totalCents"`
}

type lineItemDTO struct {
	ID             uuid.UUID `json:"id"`
	CatalogEntryID uuid.UUID `json:"catalogEntryId"`
	DisplayName    string    `json:"displayName"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type catalogEntryDTO struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	UnitPriceCents    int64     `json:"unitPriceCents"`
	AvailableQuantity int       `json:"availableQuantity"`
}

type addItemRequest struct {
	CatalogEntryID uuid.UUID `json:"catalogEntryId"`
	Quantity       int       `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

type finalizeRequest struct {
	CustomerContact *string `json:"customerContact,omitempty"`
}

type remoteErrorDTO struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeRemoteErrorCode(body []byte) string {
	var dto remoteErrorDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return ""
	}
	return dto.Error.Code
}

func (d sessionDTO) toDomain() (*sale.Session, error) {
	items := make([]sale.LineItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = sale.ReconstructLineItem(
			it.ID,
			it.CatalogEntryID,
			it.DisplayName,
			it.UnitPriceCents,
			it.Quantity,
			it.SubtotalCents,
		)
	}
	return sale.ReconstructSession(d.ID, d.SequenceNumber, sale.Status(d.Status), items, d.TotalCents)
}

func entriesToDomain(dtos []catalogEntryDTO) []catalog.Entry {
	entries := make([]catalog.Entry, len(dtos))
	for i, d := range dtos {
		entries[i] = catalog.Entry{
			ID:                d.ID,
			Name:              d.Name,
			Category:          d.Category,
			UnitPriceCents:    d.UnitPriceCents,
			AvailableQuantity: d.AvailableQuantity,
		}
	}
	return entries
}
