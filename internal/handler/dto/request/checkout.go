package request

import (
	"pos-register/internal/domain/sale"

	"github.com/google/uuid"
)

type AddItemRequest struct {
	CatalogEntryID uuid.UUID `json:"catalogEntryId" binding:"required"`
	Quantity       int       `json:"quantity" binding:"required,min=1"`
}

// Quantity is a pointer so zero survives binding; zero and below turn
// into a remove intent downstream.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type FinalizeRequest struct {
	CustomerContact *string `json:"customerContact,omitempty"`
}

func (r FinalizeRequest) ToContact() (*sale.CustomerContact, error) {
	if r.CustomerContact == nil {
		return nil, nil
	}
	contact, err := sale.NewCustomerContact(*r.CustomerContact)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
