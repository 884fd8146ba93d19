//go:build unit

package builder

import (
	"pos-register/internal/domain/sale"
	reqdto "pos-register/internal/handler/dto/request"

	"github.com/google/uuid"
)

type LineItemBuilder struct {
	ID             uuid.UUID
	CatalogEntryID uuid.UUID
	DisplayName    string
	UnitPriceCents int64
	Quantity       int
	SubtotalCents  int64
}

func NewLineItemBuilder() *LineItemBuilder {
	return &LineItemBuilder{
		ID:             uuid.New(),
		CatalogEntryID: uuid.New(),
		DisplayName:    "Espresso",
		UnitPriceCents: 350,
		Quantity:       1,
		SubtotalCents:  350,
	}
}

func (b *LineItemBuilder) With(mutate func(*LineItemBuilder)) *LineItemBuilder {
	mutate(b)
	return b
}

func (b *LineItemBuilder) WithQuantity(quantity int) *LineItemBuilder {
	b.Quantity = quantity
	b.SubtotalCents = b.UnitPriceCents * int64(quantity)
	return b
}

func (b *LineItemBuilder) BuildDomain() sale.LineItem {
	return sale.ReconstructLineItem(
		b.ID, b.CatalogEntryID, b.DisplayName, b.UnitPriceCents, b.Quantity, b.SubtotalCents,
	)
}

type SessionBuilder struct {
	ID             uuid.UUID
	SequenceNumber int64
	Status         sale.Status
	Items          []sale.LineItem
	TotalCents     int64
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:             uuid.New(),
		SequenceNumber: 1,
		Status:         sale.StatusPending,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithStatus(status sale.Status) *SessionBuilder {
	b.Status = status
	return b
}

// WithItem appends the line and keeps the total consistent with the
// subtotal sum. Tests exercising a total mismatch set TotalCents after.
func (b *SessionBuilder) WithItem(item sale.LineItem) *SessionBuilder {
	b.Items = append(b.Items, item)
	b.TotalCents += item.Subtotal().Cents()
	return b
}

func (b *SessionBuilder) BuildDomain() (*sale.Session, error) {
	return sale.ReconstructSession(b.ID, b.SequenceNumber, b.Status, b.Items, b.TotalCents)
}

func (b *SessionBuilder) BuildAddItemRequestDTO() reqdto.AddItemRequest {
	entryID := uuid.New()
	if len(b.Items) > 0 {
		entryID = b.Items[0].CatalogEntryID()
	}
	return reqdto.AddItemRequest{
		CatalogEntryID: entryID,
		Quantity:       1,
	}
}
