//go:build unit

package builder

import (
	"pos-register/internal/domain/catalog"

	"github.com/google/uuid"
)

type CatalogEntryBuilder struct {
	ID                uuid.UUID
	Name              string
	Category          string
	UnitPriceCents    int64
	AvailableQuantity int
}

func NewCatalogEntryBuilder() *CatalogEntryBuilder {
	return &CatalogEntryBuilder{
		ID:                uuid.New(),
		Name:              "Espresso",
		Category:          "Coffee",
		UnitPriceCents:    350,
		AvailableQuantity: 10,
	}
}

func (b *CatalogEntryBuilder) With(mutate func(*CatalogEntryBuilder)) *CatalogEntryBuilder {
	mutate(b)
	return b
}

func (b *CatalogEntryBuilder) BuildDomain() catalog.Entry {
	return catalog.Entry{
		ID:                b.ID,
		Name:              b.Name,
		Category:          b.Category,
		UnitPriceCents:    b.UnitPriceCents,
		AvailableQuantity: b.AvailableQuantity,
	}
}
