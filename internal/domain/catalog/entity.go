package catalog

import (
	"github.com/google/uuid"
)

// Entry is a read-only snapshot of a sellable product as reported by the
// sales authority. It is never mutated locally; a refresh or search
// replaces entries wholesale.
type Entry struct {
	ID                uuid.UUID
	Name              string
	Category          string
	UnitPriceCents    int64
	AvailableQuantity int
}

func (e Entry) InStock() bool {
	return e.AvailableQuantity > 0
}
