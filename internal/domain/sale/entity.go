package sale

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid sale status")
	ErrSessionTerminal = errors.New("sale session is terminal")
)

// LineItem is one product position inside a Sale Session. It is owned
// exclusively by its session. Subtotal comes from the authority, never
// from a local computation.
type LineItem struct {
	id             uuid.UUID
	catalogEntryID uuid.UUID
	displayName    string
	unitPrice      Money
	quantity       int
	subtotal       Money
}

func ReconstructLineItem(
	id, catalogEntryID uuid.UUID,
	displayName string,
	unitPriceCents int64,
	quantity int,
	subtotalCents int64,
) LineItem {
	return LineItem{
		id:             id,
		catalogEntryID: catalogEntryID,
		displayName:    displayName,
		unitPrice:      NewMoney(unitPriceCents),
		quantity:       quantity,
		subtotal:       NewMoney(subtotalCents),
	}
}

func (li LineItem) ID() uuid.UUID             { return li.id }
func (li LineItem) CatalogEntryID() uuid.UUID { return li.catalogEntryID }
func (li LineItem) DisplayName() string       { return li.displayName }
func (li LineItem) UnitPrice() Money          { return li.unitPrice }
func (li LineItem) Quantity() int             { return li.quantity }
func (li LineItem) Subtotal() Money           { return li.subtotal }

// Session is the single source of truth for the active transaction as
// last returned by the sales authority. Every accepted mutation replaces
// the whole session; no field is ever patched locally.
type Session struct {
	id             uuid.UUID
	sequenceNumber int64
	status         Status
	items          []LineItem
	total          Money
}

func ReconstructSession(
	id uuid.UUID,
	sequenceNumber int64,
	status Status,
	items []LineItem,
	totalCents int64,
) (*Session, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Session{
		id:             id,
		sequenceNumber: sequenceNumber,
		status:         status,
		items:          items,
		total:          NewMoney(totalCents),
	}, nil
}

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) SequenceNumber() int64 { return s.sequenceNumber }
func (s *Session) Status() Status        { return s.status }
func (s *Session) Items() []LineItem     { return s.items }
func (s *Session) Total() Money          { return s.total }

func (s *Session) IsPending() bool {
	return s.status == StatusPending
}

func (s *Session) IsTerminal() bool {
	return s.status.IsTerminal()
}

func (s *Session) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Session) Item(lineItemID uuid.UUID) (LineItem, bool) {
	for _, li := range s.items {
		if li.id == lineItemID {
			return li, true
		}
	}
	return LineItem{}, false
}

func (s *Session) ItemForEntry(catalogEntryID uuid.UUID) (LineItem, bool) {
	for _, li := range s.items {
		if li.catalogEntryID == catalogEntryID {
			return li, true
		}
	}
	return LineItem{}, false
}

// SubtotalSum is a display-only consistency figure. The authority's
// total always wins; callers may log a mismatch but must never act on it.
func (s *Session) SubtotalSum() Money {
	sum := NewMoney(0)
	for _, li := range s.items {
		sum = sum.Add(li.subtotal)
	}
	return sum
}

func (s *Session) TotalMatchesSubtotals() bool {
	return s.total.Equals(s.SubtotalSum())
}

// Cancelled derives the local terminal state after the authority
// acknowledged a cancel. Cancel returns no body, so the transition is
// applied to the last known-good session.
func (s *Session) Cancelled() (*Session, error) {
	if s.status.IsTerminal() {
		return nil, ErrSessionTerminal
	}
	return &Session{
		id:             s.id,
		sequenceNumber: s.sequenceNumber,
		status:         StatusCancelled,
		items:          s.items,
		total:          s.total,
	}, nil
}
