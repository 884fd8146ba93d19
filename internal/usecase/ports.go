package usecase

import (
	"context"

	"pos-register/internal/domain/catalog"
	"pos-register/internal/domain/sale"

	"github.com/google/uuid"
)

// SalesGateway is the remote sales authority's mutation surface. Every
// successful session-returning call carries the full authoritative
// session; callers replace their copy wholesale.
type SalesGateway interface {
	CreateSession(ctx context.Context) (*sale.Session, error)
	AddItem(ctx context.Context, sessionID, catalogEntryID uuid.UUID, quantity int) (*sale.Session, error)
	UpdateItem(ctx context.Context, sessionID, lineItemID uuid.UUID, quantity int) (*sale.Session, error)
	RemoveItem(ctx context.Context, sessionID, lineItemID uuid.UUID) (*sale.Session, error)
	Finalize(ctx context.Context, sessionID uuid.UUID, contact *sale.CustomerContact) (*sale.Session, error)
	Cancel(ctx context.Context, sessionID uuid.UUID) error
}

type CatalogGateway interface {
	ListCatalog(ctx context.Context, limit int) ([]catalog.Entry, error)
	SearchCatalog(ctx context.Context, query string) ([]catalog.Entry, error)
}

// StockChecker answers the local fast-fail question for adds. A zero
// answer is a UX shortcut only; the authority still decides.
type StockChecker interface {
	Available(catalogEntryID uuid.UUID) (int, bool)
}

// ReceiptNotifier builds the customer hand-off after a completed sale.
type ReceiptNotifier interface {
	ReceiptLink(session *sale.Session, contact sale.CustomerContact) string
}
