package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pos-register/internal/domain/catalog"
	"pos-register/internal/pkg/config"
	"pos-register/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogUseCase holds the queryable snapshot of sellable items. The
// snapshot is display/fast-fail data only; stock truth stays with the
// authority.
type CatalogUseCase interface {
	Load(ctx context.Context) ([]catalog.Entry, error)
	Search(ctx context.Context, query string) ([]catalog.Entry, error)
	Available(catalogEntryID uuid.UUID) (int, bool)
}

type catalogUseCaseImpl struct {
	gateway CatalogGateway
	cfg     config.CatalogConfig

	mu       sync.RWMutex
	snapshot *catalog.Snapshot
}

func NewCatalogUseCase(gateway CatalogGateway, cfg config.CatalogConfig) CatalogUseCase {
	return &catalogUseCaseImpl{
		gateway:  gateway,
		cfg:      cfg,
		snapshot: catalog.EmptySnapshot(),
	}
}

// Load replaces the snapshot with the first PageSize entries. A fetch
// error keeps the previous snapshot intact.
func (u *catalogUseCaseImpl) Load(ctx context.Context) ([]catalog.Entry, error) {
	entries, err := u.gateway.ListCatalog(ctx, u.cfg.PageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}

	next := catalog.NewSnapshot(entries)
	u.mu.Lock()
	u.snapshot = next
	u.mu.Unlock()

	return entries, nil
}

// Search goes remote for queries of MinSearchLength or longer; shorter
// queries filter the cached snapshot locally. Remote results are a result
// set, not a cache replacement.
func (u *catalogUseCaseImpl) Search(ctx context.Context, query string) ([]catalog.Entry, error) {
	trimmed := strings.TrimSpace(query)
	if len([]rune(trimmed)) < u.cfg.MinSearchLength {
		u.mu.RLock()
		defer u.mu.RUnlock()
		return u.snapshot.Filter(trimmed), nil
	}

	entries, err := u.gateway.SearchCatalog(ctx, trimmed)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}
	return entries, nil
}

func (u *catalogUseCaseImpl) Available(catalogEntryID uuid.UUID) (int, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	entry, ok := u.snapshot.Find(catalogEntryID)
	if !ok {
		return 0, false
	}
	return entry.AvailableQuantity, true
}
