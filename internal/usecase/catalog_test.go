//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"pos-register/internal/domain/catalog"
	"pos-register/internal/pkg/config"
	"pos-register/internal/pkg/errs"
	"pos-register/internal/usecase"
	"pos-register/tests/common/builder"
	usecasemock "pos-register/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalogUseCase(t *testing.T) (usecase.CatalogUseCase, *usecasemock.MockCatalogGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := usecasemock.NewMockCatalogGateway(ctrl)
	cfg := config.CatalogConfig{PageSize: 50, MinSearchLength: 2}
	return usecase.NewCatalogUseCase(gateway, cfg), gateway
}

func TestCatalogLoad(t *testing.T) {
	t.Run("success replaces the snapshot", func(t *testing.T) {
		uc, gateway := newCatalogUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		gateway.EXPECT().ListCatalog(gomock.Any(), 50).Return([]catalog.Entry{entry}, nil)

		entries, err := uc.Load(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 1)

		available, known := uc.Available(entry.ID)
		assert.True(t, known)
		assert.Equal(t, entry.AvailableQuantity, available)
	})

	t.Run("fetch error keeps the previous snapshot", func(t *testing.T) {
		uc, gateway := newCatalogUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		gateway.EXPECT().ListCatalog(gomock.Any(), 50).Return([]catalog.Entry{entry}, nil)
		gateway.EXPECT().ListCatalog(gomock.Any(), 50).Return(nil, errs.New("authority down"))

		_, err := uc.Load(context.Background())
		require.NoError(t, err)

		_, err = uc.Load(context.Background())
		require.ErrorIs(t, err, usecase.ErrCatalogUnavailable)

		// the first generation still answers stock lookups
		available, known := uc.Available(entry.ID)
		assert.True(t, known)
		assert.Equal(t, entry.AvailableQuantity, available)
	})
}

func TestCatalogSearch(t *testing.T) {
	t.Run("short query filters the local snapshot", func(t *testing.T) {
		uc, gateway := newCatalogUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		gateway.EXPECT().ListCatalog(gomock.Any(), 50).Return([]catalog.Entry{entry}, nil)

		_, err := uc.Load(context.Background())
		require.NoError(t, err)

		// one rune stays local, so no SearchCatalog expectation
		matched, err := uc.Search(context.Background(), "e")
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, entry.ID, matched[0].ID)
	})

	t.Run("long query goes remote without touching the snapshot", func(t *testing.T) {
		uc, gateway := newCatalogUseCase(t)
		remote := builder.NewCatalogEntryBuilder().With(func(b *builder.CatalogEntryBuilder) {
			b.Name = "Seasonal Blend"
		}).BuildDomain()
		gateway.EXPECT().SearchCatalog(gomock.Any(), "seasonal").Return([]catalog.Entry{remote}, nil)

		matched, err := uc.Search(context.Background(), "  seasonal  ")
		require.NoError(t, err)
		require.Len(t, matched, 1)

		// remote results are a result set, not a cache replacement
		_, known := uc.Available(remote.ID)
		assert.False(t, known)
	})

	t.Run("remote error surfaces as catalog unavailable", func(t *testing.T) {
		uc, gateway := newCatalogUseCase(t)
		gateway.EXPECT().SearchCatalog(gomock.Any(), "espresso").Return(nil, errs.New("timeout"))

		_, err := uc.Search(context.Background(), "espresso")
		assert.ErrorIs(t, err, usecase.ErrCatalogUnavailable)
	})
}

func TestCatalogAvailable(t *testing.T) {
	t.Run("unknown entry is unknown, not zero stock", func(t *testing.T) {
		uc, _ := newCatalogUseCase(t)

		available, known := uc.Available(builder.NewCatalogEntryBuilder().ID)
		assert.False(t, known)
		assert.Equal(t, 0, available)
	})
}
