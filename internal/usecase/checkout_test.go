//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pos-register/internal/domain/sale"
	"pos-register/internal/infra"
	"pos-register/internal/pkg/clock"
	"pos-register/internal/usecase"
	"pos-register/tests/common/builder"
	usecasemock "pos-register/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type checkoutMocks struct {
	gateway  *usecasemock.MockSalesGateway
	stock    *usecasemock.MockStockChecker
	notifier *usecasemock.MockReceiptNotifier
	clock    *clock.MockClock
}

func newCheckoutUseCase(t *testing.T) (usecase.CheckoutUseCase, *checkoutMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &checkoutMocks{
		gateway:  usecasemock.NewMockSalesGateway(ctrl),
		stock:    usecasemock.NewMockStockChecker(ctrl),
		notifier: usecasemock.NewMockReceiptNotifier(ctrl),
		clock:    clock.NewMockClock(fixedNow),
	}
	return usecase.NewCheckoutUseCase(m.gateway, m.stock, m.notifier, m.clock), m
}

// waitSettled joins all in-flight mutation drivers with a test deadline.
func waitSettled(t *testing.T, uc usecase.CheckoutUseCase) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, uc.Wait(ctx))
}

func pendingSession(t *testing.T, items ...sale.LineItem) *sale.Session {
	t.Helper()
	b := builder.NewSessionBuilder()
	for _, li := range items {
		b.WithItem(li)
	}
	sess, err := b.BuildDomain()
	require.NoError(t, err)
	return sess
}

// sessionLike rebuilds a session with the same identity but different
// contents, the shape of an authority response to a mutation.
func sessionLike(t *testing.T, base *sale.Session, status sale.Status, items ...sale.LineItem) *sale.Session {
	t.Helper()
	b := builder.NewSessionBuilder().WithStatus(status)
	b.ID = base.ID()
	b.SequenceNumber = base.SequenceNumber()
	for _, li := range items {
		b.WithItem(li)
	}
	sess, err := b.BuildDomain()
	require.NoError(t, err)
	return sess
}

func stockRejectedErr() error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return infra.WrapGatewayErr(logger, infra.KindStockRejected, "add item rejected for stock", nil)
}

func unavailableErr() error {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return infra.WrapGatewayErr(logger, infra.KindUnavailable, "authority unreachable", nil)
}

func TestCheckoutStart(t *testing.T) {
	t.Run("creates a session at the authority", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)

		created, err := uc.Start(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sess.ID(), created.ID())
		assert.Equal(t, sess.ID(), uc.Current().ID())
	})

	t.Run("second start is an illegal call", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(pendingSession(t), nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		_, err = uc.Start(context.Background())
		assert.ErrorIs(t, err, usecase.ErrSessionAlreadyActive)
	})

	t.Run("gateway failure leaves no session behind", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t)
		gomock.InOrder(
			m.gateway.EXPECT().CreateSession(gomock.Any()).Return(nil, unavailableErr()),
			m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil),
		)

		_, err := uc.Start(context.Background())
		require.ErrorIs(t, err, usecase.ErrAuthorityUnavailable)
		assert.Nil(t, uc.Current())

		// a retry is not blocked by the failed attempt
		_, err = uc.Start(context.Background())
		require.NoError(t, err)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("first add auto-starts the session", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		created := pendingSession(t)
		item := builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
			b.CatalogEntryID = entry.ID
		}).WithQuantity(2).BuildDomain()
		updated := sessionLike(t, created, sale.StatusPending, item)

		m.stock.EXPECT().Available(entry.ID).Return(entry.AvailableQuantity, true)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(created, nil)
		m.gateway.EXPECT().AddItem(gomock.Any(), created.ID(), entry.ID, 2).Return(updated, nil)

		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 2))
		waitSettled(t, uc)

		current := uc.Current()
		require.NotNil(t, current)
		assert.Equal(t, created.ID(), current.ID())
		assert.Len(t, current.Items(), 1)
		assert.Empty(t, uc.DrainNotices())
	})

	t.Run("rapid adds of one entry coalesce into a single call", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		sess := pendingSession(t)
		afterFirst := sessionLike(t, sess, sale.StatusPending,
			builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
				b.CatalogEntryID = entry.ID
			}).WithQuantity(1).BuildDomain())
		item := builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
			b.CatalogEntryID = entry.ID
		}).WithQuantity(6).BuildDomain()
		final := sessionLike(t, sess, sale.StatusPending, item)

		m.stock.EXPECT().Available(entry.ID).Return(10, true).Times(3)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)

		started := make(chan struct{})
		release := make(chan struct{})
		m.gateway.EXPECT().AddItem(gomock.Any(), sess.ID(), entry.ID, 1).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID, int) (*sale.Session, error) {
				close(started)
				<-release
				return afterFirst, nil
			})
		// the two adds queued while the first call was in flight merge
		m.gateway.EXPECT().AddItem(gomock.Any(), sess.ID(), entry.ID, 5).Return(final, nil)

		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 1))
		<-started
		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 2))
		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 3))
		close(release)
		waitSettled(t, uc)

		current := uc.Current()
		require.NotNil(t, current)
		line, ok := current.ItemForEntry(entry.ID)
		require.True(t, ok)
		assert.Equal(t, 6, line.Quantity())
	})

	t.Run("quantity below one is rejected up front", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		err := uc.AddItem(context.Background(), uuid.New(), 0)
		assert.ErrorIs(t, err, usecase.ErrInvalidQuantity)
	})

	t.Run("known zero stock fails fast without a remote call", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entryID := uuid.New()
		m.stock.EXPECT().Available(entryID).Return(0, true)

		err := uc.AddItem(context.Background(), entryID, 1)
		assert.ErrorIs(t, err, usecase.ErrOutOfStock)
	})

	t.Run("unknown entry defers the stock check to the authority", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entryID := uuid.New()
		sess := pendingSession(t)
		updated := sessionLike(t, sess, sale.StatusPending, builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
			b.CatalogEntryID = entryID
		}).BuildDomain())

		m.stock.EXPECT().Available(entryID).Return(0, false)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().AddItem(gomock.Any(), sess.ID(), entryID, 1).Return(updated, nil)

		require.NoError(t, uc.AddItem(context.Background(), entryID, 1))
		waitSettled(t, uc)
		assert.Empty(t, uc.DrainNotices())
	})

	t.Run("remote stock rejection queues an out-of-stock notice", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		sess := pendingSession(t)

		m.stock.EXPECT().Available(entry.ID).Return(1, true)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().AddItem(gomock.Any(), sess.ID(), entry.ID, 1).Return(nil, stockRejectedErr())

		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 1))
		waitSettled(t, uc)

		notices := uc.DrainNotices()
		require.Len(t, notices, 1)
		assert.Equal(t, "OUT_OF_STOCK", notices[0].Code)
		assert.Equal(t, fixedNow, notices[0].OccurredAt)

		// the session stays at its last known-good value
		current := uc.Current()
		require.NotNil(t, current)
		assert.True(t, current.IsEmpty())

		// notices drain exactly once
		assert.Empty(t, uc.DrainNotices())
	})

	t.Run("add on a cancelled session is rejected", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t, builder.NewLineItemBuilder().BuildDomain())
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().Cancel(gomock.Any(), sess.ID()).Return(nil)
		m.stock.EXPECT().Available(gomock.Any()).Return(10, true).AnyTimes()

		_, err := uc.Start(context.Background())
		require.NoError(t, err)
		require.NoError(t, uc.Cancel(context.Background()))

		err = uc.AddItem(context.Background(), uuid.New(), 1)
		assert.ErrorIs(t, err, usecase.ErrSessionNotActive)
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("rapid changes converge to the last expressed intent", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		item := builder.NewLineItemBuilder().WithQuantity(1).BuildDomain()
		sess := pendingSession(t, item)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		started := make(chan struct{})
		release := make(chan struct{})
		afterFirst := sessionLike(t, sess, sale.StatusPending, builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
			b.ID = item.ID()
		}).WithQuantity(2).BuildDomain())
		final := sessionLike(t, sess, sale.StatusPending, builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
			b.ID = item.ID()
		}).WithQuantity(3).BuildDomain())

		m.gateway.EXPECT().UpdateItem(gomock.Any(), sess.ID(), item.ID(), 2).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID, int) (*sale.Session, error) {
				close(started)
				<-release
				return afterFirst, nil
			})
		// quantity 5 was superseded before its turn and never reaches the wire
		m.gateway.EXPECT().UpdateItem(gomock.Any(), sess.ID(), item.ID(), 3).Return(final, nil)

		require.NoError(t, uc.SetQuantity(context.Background(), item.ID(), 2))
		<-started
		require.NoError(t, uc.SetQuantity(context.Background(), item.ID(), 5))
		require.NoError(t, uc.SetQuantity(context.Background(), item.ID(), 3))
		close(release)
		waitSettled(t, uc)

		line, ok := uc.Current().Item(item.ID())
		require.True(t, ok)
		assert.Equal(t, 3, line.Quantity())
	})

	t.Run("quantity zero becomes a remove", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		item := builder.NewLineItemBuilder().BuildDomain()
		sess := pendingSession(t, item)
		emptied := sessionLike(t, sess, sale.StatusPending)

		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().RemoveItem(gomock.Any(), sess.ID(), item.ID()).Return(emptied, nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		require.NoError(t, uc.SetQuantity(context.Background(), item.ID(), 0))
		waitSettled(t, uc)
		assert.True(t, uc.Current().IsEmpty())
	})

	t.Run("unknown line item", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t, builder.NewLineItemBuilder().BuildDomain())
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		err = uc.SetQuantity(context.Background(), uuid.New(), 2)
		assert.ErrorIs(t, err, usecase.ErrLineItemNotFound)
	})

	t.Run("no active session", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		err := uc.SetQuantity(context.Background(), uuid.New(), 2)
		assert.ErrorIs(t, err, usecase.ErrNoActiveSession)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("removes through the authority", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		item := builder.NewLineItemBuilder().BuildDomain()
		sess := pendingSession(t, item)
		emptied := sessionLike(t, sess, sale.StatusPending)

		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().RemoveItem(gomock.Any(), sess.ID(), item.ID()).Return(emptied, nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		require.NoError(t, uc.RemoveItem(context.Background(), item.ID()))
		waitSettled(t, uc)
		assert.True(t, uc.Current().IsEmpty())
	})

	t.Run("unknown line item", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t, builder.NewLineItemBuilder().BuildDomain())
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		err = uc.RemoveItem(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrLineItemNotFound)
	})
}

func TestAuthoritativeOverwrite(t *testing.T) {
	t.Run("server-side clamping replaces the local view wholesale", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		sess := pendingSession(t)
		// asked for 10, the authority granted 3
		clamped := sessionLike(t, sess, sale.StatusPending,
			builder.NewLineItemBuilder().With(func(b *builder.LineItemBuilder) {
				b.CatalogEntryID = entry.ID
			}).WithQuantity(3).BuildDomain())

		m.stock.EXPECT().Available(entry.ID).Return(10, true)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().AddItem(gomock.Any(), sess.ID(), entry.ID, 10).Return(clamped, nil)

		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 10))
		waitSettled(t, uc)

		line, ok := uc.Current().ItemForEntry(entry.ID)
		require.True(t, ok)
		assert.Equal(t, 3, line.Quantity())
		assert.Equal(t, clamped.Total().Cents(), uc.Current().Total().Cents())
	})

	t.Run("late response for a discarded session is dropped", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		sess := pendingSession(t)
		updated := sessionLike(t, sess, sale.StatusPending, builder.NewLineItemBuilder().BuildDomain())

		m.stock.EXPECT().Available(entry.ID).Return(10, true)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)

		started := make(chan struct{})
		release := make(chan struct{})
		m.gateway.EXPECT().AddItem(gomock.Any(), sess.ID(), entry.ID, 1).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID, int) (*sale.Session, error) {
				close(started)
				<-release
				return updated, nil
			})

		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 1))
		<-started
		require.NoError(t, uc.Discard())
		close(release)
		waitSettled(t, uc)

		assert.Nil(t, uc.Current())
	})
}

func TestFinalize(t *testing.T) {
	startWithItem := func(t *testing.T, uc usecase.CheckoutUseCase, m *checkoutMocks) *sale.Session {
		t.Helper()
		sess := pendingSession(t, builder.NewLineItemBuilder().WithQuantity(2).BuildDomain())
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		_, err := uc.Start(context.Background())
		require.NoError(t, err)
		return sess
	}

	t.Run("completes the sale", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := startWithItem(t, uc, m)
		completed := sessionLike(t, sess, sale.StatusCompleted, sess.Items()...)
		m.gateway.EXPECT().Finalize(gomock.Any(), sess.ID(), nil).Return(completed, nil)

		result, err := uc.Finalize(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCompleted, result.Session.Status())
		assert.Empty(t, result.ReceiptLink)
		assert.Equal(t, sale.StatusCompleted, uc.Current().Status())
	})

	t.Run("receipt link is built only after completion", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := startWithItem(t, uc, m)
		completed := sessionLike(t, sess, sale.StatusCompleted, sess.Items()...)
		contact, err := sale.NewCustomerContact("+15551234567")
		require.NoError(t, err)

		m.gateway.EXPECT().Finalize(gomock.Any(), sess.ID(), &contact).Return(completed, nil)
		m.notifier.EXPECT().ReceiptLink(completed, contact).Return("https://wa.me/15551234567?text=receipt")

		result, err := uc.Finalize(context.Background(), &contact)
		require.NoError(t, err)
		assert.Equal(t, "https://wa.me/15551234567?text=receipt", result.ReceiptLink)
	})

	t.Run("empty session cannot be finalized", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		_, err = uc.Finalize(context.Background(), nil)
		require.ErrorIs(t, err, usecase.ErrEmptySession)

		// the failed attempt releases the terminal-transition marker
		_, err = uc.Finalize(context.Background(), nil)
		assert.ErrorIs(t, err, usecase.ErrEmptySession)
	})

	t.Run("no active session", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		_, err := uc.Finalize(context.Background(), nil)
		assert.ErrorIs(t, err, usecase.ErrNoActiveSession)
	})

	t.Run("in-flight mutations must settle first", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		entry := builder.NewCatalogEntryBuilder().BuildDomain()
		sess := startWithItem(t, uc, m)
		updated := sessionLike(t, sess, sale.StatusPending, sess.Items()...)

		m.stock.EXPECT().Available(entry.ID).Return(10, true)
		started := make(chan struct{})
		release := make(chan struct{})
		m.gateway.EXPECT().AddItem(gomock.Any(), sess.ID(), entry.ID, 1).DoAndReturn(
			func(context.Context, uuid.UUID, uuid.UUID, int) (*sale.Session, error) {
				close(started)
				<-release
				return updated, nil
			})

		require.NoError(t, uc.AddItem(context.Background(), entry.ID, 1))
		<-started

		expired, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := uc.Finalize(expired, nil)
		require.ErrorIs(t, err, usecase.ErrSyncPending)

		// once the driver settles, finalize goes through
		close(release)
		waitSettled(t, uc)

		completed := sessionLike(t, sess, sale.StatusCompleted, sess.Items()...)
		m.gateway.EXPECT().Finalize(gomock.Any(), sess.ID(), nil).Return(completed, nil)
		result, err := uc.Finalize(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusCompleted, result.Session.Status())
	})

	t.Run("second finalize while one is in flight is rejected", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := startWithItem(t, uc, m)
		completed := sessionLike(t, sess, sale.StatusCompleted, sess.Items()...)

		started := make(chan struct{})
		release := make(chan struct{})
		m.gateway.EXPECT().Finalize(gomock.Any(), sess.ID(), nil).DoAndReturn(
			func(context.Context, uuid.UUID, *sale.CustomerContact) (*sale.Session, error) {
				close(started)
				<-release
				return completed, nil
			}).Times(1)

		done := make(chan error, 1)
		go func() {
			_, err := uc.Finalize(context.Background(), nil)
			done <- err
		}()
		<-started

		_, err := uc.Finalize(context.Background(), nil)
		require.ErrorIs(t, err, usecase.ErrFinalizeInProgress)

		close(release)
		require.NoError(t, <-done)
		assert.Equal(t, sale.StatusCompleted, uc.Current().Status())
	})

	t.Run("authority returning a non-completed session is a rejection", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := startWithItem(t, uc, m)
		stillPending := sessionLike(t, sess, sale.StatusPending, sess.Items()...)
		m.gateway.EXPECT().Finalize(gomock.Any(), sess.ID(), nil).Return(stillPending, nil)

		_, err := uc.Finalize(context.Background(), nil)
		assert.ErrorIs(t, err, usecase.ErrFinalizeRejected)
	})

	t.Run("finalize after completion is rejected", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := startWithItem(t, uc, m)
		completed := sessionLike(t, sess, sale.StatusCompleted, sess.Items()...)
		m.gateway.EXPECT().Finalize(gomock.Any(), sess.ID(), nil).Return(completed, nil)

		_, err := uc.Finalize(context.Background(), nil)
		require.NoError(t, err)

		_, err = uc.Finalize(context.Background(), nil)
		assert.ErrorIs(t, err, usecase.ErrSessionNotActive)
	})

	t.Run("authority unavailable", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := startWithItem(t, uc, m)
		m.gateway.EXPECT().Finalize(gomock.Any(), sess.ID(), nil).Return(nil, unavailableErr())

		_, err := uc.Finalize(context.Background(), nil)
		require.ErrorIs(t, err, usecase.ErrAuthorityUnavailable)

		// session survives for a retry
		assert.Equal(t, sale.StatusPending, uc.Current().Status())
	})
}

func TestCancel(t *testing.T) {
	t.Run("cancels through the authority", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t, builder.NewLineItemBuilder().BuildDomain())
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().Cancel(gomock.Any(), sess.ID()).Return(nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		require.NoError(t, uc.Cancel(context.Background()))
		assert.Equal(t, sale.StatusCancelled, uc.Current().Status())
	})

	t.Run("cancel with no session", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		err := uc.Cancel(context.Background())
		assert.ErrorIs(t, err, usecase.ErrNoActiveSession)
	})

	t.Run("cancel after cancel is rejected", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().Cancel(gomock.Any(), sess.ID()).Return(nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)
		require.NoError(t, uc.Cancel(context.Background()))

		err = uc.Cancel(context.Background())
		assert.ErrorIs(t, err, usecase.ErrSessionNotActive)
	})
}

func TestDiscard(t *testing.T) {
	t.Run("drops the session and queued intents", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t, builder.NewLineItemBuilder().BuildDomain())
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)

		require.NoError(t, uc.Discard())
		assert.Nil(t, uc.Current())
	})

	t.Run("terminal sessions leave memory the same way", func(t *testing.T) {
		uc, m := newCheckoutUseCase(t)
		sess := pendingSession(t)
		m.gateway.EXPECT().CreateSession(gomock.Any()).Return(sess, nil)
		m.gateway.EXPECT().Cancel(gomock.Any(), sess.ID()).Return(nil)

		_, err := uc.Start(context.Background())
		require.NoError(t, err)
		require.NoError(t, uc.Cancel(context.Background()))

		require.NoError(t, uc.Discard())
		assert.Nil(t, uc.Current())
	})

	t.Run("discard with no session", func(t *testing.T) {
		uc, _ := newCheckoutUseCase(t)
		assert.ErrorIs(t, uc.Discard(), usecase.ErrNoActiveSession)
	})
}
