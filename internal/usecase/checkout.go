package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"pos-register/internal/domain/sale"
	"pos-register/internal/pkg/clock"
	"pos-register/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoActiveSession      = errors.New("no active sale session")
	ErrSessionAlreadyActive = errors.New("sale session already active")
	ErrSessionNotActive     = errors.New("sale session is not pending")
	ErrEmptySession         = errors.New("sale session has no items")
	ErrLineItemNotFound     = errors.New("line item not found")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrOutOfStock           = errors.New("item out of stock")
	ErrFinalizeInProgress   = errors.New("terminal transition already in progress")
	ErrSyncPending          = errors.New("item mutations still in flight")
	ErrAuthorityUnavailable = errors.New("sales authority unavailable")
	ErrMutationRejected     = errors.New("mutation rejected by sales authority")
	ErrFinalizeRejected     = errors.New("finalize rejected by sales authority")
)

// Notice is a recoverable error surfaced to the terminal UI. Coordinator
// failures happen off the request path, so they queue here instead of an
// HTTP response.
type Notice struct {
	Code       string
	Message    string
	OccurredAt time.Time
}

const maxQueuedNotices = 32

type FinalizeResult struct {
	Session     *sale.Session
	ReceiptLink string
}

// CheckoutUseCase owns the active Sale Session and the intent-dispatch
// surface over it: start, add, set quantity, remove, finalize, cancel,
// discard. Item intents are asynchronous and coalesced per mutation key;
// terminal transitions are synchronous.
type CheckoutUseCase interface {
	Start(ctx context.Context) (*sale.Session, error)
	Current() *sale.Session
	AddItem(ctx context.Context, catalogEntryID uuid.UUID, quantity int) error
	SetQuantity(ctx context.Context, lineItemID uuid.UUID, quantity int) error
	RemoveItem(ctx context.Context, lineItemID uuid.UUID) error
	Finalize(ctx context.Context, contact *sale.CustomerContact) (*FinalizeResult, error)
	Cancel(ctx context.Context) error
	Discard() error
	Wait(ctx context.Context) error
	DrainNotices() []Notice
}

type checkoutUseCaseImpl struct {
	gateway  SalesGateway
	stock    StockChecker
	notifier ReceiptNotifier
	clock    clock.Clock

	mu   sync.Mutex
	cond *sync.Cond

	session     *sale.Session
	pending     map[mutationKey]pendingOp
	inFlight    map[mutationKey]struct{}
	starting    bool
	terminating bool
	notices     []Notice
}

func NewCheckoutUseCase(
	gateway SalesGateway,
	stock StockChecker,
	notifier ReceiptNotifier,
	clock clock.Clock,
) CheckoutUseCase {
	u := &checkoutUseCaseImpl{
		gateway:  gateway,
		stock:    stock,
		notifier: notifier,
		clock:    clock,
		pending:  make(map[mutationKey]pendingOp),
		inFlight: make(map[mutationKey]struct{}),
	}
	u.cond = sync.NewCond(&u.mu)
	return u
}

func (u *checkoutUseCaseImpl) Start(ctx context.Context) (*sale.Session, error) {
	u.mu.Lock()
	for u.starting {
		u.cond.Wait()
	}
	if u.terminating {
		u.mu.Unlock()
		return nil, ErrFinalizeInProgress
	}
	if u.session != nil {
		u.mu.Unlock()
		return nil, ErrSessionAlreadyActive
	}
	u.starting = true
	u.mu.Unlock()

	created, err := u.gateway.CreateSession(ctx)

	u.mu.Lock()
	u.starting = false
	if err != nil {
		u.cond.Broadcast()
		u.mu.Unlock()
		return nil, u.markGatewayErr(err)
	}
	u.session = created
	u.cond.Broadcast()
	u.mu.Unlock()

	return created, nil
}

func (u *checkoutUseCaseImpl) Current() *sale.Session {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.session
}

func (u *checkoutUseCaseImpl) Finalize(ctx context.Context, contact *sale.CustomerContact) (*FinalizeResult, error) {
	if err := u.beginTerminal(); err != nil {
		return nil, err
	}

	if err := u.Wait(ctx); err != nil {
		u.endTerminal()
		return nil, errs.Mark(err, ErrSyncPending)
	}

	u.mu.Lock()
	sess := u.session
	if sess == nil {
		// all queued adds failed while we waited
		u.mu.Unlock()
		u.endTerminal()
		return nil, ErrNoActiveSession
	}
	if sess.IsEmpty() {
		u.mu.Unlock()
		u.endTerminal()
		return nil, ErrEmptySession
	}
	u.mu.Unlock()

	completed, err := u.gateway.Finalize(ctx, sess.ID(), contact)
	if err != nil {
		u.endTerminal()
		return nil, u.markGatewayErr(err)
	}
	if completed.Status() != sale.StatusCompleted {
		u.endTerminal()
		return nil, errs.Mark(errs.New("authority returned non-completed session"), ErrFinalizeRejected)
	}

	u.mu.Lock()
	u.session = completed
	u.terminating = false
	u.cond.Broadcast()
	u.mu.Unlock()

	result := &FinalizeResult{Session: completed}
	if contact != nil && !contact.IsZero() {
		// hand-off happens strictly after COMPLETED is confirmed
		result.ReceiptLink = u.notifier.ReceiptLink(completed, *contact)
	}
	return result, nil
}

func (u *checkoutUseCaseImpl) Cancel(ctx context.Context) error {
	if err := u.beginTerminal(); err != nil {
		return err
	}

	if err := u.Wait(ctx); err != nil {
		u.endTerminal()
		return errs.Mark(err, ErrSyncPending)
	}

	u.mu.Lock()
	sess := u.session
	u.mu.Unlock()
	if sess == nil {
		u.endTerminal()
		return ErrNoActiveSession
	}

	if err := u.gateway.Cancel(ctx, sess.ID()); err != nil {
		u.endTerminal()
		return u.markGatewayErr(err)
	}

	cancelled, err := sess.Cancelled()
	if err != nil {
		u.endTerminal()
		return errs.Mark(err, ErrSessionNotActive)
	}

	u.mu.Lock()
	u.session = cancelled
	u.terminating = false
	u.cond.Broadcast()
	u.mu.Unlock()
	return nil
}

func (u *checkoutUseCaseImpl) Discard() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.terminating {
		return ErrFinalizeInProgress
	}
	if u.session == nil {
		return ErrNoActiveSession
	}
	if u.session.IsPending() {
		slog.Warn("abandoning pending sale session",
			"session_id", u.session.ID(), "sequence", u.session.SequenceNumber())
	}

	// any late driver responses are for the dropped session and get ignored
	u.session = nil
	u.pending = make(map[mutationKey]pendingOp)
	u.cond.Broadcast()
	return nil
}

// Wait blocks until no item mutation is in flight, or ctx expires.
func (u *checkoutUseCaseImpl) Wait(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			u.mu.Lock()
			u.cond.Broadcast()
			u.mu.Unlock()
		case <-done:
		}
	}()

	u.mu.Lock()
	defer u.mu.Unlock()
	for len(u.inFlight) > 0 {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		u.cond.Wait()
	}
	return ctx.Err()
}

func (u *checkoutUseCaseImpl) DrainNotices() []Notice {
	u.mu.Lock()
	defer u.mu.Unlock()
	drained := u.notices
	u.notices = nil
	return drained
}

// beginTerminal claims the session-level in-flight marker shared by
// finalize and cancel, so a double click never reaches the network twice.
func (u *checkoutUseCaseImpl) beginTerminal() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.terminating {
		return ErrFinalizeInProgress
	}
	if u.session == nil && !u.starting && len(u.inFlight) == 0 {
		return ErrNoActiveSession
	}
	if u.session != nil && !u.session.IsPending() {
		return ErrSessionNotActive
	}
	u.terminating = true
	return nil
}

func (u *checkoutUseCaseImpl) endTerminal() {
	u.mu.Lock()
	u.terminating = false
	u.cond.Broadcast()
	u.mu.Unlock()
}
