package usecase

import (
	"context"
	"errors"
	"log/slog"

	"pos-register/internal/domain/sale"
	"pos-register/internal/infra"
	"pos-register/internal/pkg/errs"

	"github.com/google/uuid"
)

// Item Mutation Coordinator.
//
// One mutation key per sub-resource: adds key on the catalog entry,
// update/remove key on the line item. Each key holds a latest-desired
// register (pending) and an in-flight flag; a driver goroutine per busy
// key issues at most one remote call at a time and re-reads the register
// after every response. Rapid repeated input therefore converges to the
// last expressed intent without replaying intermediate values, and keys
// never block each other.

type keyKind uint8

const (
	entryKey keyKind = iota
	itemKey
)

type mutationKey struct {
	kind keyKind
	id   uuid.UUID
}

type opKind uint8

const (
	opAdd opKind = iota
	opSet
	opRemove
)

type pendingOp struct {
	kind           opKind
	catalogEntryID uuid.UUID
	lineItemID     uuid.UUID
	quantity       int
}

func (u *checkoutUseCaseImpl) AddItem(_ context.Context, catalogEntryID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	// local fast-fail; the authority still performs the real check
	if available, known := u.stock.Available(catalogEntryID); known && available == 0 {
		return ErrOutOfStock
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.terminating {
		return ErrFinalizeInProgress
	}
	if u.session != nil && !u.session.IsPending() {
		return ErrSessionNotActive
	}

	key := mutationKey{kind: entryKey, id: catalogEntryID}
	op := pendingOp{kind: opAdd, catalogEntryID: catalogEntryID, quantity: quantity}
	if prev, ok := u.pending[key]; ok && prev.kind == opAdd {
		// consecutive adds of the same entry accumulate into one call
		op.quantity += prev.quantity
	}
	u.pending[key] = op
	u.ensureDriver(key)
	return nil
}

func (u *checkoutUseCaseImpl) SetQuantity(_ context.Context, lineItemID uuid.UUID, quantity int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.terminating {
		return ErrFinalizeInProgress
	}
	if u.session == nil {
		return ErrNoActiveSession
	}
	if !u.session.IsPending() {
		return ErrSessionNotActive
	}

	key := mutationKey{kind: itemKey, id: lineItemID}
	if _, ok := u.session.Item(lineItemID); !ok {
		if _, queued := u.pending[key]; !queued {
			if _, busy := u.inFlight[key]; !busy {
				return ErrLineItemNotFound
			}
		}
	}

	op := pendingOp{kind: opSet, lineItemID: lineItemID, quantity: quantity}
	if quantity < 1 {
		// quantity floor: below one means remove, never update-to-zero
		op = pendingOp{kind: opRemove, lineItemID: lineItemID}
	}
	// last writer wins; intermediate targets are coalesced away
	u.pending[key] = op
	u.ensureDriver(key)
	return nil
}

func (u *checkoutUseCaseImpl) RemoveItem(_ context.Context, lineItemID uuid.UUID) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.terminating {
		return ErrFinalizeInProgress
	}
	if u.session == nil {
		return ErrNoActiveSession
	}
	if !u.session.IsPending() {
		return ErrSessionNotActive
	}

	key := mutationKey{kind: itemKey, id: lineItemID}
	if _, ok := u.session.Item(lineItemID); !ok {
		if _, queued := u.pending[key]; !queued {
			if _, busy := u.inFlight[key]; !busy {
				return ErrLineItemNotFound
			}
		}
	}

	u.pending[key] = pendingOp{kind: opRemove, lineItemID: lineItemID}
	u.ensureDriver(key)
	return nil
}

// ensureDriver spawns the per-key driver if the key is idle.
// Callers must hold u.mu.
func (u *checkoutUseCaseImpl) ensureDriver(key mutationKey) {
	if _, busy := u.inFlight[key]; busy {
		return
	}
	u.inFlight[key] = struct{}{}
	go u.drive(key)
}

// drive issues remote calls for one key until its register is empty.
// Request contexts die with the HTTP request, so drivers run on a
// background context; the gateway's transport timeout bounds each call.
func (u *checkoutUseCaseImpl) drive(key mutationKey) {
	ctx := context.Background()

	for {
		u.mu.Lock()
		op, ok := u.pending[key]
		if !ok {
			delete(u.inFlight, key)
			u.cond.Broadcast()
			u.mu.Unlock()
			return
		}
		delete(u.pending, key)
		sess := u.session
		u.mu.Unlock()

		if sess == nil {
			var err error
			sess, err = u.sessionForAdd(ctx, op)
			if err != nil {
				u.failKey(key, err)
				return
			}
		}

		updated, err := u.applyOp(ctx, sess, op)
		if err != nil {
			u.failKey(key, err)
			return
		}
		u.replaceSession(updated)
	}
}

// sessionForAdd implements the auto-start convenience: the first add on
// an empty register creates the session. Creation is single-flighted so
// concurrent first adds share one session.
func (u *checkoutUseCaseImpl) sessionForAdd(ctx context.Context, op pendingOp) (*sale.Session, error) {
	if op.kind != opAdd {
		return nil, ErrNoActiveSession
	}

	u.mu.Lock()
	for u.session == nil && u.starting {
		u.cond.Wait()
	}
	if u.session != nil {
		sess := u.session
		u.mu.Unlock()
		return sess, nil
	}
	u.starting = true
	u.mu.Unlock()

	created, err := u.gateway.CreateSession(ctx)

	u.mu.Lock()
	u.starting = false
	if err != nil {
		u.cond.Broadcast()
		u.mu.Unlock()
		return nil, err
	}
	u.session = created
	u.cond.Broadcast()
	u.mu.Unlock()
	return created, nil
}

func (u *checkoutUseCaseImpl) applyOp(ctx context.Context, sess *sale.Session, op pendingOp) (*sale.Session, error) {
	switch op.kind {
	case opAdd:
		return u.gateway.AddItem(ctx, sess.ID(), op.catalogEntryID, op.quantity)
	case opSet:
		return u.gateway.UpdateItem(ctx, sess.ID(), op.lineItemID, op.quantity)
	case opRemove:
		return u.gateway.RemoveItem(ctx, sess.ID(), op.lineItemID)
	default:
		return nil, errs.New("unknown mutation op")
	}
}

// replaceSession is the authoritative overwrite: the whole session is
// replaced, never patched, so server-side clamping stays visible. Late
// responses for a discarded or superseded session are dropped.
func (u *checkoutUseCaseImpl) replaceSession(updated *sale.Session) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.session == nil || u.session.ID() != updated.ID() {
		slog.Warn("dropping authority response for stale session", "session_id", updated.ID())
		return
	}
	u.session = updated

	if !updated.TotalMatchesSubtotals() {
		// display consistency check only; the authority total still wins
		slog.Warn("authority total does not match line subtotals",
			"session_id", updated.ID(),
			"total_cents", updated.Total().Cents(),
			"subtotal_sum_cents", updated.SubtotalSum().Cents())
	}
}

// failKey drops the key's queued register and clears its in-flight flag.
// The session stays at its last known-good value; the user may retry.
func (u *checkoutUseCaseImpl) failKey(key mutationKey, err error) {
	marked := u.markGatewayErr(err)

	u.mu.Lock()
	delete(u.pending, key)
	delete(u.inFlight, key)
	u.pushNoticeLocked(marked)
	u.cond.Broadcast()
	u.mu.Unlock()

	slog.Warn("item mutation failed", "error", err.Error())
}

func (u *checkoutUseCaseImpl) pushNoticeLocked(err error) {
	notice := Notice{
		Code:       noticeCode(err),
		Message:    err.Error(),
		OccurredAt: u.clock.Now(),
	}
	if len(u.notices) >= maxQueuedNotices {
		u.notices = u.notices[1:]
	}
	u.notices = append(u.notices, notice)
}

// markGatewayErr maps gateway error kinds onto usecase sentinels. Stock
// rejections map to the same sentinel as the local fast-fail, per the
// uniform-stock-error rule.
func (u *checkoutUseCaseImpl) markGatewayErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindStockRejected):
		return errs.Mark(err, ErrOutOfStock)
	case infra.IsKind(err, infra.KindUnavailable):
		return errs.Mark(err, ErrAuthorityUnavailable)
	default:
		return errs.Mark(err, ErrMutationRejected)
	}
}

func noticeCode(err error) string {
	switch {
	case errors.Is(err, ErrOutOfStock):
		return "OUT_OF_STOCK"
	case errors.Is(err, ErrAuthorityUnavailable):
		return "AUTHORITY_UNAVAILABLE"
	default:
		return "MUTATION_REJECTED"
	}
}
