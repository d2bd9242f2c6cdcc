// Package checkout drives a cart through purchase: cart → confirm →
// success, with an insufficient-funds side branch.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/skinbazaar/storefront/pkg/cart"
	"github.com/skinbazaar/storefront/pkg/models"
	"github.com/skinbazaar/storefront/pkg/services"
)

// Step is the workflow's state.
type Step string

const (
	StepCart         Step = "cart"
	StepConfirm      Step = "confirm"
	StepInsufficient Step = "insufficient"
	StepSuccess      Step = "success"
)

var (
	// ErrEmptyCart is returned when checkout is invoked on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrNotConfirming is returned when Confirm is invoked outside the
	// confirm step.
	ErrNotConfirming = errors.New("no purchase awaiting confirmation")

	// ErrCommitInFlight is returned when a second commit is attempted while
	// one is still resolving.
	ErrCommitInFlight = errors.New("purchase commit already in progress")

	// ErrConfirmPending is returned when checkout re-runs while a
	// confirmation is already on screen.
	ErrConfirmPending = errors.New("confirmation already pending")

	// ErrPurchaseComplete is returned once the workflow has reached its
	// terminal step for this cart session.
	ErrPurchaseComplete = errors.New("purchase already completed")
)

// Session is the slice of the session store the workflow needs.
type Session interface {
	Identity() *models.Identity
	AdjustBalance(delta decimal.Decimal)
}

// Cart is the slice of the cart store the workflow needs.
type Cart interface {
	Len() int
	Total() decimal.Decimal
	Clear(ctx context.Context) cart.Result
}

// Workflow is the purchase state machine for one cart session. Entering
// success is the single committing point: the balance debit and the cart
// clear form one compensating transaction, never two unrelated calls.
type Workflow struct {
	session Session
	cart    Cart
	ledger  services.LedgerService
	log     *logrus.Entry

	mu         sync.Mutex
	step       Step
	quoted     decimal.Decimal
	shortfall  decimal.Decimal
	committing bool
}

// New creates a workflow in the cart step.
func New(session Session, crt Cart, ledger services.LedgerService, logger *logrus.Logger) *Workflow {
	return &Workflow{
		session: session,
		cart:    crt,
		ledger:  ledger,
		log:     logger.WithField("component", "checkout"),
		step:    StepCart,
	}
}

// Step returns the current workflow state.
func (w *Workflow) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Quoted returns the cart total captured when the confirm step was
// entered. Display only; the commit re-reads the live total.
func (w *Workflow) Quoted() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.quoted
}

// Shortfall returns how much the balance is short, valid in the
// insufficient step.
func (w *Workflow) Shortfall() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shortfall
}

// Checkout evaluates the funds guard against the balance and cart total as
// they are right now, moving to confirm when balance >= total and to
// insufficient otherwise. Valid from the cart and insufficient steps.
func (w *Workflow) Checkout() (Step, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepConfirm:
		return w.step, ErrConfirmPending
	case StepSuccess:
		return w.step, ErrPurchaseComplete
	}

	identity := w.session.Identity()
	if identity == nil {
		return w.step, services.ErrNotAuthenticated
	}
	if w.cart.Len() == 0 {
		return w.step, ErrEmptyCart
	}

	total := w.cart.Total()
	if identity.Balance.GreaterThanOrEqual(total) {
		w.step = StepConfirm
		w.quoted = total
		w.shortfall = decimal.Zero
	} else {
		w.step = StepInsufficient
		w.shortfall = total.Sub(identity.Balance)
	}
	return w.step, nil
}

// Cancel abandons a pending confirmation or dismisses the insufficient
// notice, returning to cart. No-op elsewhere and while a commit is
// resolving.
func (w *Workflow) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.committing {
		return
	}
	if w.step == StepConfirm || w.step == StepInsufficient {
		w.step = StepCart
		w.shortfall = decimal.Zero
	}
}

// Confirm commits the purchase from the confirm step: debit the balance,
// then clear the cart. A rolled-back clear is retried once; if the retry
// also fails the debit is reverted and the workflow returns to cart with
// the error, so the debit is never silently lost. Re-entry while a commit
// is resolving is rejected.
func (w *Workflow) Confirm(ctx context.Context) (Step, error) {
	w.mu.Lock()
	if w.committing {
		w.mu.Unlock()
		return StepConfirm, ErrCommitInFlight
	}
	if w.step != StepConfirm {
		step := w.step
		w.mu.Unlock()
		return step, ErrNotConfirming
	}
	w.committing = true
	w.mu.Unlock()

	// Re-read both derived values at the committing instant; the cart or
	// balance may have changed since the guard ran.
	total := w.cart.Total()
	identity := w.session.Identity()
	if identity == nil || identity.Balance.LessThan(total) {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.committing = false
		if identity == nil {
			w.step = StepCart
			return w.step, services.ErrNotAuthenticated
		}
		w.step = StepInsufficient
		w.shortfall = total.Sub(identity.Balance)
		return w.step, nil
	}

	w.session.AdjustBalance(total.Neg())

	result := w.cart.Clear(ctx)
	if result.Status == cart.RolledBack {
		w.log.WithError(result.Err).Warn("cart clear failed after debit, retrying")
		result = w.cart.Clear(ctx)
	}
	if result.Status == cart.RolledBack {
		w.session.AdjustBalance(total)

		w.mu.Lock()
		w.committing = false
		w.step = StepCart
		w.mu.Unlock()
		return StepCart, fmt.Errorf("commit purchase: %w", result.Err)
	}

	// Best effort: the server reconciles if this record is lost.
	if err := w.ledger.RecordPurchase(ctx); err != nil {
		w.log.WithError(err).Warn("ledger purchase record failed")
	}

	w.mu.Lock()
	w.committing = false
	w.step = StepSuccess
	w.mu.Unlock()

	w.log.WithField("total", total.StringFixed(2)).Info("purchase committed")
	return StepSuccess, nil
}
