package cart_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skinbazaar/storefront/pkg/cart"
	"github.com/skinbazaar/storefront/pkg/models"
	"github.com/skinbazaar/storefront/pkg/services"
	"github.com/skinbazaar/storefront/pkg/services/mocks"
)

// fakeSession satisfies cart.Session with a fixed answer.
type fakeSession bool

func (f fakeSession) IsLoggedIn() bool { return bool(f) }

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func listing(id, price string) models.Listing {
	return models.Listing{
		Id:    id,
		Name:  "Redline",
		Price: decimal.RequireFromString(price),
	}
}

// assertNoDuplicates checks the cart's structural invariant.
func assertNoDuplicates(t *testing.T, store *cart.Store) {
	t.Helper()
	seen := make(map[string]struct{})
	for _, line := range store.Lines() {
		_, dup := seen[line.Listing.Id]
		require.False(t, dup, "duplicate listing id %s in cart", line.Listing.Id)
		seen[line.Listing.Id] = struct{}{}
	}
}

func TestAdd(t *testing.T) {
	t.Run("Applied", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, "l-1").Return(nil).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		result := store.Add(context.Background(), listing("l-1", "120.00"))

		assert.Equal(t, cart.Applied, result.Status)
		assert.Equal(t, 1, store.Len())
		assert.True(t, store.Contains("l-1"))
	})

	t.Run("DuplicateIsNoOp", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, "l-1").Return(nil).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.Add(context.Background(), listing("l-1", "120.00"))
		result := store.Add(context.Background(), listing("l-1", "120.00"))

		assert.Equal(t, cart.Unchanged, result.Status)
		assert.Equal(t, 1, store.Len())
		assertNoDuplicates(t, store)
	})

	t.Run("LoggedOutIsRejected", func(t *testing.T) {
		svc := mocks.NewCartService(t)

		store := cart.NewStore(svc, fakeSession(false), testLogger())
		result := store.Add(context.Background(), listing("l-1", "120.00"))

		assert.Equal(t, cart.Unchanged, result.Status)
		assert.ErrorIs(t, result.Err, services.ErrNotAuthenticated)
		assert.Zero(t, store.Len())
	})

	t.Run("FailureRollsBack", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, "l-1").Return(errors.New("persist failed")).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		result := store.Add(context.Background(), listing("l-1", "120.00"))

		assert.Equal(t, cart.RolledBack, result.Status)
		assert.Error(t, result.Err)
		assert.Zero(t, store.Len())
		assert.True(t, store.Total().IsZero())
	})
}

func TestRemove(t *testing.T) {
	t.Run("Applied", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()
		svc.On("Remove", mock.Anything, "l-1").Return(nil).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.Add(context.Background(), listing("l-1", "120.00"))
		store.Add(context.Background(), listing("l-2", "80.00"))

		result := store.Remove(context.Background(), "l-1")

		assert.Equal(t, cart.Applied, result.Status)
		assert.Equal(t, 1, store.Len())
		assert.False(t, store.Contains("l-1"))
		assert.True(t, store.Total().Equal(decimal.RequireFromString("80.00")))
	})

	t.Run("MissingIsNoOp", func(t *testing.T) {
		svc := mocks.NewCartService(t)

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		result := store.Remove(context.Background(), "l-404")

		assert.Equal(t, cart.Unchanged, result.Status)
	})

	t.Run("FailureRestoresFullList", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()
		svc.On("Remove", mock.Anything, "l-1").Return(errors.New("persist failed")).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.Add(context.Background(), listing("l-1", "120.00"))
		store.Add(context.Background(), listing("l-2", "80.00"))

		result := store.Remove(context.Background(), "l-1")

		assert.Equal(t, cart.RolledBack, result.Status)
		assert.Equal(t, 2, store.Len())
		assert.True(t, store.Contains("l-1"))
		// Total must reflect the restored lines immediately.
		assert.True(t, store.Total().Equal(decimal.RequireFromString("200.00")))
		assertNoDuplicates(t, store)
	})
}

func TestClear(t *testing.T) {
	t.Run("Applied", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()
		svc.On("Clear", mock.Anything).Return(nil).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.Add(context.Background(), listing("l-1", "120.00"))
		store.Add(context.Background(), listing("l-2", "80.00"))

		result := store.Clear(context.Background())

		assert.Equal(t, cart.Applied, result.Status)
		assert.Zero(t, store.Len())
		assert.True(t, store.Total().IsZero())
	})

	t.Run("EmptyIsNoOp", func(t *testing.T) {
		svc := mocks.NewCartService(t)

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		result := store.Clear(context.Background())

		assert.Equal(t, cart.Unchanged, result.Status)
	})

	t.Run("FailureRestoresFullList", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()
		svc.On("Clear", mock.Anything).Return(errors.New("persist failed")).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.Add(context.Background(), listing("l-1", "120.00"))
		store.Add(context.Background(), listing("l-2", "80.00"))

		result := store.Clear(context.Background())

		assert.Equal(t, cart.RolledBack, result.Status)
		assert.Equal(t, 2, store.Len())
		assert.True(t, store.Total().Equal(decimal.RequireFromString("200.00")))
		assertNoDuplicates(t, store)
	})
}

// TestInterleavedAddRemoveBothFail covers the race the design explicitly
// tolerates: a remove issued before its add resolves, with both network
// calls failing. The cart must converge to empty, with no duplicate or
// orphaned line.
func TestInterleavedAddRemoveBothFail(t *testing.T) {
	addStarted := make(chan struct{})
	releaseAdd := make(chan struct{})

	svc := mocks.NewCartService(t)
	svc.On("Add", mock.Anything, "l-1").Run(func(args mock.Arguments) {
		close(addStarted)
		<-releaseAdd
	}).Return(errors.New("persist failed")).Once()
	svc.On("Remove", mock.Anything, "l-1").Return(errors.New("persist failed")).Once()

	store := cart.NewStore(svc, fakeSession(true), testLogger())

	addDone := make(chan cart.Result, 1)
	go func() {
		addDone <- store.Add(context.Background(), listing("l-1", "120.00"))
	}()

	// The optimistic insert is visible while the persist call is in flight.
	<-addStarted
	require.Equal(t, 1, store.Len())

	// Remove the line before the add resolves; its own persist fails too.
	removeResult := store.Remove(context.Background(), "l-1")
	assert.Equal(t, cart.RolledBack, removeResult.Status)

	// Now let the add fail and roll back.
	close(releaseAdd)
	select {
	case addResult := <-addDone:
		assert.Equal(t, cart.RolledBack, addResult.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("add did not resolve")
	}

	assert.Zero(t, store.Len(), "cart must converge to empty")
	assert.True(t, store.Total().IsZero())
	assertNoDuplicates(t, store)
}

func TestSyncFromServer(t *testing.T) {
	t.Run("ReplacesWholesale", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
		svc.On("Get", mock.Anything).Return([]models.CartLine{
			{Listing: listing("l-2", "80.00"), AddedAt: time.Now()},
			{Listing: listing("l-3", "40.00"), AddedAt: time.Now()},
		}, nil).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.Add(context.Background(), listing("l-1", "120.00"))

		store.SyncFromServer(context.Background())

		assert.Equal(t, 2, store.Len())
		assert.False(t, store.Contains("l-1"))
		assert.True(t, store.Total().Equal(decimal.RequireFromString("120.00")))
	})

	t.Run("DropsServerDuplicates", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Get", mock.Anything).Return([]models.CartLine{
			{Listing: listing("l-1", "120.00")},
			{Listing: listing("l-1", "120.00")},
		}, nil).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.SyncFromServer(context.Background())

		assert.Equal(t, 1, store.Len())
		assertNoDuplicates(t, store)
	})

	t.Run("FetchFailureResets", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		svc.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
		svc.On("Get", mock.Anything).Return(nil, errors.New("backend down")).Once()

		store := cart.NewStore(svc, fakeSession(true), testLogger())
		store.Add(context.Background(), listing("l-1", "120.00"))

		store.SyncFromServer(context.Background())

		assert.Zero(t, store.Len())
	})

	t.Run("LoggedOutResetsWithoutFetch", func(t *testing.T) {
		svc := mocks.NewCartService(t)

		store := cart.NewStore(svc, fakeSession(false), testLogger())
		store.SyncFromServer(context.Background())

		assert.Zero(t, store.Len())
	})
}

func TestReset(t *testing.T) {
	svc := mocks.NewCartService(t)
	svc.On("Add", mock.Anything, mock.Anything).Return(nil).Twice()

	store := cart.NewStore(svc, fakeSession(true), testLogger())
	store.Add(context.Background(), listing("l-1", "120.00"))
	store.Add(context.Background(), listing("l-2", "80.00"))

	store.Reset()

	assert.Zero(t, store.Len())
	assert.True(t, store.Total().IsZero())
}
