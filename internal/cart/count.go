package cart

import (
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/state"
)

type countState struct {
	owner string
	count int
}

// CountStore holds the item count of the active cart of the current identity.
// A count is tied to its owner: Reset switches the owner and zeroes the count, and counts
// published for any other owner are dropped, so a stale count never becomes visible.
type CountStore struct {
	cell *state.Cell[countState]
}

func NewCountStore() *CountStore {
	return &CountStore{cell: state.NewCell(countState{})}
}

func (s *CountStore) Count() int {
	return s.cell.Get().count
}

// Owner is the identity ID the count belongs to, empty when signed out.
func (s *CountStore) Owner() string {
	return s.cell.Get().owner
}

// SetCount sets the count of the current owner.
func (s *CountStore) SetCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", domain.ErrNegativeCount, n)
	}

	s.cell.Update(func(cur countState) countState {
		return countState{owner: cur.owner, count: n}
	})

	return nil
}

// Publish sets the count only if ownerID is still the current owner.
func (s *CountStore) Publish(ownerID string, n int) (bool, error) {
	if n < 0 {
		return false, fmt.Errorf("%w: %d", domain.ErrNegativeCount, n)
	}

	_, ok := s.cell.UpdateIf(func(cur countState) (countState, bool) {
		if cur.owner != ownerID {
			return cur, false
		}
		return countState{owner: ownerID, count: n}, true
	})

	return ok, nil
}

// Reset hands the store to ownerID (empty for signed out) with a zero count.
func (s *CountStore) Reset(ownerID string) {
	s.cell.Set(countState{owner: ownerID})
}

// Subscribe replays the current count to fn, then every change.
func (s *CountStore) Subscribe(fn func(count int)) (unsubscribe func()) {
	return s.cell.Subscribe(func(st countState) {
		fn(st.count)
	})
}
