// Package session holds the current identity and the login, logout and restore flows that
// change it.
package session

import (
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/state"
)

// Store is the single holder of the current identity. One Store is created per process and
// passed to every consumer.
type Store struct {
	cell *state.Cell[*domain.Identity]
}

func NewStore() *Store {
	return &Store{cell: state.NewCell[*domain.Identity](nil)}
}

// SetIdentity replaces the current identity; nil signs out.
func (s *Store) SetIdentity(identity *domain.Identity) {
	s.cell.Set(clone(identity))
}

// Identity returns a copy of the current identity, nil when signed out.
func (s *Store) Identity() *domain.Identity {
	return clone(s.cell.Get())
}

// Subscribe replays the current identity to fn, then every change.
func (s *Store) Subscribe(fn func(identity *domain.Identity)) (unsubscribe func()) {
	return s.cell.Subscribe(func(identity *domain.Identity) {
		fn(clone(identity))
	})
}

func clone(identity *domain.Identity) *domain.Identity {
	if identity == nil {
		return nil
	}
	c := *identity
	return &c
}
