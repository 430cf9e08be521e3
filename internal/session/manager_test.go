package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type mockIdentityStore struct {
	mu       sync.Mutex
	identity *domain.Identity
	err      error
}

func (m *mockIdentityStore) Load(ctx context.Context) (*domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if m.identity == nil {
		return nil, nil
	}
	c := *m.identity
	return &c, nil
}

func (m *mockIdentityStore) Save(ctx context.Context, identity domain.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.identity = &identity
	return nil
}

func (m *mockIdentityStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.identity = nil
	return nil
}

// mockRefresher publishes a per-owner count the way cart.Service does.
type mockRefresher struct {
	store  *session.Store
	counts *cart.CountStore
	sizes  map[string]int
	err    error
	calls  int
}

func (m *mockRefresher) Refresh(ctx context.Context) (domain.Cart, error) {
	m.calls++
	if m.err != nil {
		return domain.Cart{}, m.err
	}
	identity := m.store.Identity()
	if identity == nil {
		return domain.Cart{}, domain.ErrNoIdentity
	}
	n := m.sizes[identity.ID]
	if _, err := m.counts.Publish(identity.ID, n); err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{OwnerID: identity.ID, Items: make([]domain.CartItem, n)}, nil
}

type fixture struct {
	store     *session.Store
	counts    *cart.CountStore
	persisted *mockIdentityStore
	refresher *mockRefresher
	manager   *session.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:     session.NewStore(),
		counts:    cart.NewCountStore(),
		persisted: &mockIdentityStore{},
	}
	f.refresher = &mockRefresher{store: f.store, counts: f.counts, sizes: map[string]int{}}
	f.manager = session.NewManager(f.store, f.counts, f.persisted, f.refresher, zaptest.NewLogger(t))
	return f
}

func randomIdentity() domain.Identity {
	return domain.Identity{
		ID:       gofakeit.UUID(),
		Username: gofakeit.Username(),
		Role:     domain.RoleUser,
	}
}

func TestManager_LoginPublishesIdentityAndCount(t *testing.T) {
	f := newFixture(t)
	alice := randomIdentity()
	f.refresher.sizes[alice.ID] = 3

	require.NoError(t, f.manager.Login(context.Background(), alice))

	assert.Equal(t, alice.ID, f.store.Identity().ID)
	assert.Equal(t, 3, f.counts.Count())
	assert.Equal(t, alice.ID, f.persisted.identity.ID)
}

func TestManager_LogoutResetsCount(t *testing.T) {
	f := newFixture(t)
	alice := randomIdentity()
	f.refresher.sizes[alice.ID] = 5

	require.NoError(t, f.manager.Login(context.Background(), alice))
	require.Equal(t, 5, f.counts.Count())

	require.NoError(t, f.manager.Logout(context.Background()))

	assert.Nil(t, f.store.Identity())
	assert.Equal(t, 0, f.counts.Count())
	assert.Nil(t, f.persisted.identity)
}

func TestManager_SwitchingIdentityNeverShowsStaleCount(t *testing.T) {
	f := newFixture(t)
	alice, bob := randomIdentity(), randomIdentity()
	f.refresher.sizes[alice.ID] = 4
	f.refresher.sizes[bob.ID] = 1

	require.NoError(t, f.manager.Login(context.Background(), alice))

	// what a navbar would see at the moment the identity changes
	countAtChange := map[string]int{}
	f.store.Subscribe(func(identity *domain.Identity) {
		if identity != nil {
			countAtChange[identity.ID] = f.counts.Count()
		}
	})

	require.NoError(t, f.manager.Login(context.Background(), bob))

	assert.Equal(t, 0, countAtChange[bob.ID], "previous owner's count must not be visible")
	assert.Equal(t, 1, f.counts.Count())
}

func TestManager_ReloginSameIdentityKeepsCount(t *testing.T) {
	f := newFixture(t)
	alice := randomIdentity()
	f.refresher.sizes[alice.ID] = 2
	f.refresher.err = nil

	require.NoError(t, f.manager.Login(context.Background(), alice))

	var counts []int
	f.counts.Subscribe(func(n int) { counts = append(counts, n) })

	f.refresher.err = errors.New("backend down")
	require.NoError(t, f.manager.Login(context.Background(), alice))

	assert.Equal(t, []int{2}, counts)
	assert.Equal(t, 2, f.counts.Count())
}

func TestManager_Restore(t *testing.T) {
	tests := []struct {
		name      string
		persisted *domain.Identity
		loadErr   error
		wantID    string
		wantCount int
		wantError error
	}{
		{
			name:      "restore persisted identity: ok",
			persisted: &domain.Identity{ID: "42", Username: "alice"},
			wantID:    "42",
			wantCount: 6,
		},
		{
			name: "nothing persisted: ok",
		},
		{
			name:      "storage failure: error",
			loadErr:   errors.New("redis: connection refused"),
			wantError: domain.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.persisted.identity = tt.persisted
			f.persisted.err = tt.loadErr
			f.refresher.sizes["42"] = 6

			identity, err := f.manager.Restore(context.Background())
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, f.store.Identity())
				return
			}
			require.NoError(t, err)

			if tt.wantID == "" {
				assert.Nil(t, identity)
				assert.Nil(t, f.store.Identity())
				assert.Equal(t, 0, f.refresher.calls)
				return
			}
			require.NotNil(t, identity)
			assert.Equal(t, tt.wantID, identity.ID)
			assert.Equal(t, tt.wantCount, f.counts.Count())
		})
	}
}

func TestManager_LoginErrors(t *testing.T) {
	f := newFixture(t)

	err := f.manager.Login(context.Background(), domain.Identity{Username: "nobody"})
	require.EqualError(t, err, "identity ID is empty")

	f.persisted.err = errors.New("redis: timeout")
	err = f.manager.Login(context.Background(), randomIdentity())
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Nil(t, f.store.Identity(), "identity is not published when it could not be persisted")
}

func TestManager_LogoutClearsLocallyOnStorageFailure(t *testing.T) {
	f := newFixture(t)
	alice := randomIdentity()
	f.refresher.sizes[alice.ID] = 3
	require.NoError(t, f.manager.Login(context.Background(), alice))

	f.persisted.err = errors.New("redis: timeout")
	err := f.manager.Logout(context.Background())

	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Nil(t, f.store.Identity())
	assert.Equal(t, 0, f.counts.Count())
}

func TestManager_ObserverMayLogOut(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	banned := randomIdentity()
	f.refresher.sizes[banned.ID] = 2

	var seen []*domain.Identity
	f.store.Subscribe(func(identity *domain.Identity) {
		seen = append(seen, identity)
		if identity != nil && identity.ID == banned.ID {
			assert.NoError(t, f.manager.Logout(ctx))
		}
	})

	done := make(chan error, 1)
	go func() {
		done <- f.manager.Login(ctx, banned)
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Login did not return while an observer logged out")
	}

	assert.Nil(t, f.store.Identity())
	assert.Equal(t, 0, f.counts.Count())
	assert.Empty(t, f.counts.Owner())

	persisted, err := f.persisted.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, persisted)

	require.Len(t, seen, 3)
	assert.Nil(t, seen[0])
	assert.Equal(t, banned.ID, seen[1].ID)
	assert.Nil(t, seen[2])
}
