package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/goalboard/internal/domain"
	"github.com/phrazzld/goalboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, id uint32, name string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(id, name, name+"@example.com", domain.RoleClassic)
	require.NoError(t, err)
	return u
}

func TestMemoryStoreUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore()

	next, err := s.Users.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), next)

	alice := mustUser(t, next, "alice")
	require.NoError(t, s.Users.Create(ctx, alice))

	next, err = s.Users.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), next)

	bob := mustUser(t, next, "bob")
	require.NoError(t, s.Users.Create(ctx, bob))
	assert.Equal(t, 2, s.Users.Len())

	got, err := s.Users.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, alice, got)

	list, err := s.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Same(t, alice, list[0])
	assert.Same(t, bob, list[1])

	_, err = s.Users.GetByID(ctx, 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestMemoryStoreCreateRejections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("duplicate id", func(t *testing.T) {
		s := store.NewMemoryStore()
		require.NoError(t, s.Users.Create(ctx, mustUser(t, 1, "alice")))

		err := s.Users.Create(ctx, mustUser(t, 1, "again"))
		assert.True(t, store.IsDuplicateError(err))

		var storeErr *store.StoreError
		require.True(t, errors.As(err, &storeErr))
		assert.Equal(t, "user", storeErr.Entity)
		assert.Equal(t, "create", storeErr.Operation)
	})

	t.Run("id out of sequence does not advance", func(t *testing.T) {
		s := store.NewMemoryStore()
		err := s.Users.Create(ctx, mustUser(t, 5, "alice"))
		assert.ErrorIs(t, err, store.ErrIDOutOfSequence)

		next, err := s.Users.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), next)
	})

	t.Run("invalid entity", func(t *testing.T) {
		s := store.NewMemoryStore()
		err := s.Users.Create(ctx, &domain.User{ID: 1, Username: " ", Email: "a@b.c"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)

		next, err := s.Users.NextID(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), next)
	})

	t.Run("nil entity", func(t *testing.T) {
		s := store.NewMemoryStore()
		err := s.Goals.Create(ctx, nil)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestMemoryStoreSequencesAreIndependent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := store.NewMemoryStore()

	owner := mustUser(t, 1, "owner")
	require.NoError(t, s.Users.Create(ctx, owner))

	ws, err := domain.NewWorkspace(1, "Personal", owner)
	require.NoError(t, err)
	require.NoError(t, s.Workspaces.Create(ctx, ws))

	table, err := domain.NewGoalTable(1, "T", "D", owner, ws.ID)
	require.NoError(t, err)
	require.NoError(t, s.GoalTables.Create(ctx, table))

	for i := uint32(1); i <= 3; i++ {
		goal, err := domain.NewGoal(i, owner, "goal", table.ID)
		require.NoError(t, err)
		require.NoError(t, s.Goals.Create(ctx, goal))
	}

	tableNext, err := s.GoalTables.NextID(ctx)
	require.NoError(t, err)
	goalNext, err := s.Goals.NextID(ctx)
	require.NoError(t, err)
	wsNext, err := s.Workspaces.NextID(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), tableNext)
	assert.Equal(t, uint32(4), goalNext)
	assert.Equal(t, uint32(2), wsNext)

	_, err = s.Workspaces.GetByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrWorkspaceNotFound)
	_, err = s.GoalTables.GetByID(ctx, 2)
	assert.ErrorIs(t, err, store.ErrGoalTableNotFound)
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := store.NewMemoryStore()

	_, err := s.Users.NextID(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Users.Create(ctx, mustUser(t, 1, "alice")), context.Canceled)
	_, err = s.Users.GetByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Users.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
