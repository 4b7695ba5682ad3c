package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/goalboard/internal/domain"
)

// validatable is the constraint satisfied by every domain entity pointer.
type validatable[E any] interface {
	*E
	Validate() error
}

// MemoryCollection is a mutex-guarded, id-indexed collection of one entity kind.
type MemoryCollection[E any, P validatable[E]] struct {
	entity   string
	notFound error
	idOf     func(P) uint32

	mu    sync.RWMutex
	seq   *Sequence
	items map[uint32]P
	order []uint32
}

func newMemoryCollection[E any, P validatable[E]](entity string, notFound error, idOf func(P) uint32) *MemoryCollection[E, P] {
	return &MemoryCollection[E, P]{
		entity:   entity,
		notFound: notFound,
		idOf:     idOf,
		seq:      NewSequence(),
		items:    make(map[uint32]P),
	}
}

// NextID returns the id the next created entity must carry.
func (c *MemoryCollection[E, P]) NextID(ctx context.Context) (uint32, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.seq.Peek(), nil
}

// Create stores item and consumes its id.
func (c *MemoryCollection[E, P]) Create(ctx context.Context, item P) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if item == nil {
		return NewStoreError(c.entity, "create", "nil entity", ErrInvalidEntity)
	}
	if err := item.Validate(); err != nil {
		return NewStoreError(c.entity, "create", "validation failed",
			fmt.Errorf("%w: %w", ErrInvalidEntity, err))
	}

	id := c.idOf(item)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[id]; exists {
		return NewStoreError(c.entity, "create", fmt.Sprintf("id %d", id), ErrDuplicate)
	}
	if id != c.seq.Peek() {
		return NewStoreError(c.entity, "create",
			fmt.Sprintf("got id %d, want %d", id, c.seq.Peek()), ErrIDOutOfSequence)
	}

	c.items[id] = item
	c.order = append(c.order, id)
	c.seq.Advance()
	return nil
}

// GetByID retrieves an entity by id.
func (c *MemoryCollection[E, P]) GetByID(ctx context.Context, id uint32) (P, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	if !ok {
		return nil, c.notFound
	}
	return item, nil
}

// List returns every entity in creation order.
func (c *MemoryCollection[E, P]) List(ctx context.Context) ([]P, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]P, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.items[id])
	}
	return result, nil
}

// Len reports how many entities are stored.
func (c *MemoryCollection[E, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// MemoryStore bundles one in-memory collection per entity kind.
// State lives only for the process lifetime.
type MemoryStore struct {
	Users      *MemoryCollection[domain.User, *domain.User]
	Workspaces *MemoryCollection[domain.Workspace, *domain.Workspace]
	GoalTables *MemoryCollection[domain.GoalTable, *domain.GoalTable]
	Goals      *MemoryCollection[domain.Goal, *domain.Goal]
}

// NewMemoryStore creates an empty MemoryStore. Every sequence starts at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Users: newMemoryCollection[domain.User]("user", ErrUserNotFound,
			func(u *domain.User) uint32 { return u.ID }),
		Workspaces: newMemoryCollection[domain.Workspace]("workspace", ErrWorkspaceNotFound,
			func(w *domain.Workspace) uint32 { return w.ID }),
		GoalTables: newMemoryCollection[domain.GoalTable]("goal table", ErrGoalTableNotFound,
			func(t *domain.GoalTable) uint32 { return t.ID }),
		Goals: newMemoryCollection[domain.Goal]("goal", ErrGoalNotFound,
			func(g *domain.Goal) uint32 { return g.ID }),
	}
}

// Compile-time interface checks.
var (
	_ UserStore      = (*MemoryCollection[domain.User, *domain.User])(nil)
	_ WorkspaceStore = (*MemoryCollection[domain.Workspace, *domain.Workspace])(nil)
	_ GoalTableStore = (*MemoryCollection[domain.GoalTable, *domain.GoalTable])(nil)
	_ GoalStore      = (*MemoryCollection[domain.Goal, *domain.Goal])(nil)
)
