package store

import (
	"context"

	"github.com/phrazzld/goalboard/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// NextID returns the id the next created user must carry.
	// It does not consume the id.
	NextID(ctx context.Context) (uint32, error)

	// Create saves a new user and consumes its id.
	// Returns ErrIDOutOfSequence if user.ID is not NextID, ErrDuplicate if
	// the id is taken, and an ErrInvalidEntity-wrapped error if validation fails.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uint32) (*domain.User, error)

	// List returns every user in creation order.
	List(ctx context.Context) ([]*domain.User, error)
}

// WorkspaceStore defines the interface for workspace data persistence.
// Semantics match UserStore.
type WorkspaceStore interface {
	NextID(ctx context.Context) (uint32, error)
	Create(ctx context.Context, workspace *domain.Workspace) error
	GetByID(ctx context.Context, id uint32) (*domain.Workspace, error)
	List(ctx context.Context) ([]*domain.Workspace, error)
}

// GoalTableStore defines the interface for goal table data persistence.
// Semantics match UserStore.
type GoalTableStore interface {
	NextID(ctx context.Context) (uint32, error)
	Create(ctx context.Context, table *domain.GoalTable) error
	GetByID(ctx context.Context, id uint32) (*domain.GoalTable, error)
	List(ctx context.Context) ([]*domain.GoalTable, error)
}

// GoalStore defines the interface for goal data persistence.
// Semantics match UserStore.
type GoalStore interface {
	NextID(ctx context.Context) (uint32, error)
	Create(ctx context.Context, goal *domain.Goal) error
	GetByID(ctx context.Context, id uint32) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
}
