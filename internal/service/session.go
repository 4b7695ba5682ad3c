package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/phrazzld/goalboard/internal/domain"
	"github.com/phrazzld/goalboard/internal/events"
	"github.com/phrazzld/goalboard/internal/redact"
	"github.com/phrazzld/goalboard/internal/store"
)

// Entity kind names used in events and logs.
const (
	EntityUser      = "user"
	EntityWorkspace = "workspace"
	EntityGoalTable = "goal table"
	EntityGoal      = "goal"

	// EntityEnvironment tags the event emitted after seeding.
	EntityEnvironment = "environment"
)

// Seed values used by SeedTestEnvironment.
const (
	SeedUsername   = "test_user"
	SeedEmail      = "test_user@gmail.com"
	SeedWorkspace  = "Test Workspace"
	SeedTableTitle = "Test Table"
	SeedTableDesc  = "Test Description"
	SeedGoalText   = "Test Goal"
	seedRoleText   = "Classic"
)

// Stores groups the per-kind stores a Session writes to.
type Stores struct {
	Users      store.UserStore
	Workspaces store.WorkspaceStore
	GoalTables store.GoalTableStore
	Goals      store.GoalStore
}

// MemoryStores adapts a MemoryStore to Stores.
func MemoryStores(m *store.MemoryStore) Stores {
	return Stores{
		Users:      m.Users,
		Workspaces: m.Workspaces,
		GoalTables: m.GoalTables,
		Goals:      m.Goals,
	}
}

// Options tunes entity construction.
type Options struct {
	// LegacyTimestamps stamps entities with midnight of the current day.
	LegacyTimestamps bool

	// StrictRoles makes CreateUser reject unknown role names.
	StrictRoles bool

	// Now overrides the clock. Defaults to time.Now in UTC.
	Now func() time.Time
}

// Snapshot holds the current entity of each kind. Any field may be nil.
type Snapshot struct {
	User      *domain.User
	Workspace *domain.Workspace
	GoalTable *domain.GoalTable
	Goal      *domain.Goal
}

// Session holds at most one current entity per kind and creates new ones on
// request. It is meant to be driven by a single caller.
type Session struct {
	stores  Stores
	emitter events.EventEmitter
	logger  *slog.Logger
	opts    Options

	current Snapshot
}

// NewSession creates a Session. emitter may be nil; a nil logger means
// slog.Default().
func NewSession(stores Stores, emitter events.EventEmitter, logger *slog.Logger, opts Options) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	return &Session{
		stores:  stores,
		emitter: emitter,
		logger:  logger.With("component", "session"),
		opts:    opts,
	}
}

// Snapshot returns the current entities.
func (s *Session) Snapshot() Snapshot {
	return s.current
}

// CreateUser validates and stores a new user, which becomes current.
// roleText is parsed with domain.ParseRole, or domain.ParseRoleStrict when
// StrictRoles is set.
func (s *Session) CreateUser(ctx context.Context, username, email, roleText string) (*domain.User, error) {
	role := domain.ParseRole(roleText)
	if s.opts.StrictRoles {
		var err error
		role, err = domain.ParseRoleStrict(roleText)
		if err != nil {
			s.logger.Debug("rejected user role", "error", err)
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	id, err := s.stores.Users.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve user id: %w", err)
	}

	user, err := domain.NewUser(id, username, email, role)
	if err != nil {
		s.logger.Debug("user validation failed",
			"error", err,
			"email", redact.Email(email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.stores.Users.Create(ctx, user); err != nil {
		s.logger.Error("failed to store user",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.current.User = user
	s.emitCreated(ctx, EntityUser, user.ID, map[string]any{
		"username": user.Username,
		"email":    redact.Email(user.Email),
		"role":     user.Role,
	})

	s.logger.Info("user created",
		"user_id", user.ID,
		"username", user.Username,
		"email", redact.Email(user.Email),
		"role", user.Role)

	return user, nil
}

// CreateWorkspace creates a workspace owned by the current user.
// Returns ErrNoCurrentUser if no user exists yet.
func (s *Session) CreateWorkspace(ctx context.Context, description string) (*domain.Workspace, error) {
	owner := s.current.User
	if owner == nil {
		return nil, ErrNoCurrentUser
	}

	id, err := s.stores.Workspaces.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve workspace id: %w", err)
	}

	ws, err := domain.NewWorkspace(id, description, owner, s.entityOptions()...)
	if err != nil {
		s.logger.Debug("workspace validation failed", "error", err)
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	if err := s.stores.Workspaces.Create(ctx, ws); err != nil {
		s.logger.Error("failed to store workspace",
			"error", err,
			"workspace_id", id)
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.current.Workspace = ws
	s.emitCreated(ctx, EntityWorkspace, ws.ID, map[string]any{
		"description": ws.Description,
		"owner_id":    owner.ID,
	})

	s.logger.Info("workspace created",
		"workspace_id", ws.ID,
		"owner_id", owner.ID)

	return ws, nil
}

// CreateGoalTable creates a goal table in the current workspace and appends
// it to that workspace. Requires a current user and a current workspace,
// checked in that order.
func (s *Session) CreateGoalTable(ctx context.Context, title, description string) (*domain.GoalTable, error) {
	owner := s.current.User
	if owner == nil {
		return nil, ErrNoCurrentUser
	}
	ws := s.current.Workspace
	if ws == nil {
		return nil, ErrNoCurrentWorkspace
	}

	id, err := s.stores.GoalTables.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve goal table id: %w", err)
	}

	table, err := domain.NewGoalTable(id, title, description, owner, ws.ID, s.entityOptions()...)
	if err != nil {
		s.logger.Debug("goal table validation failed", "error", err)
		return nil, fmt.Errorf("failed to create goal table: %w", err)
	}

	if err := s.stores.GoalTables.Create(ctx, table); err != nil {
		s.logger.Error("failed to store goal table",
			"error", err,
			"goal_table_id", id)
		return nil, fmt.Errorf("failed to create goal table: %w", err)
	}

	ws.AddTable(table)
	s.current.GoalTable = table
	s.emitCreated(ctx, EntityGoalTable, table.ID, map[string]any{
		"title":        table.Title,
		"workspace_id": table.WorkspaceID,
		"owner_id":     owner.ID,
	})

	s.logger.Info("goal table created",
		"goal_table_id", table.ID,
		"workspace_id", ws.ID,
		"table_count", len(ws.Tables))

	return table, nil
}

// CreateGoal creates a goal in the current goal table and appends it to that
// table. Requires a current user and a current goal table, checked in that
// order.
func (s *Session) CreateGoal(ctx context.Context, text string) (*domain.Goal, error) {
	owner := s.current.User
	if owner == nil {
		return nil, ErrNoCurrentUser
	}
	table := s.current.GoalTable
	if table == nil {
		return nil, ErrNoCurrentGoalTable
	}

	id, err := s.stores.Goals.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve goal id: %w", err)
	}

	goal, err := domain.NewGoal(id, owner, text, table.ID, s.entityOptions()...)
	if err != nil {
		s.logger.Debug("goal validation failed", "error", err)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	if err := s.stores.Goals.Create(ctx, goal); err != nil {
		s.logger.Error("failed to store goal",
			"error", err,
			"goal_id", id)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	table.AddGoal(goal)
	s.current.Goal = goal
	s.emitCreated(ctx, EntityGoal, goal.ID, map[string]any{
		"text":     goal.Text,
		"table_id": goal.TableID,
		"owner_id": owner.ID,
	})

	s.logger.Info("goal created",
		"goal_id", goal.ID,
		"goal_table_id", table.ID,
		"goal_count", len(table.Goals))

	return goal, nil
}

// SeedTestEnvironment builds a linked user, workspace, goal table and goal
// from fixed values through the normal creation path. The seeded entities
// become current.
func (s *Session) SeedTestEnvironment(ctx context.Context) (Snapshot, error) {
	if _, err := s.CreateUser(ctx, SeedUsername, SeedEmail, seedRoleText); err != nil {
		return Snapshot{}, fmt.Errorf("failed to seed test environment: %w", err)
	}
	if _, err := s.CreateWorkspace(ctx, SeedWorkspace); err != nil {
		return Snapshot{}, fmt.Errorf("failed to seed test environment: %w", err)
	}
	if _, err := s.CreateGoalTable(ctx, SeedTableTitle, SeedTableDesc); err != nil {
		return Snapshot{}, fmt.Errorf("failed to seed test environment: %w", err)
	}
	if _, err := s.CreateGoal(ctx, SeedGoalText); err != nil {
		return Snapshot{}, fmt.Errorf("failed to seed test environment: %w", err)
	}

	snap := s.current
	s.emit(ctx, events.TypeEnvironmentSeeded, EntityEnvironment, 0, map[string]any{
		"user_id":       snap.User.ID,
		"workspace_id":  snap.Workspace.ID,
		"goal_table_id": snap.GoalTable.ID,
		"goal_id":       snap.Goal.ID,
	})

	s.logger.Info("test environment seeded", "user_id", snap.User.ID)
	return snap, nil
}

// PrintAll writes every current entity's DisplayInfo to w, or a placeholder
// line for each kind that has none yet.
func (s *Session) PrintAll(w io.Writer) error {
	sections := []struct {
		present bool
		render  func() string
		missing string
	}{
		{s.current.User != nil, func() string { return s.current.User.DisplayInfo() }, "No user created.\n"},
		{s.current.Workspace != nil, func() string { return s.current.Workspace.DisplayInfo() }, "No workspace created.\n"},
		{s.current.GoalTable != nil, func() string { return s.current.GoalTable.DisplayInfo() }, "No goal table created.\n"},
		{s.current.Goal != nil, func() string { return s.current.Goal.DisplayInfo() }, "No goal created.\n"},
	}

	for _, sec := range sections {
		text := sec.missing
		if sec.present {
			text = sec.render()
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) entityOptions() []domain.Option {
	now := s.opts.Now()
	if s.opts.LegacyTimestamps {
		now = domain.StartOfDay(now)
	}
	return []domain.Option{domain.WithCreatedAt(now)}
}

func (s *Session) emitCreated(ctx context.Context, entity string, id uint32, payload any) {
	s.emit(ctx, events.TypeEntityCreated, entity, id, payload)
}

// emit publishes an event. Emission failures are logged and never undo the
// creation that triggered them.
func (s *Session) emit(ctx context.Context, eventType, entity string, id uint32, payload any) {
	if s.emitter == nil {
		return
	}

	event, err := events.NewEntityEvent(eventType, entity, id, payload)
	if err != nil {
		s.logger.Error("failed to build event",
			"error", err,
			"event_type", eventType,
			"entity", entity)
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.logger.Warn("event handler failed",
			"error", err,
			"event_id", event.ID,
			"event_type", eventType)
	}
}
