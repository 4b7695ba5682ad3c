package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/goalboard/internal/domain"
	"github.com/phrazzld/goalboard/internal/service"
)

// Menu choices.
const (
	ChoiceTestEnvironment = iota + 1
	ChoiceCreateUser
	ChoiceCreateGoal
	ChoiceCreateGoalTable
	ChoiceCreateWorkspace
	ChoicePrintAll
	ChoiceExit
)

const clearScreenSequence = "\x1b[2J"

// Fixed menu text.
const (
	welcomeText       = "Welcome to the Goal Management System!"
	invalidChoiceText = "Invalid choice, please try again."
	exitText          = "Exiting..."
	needUserText      = "Please create a user first."
	needWorkspaceText = "Please create a WorkSpace first."
	needGoalTableText = "Please create a Goal Table first."
)

var menuOptions = []string{
	"1. Test Environment",
	"2. Create User",
	"3. Create Goal",
	"4. Create Goal Table",
	"5. Create Workspace",
	"6. Print All",
	"7. Exit",
}

// userFacingErrors are reported by their own message rather than the full
// wrapped chain. The first match wins.
var userFacingErrors = []error{
	domain.ErrEmptyUsername,
	domain.ErrInvalidEmail,
	domain.ErrEmptyDescription,
	domain.ErrEmptyTitle,
	domain.ErrEmptyText,
	domain.ErrUnknownRole,
}

// Controller is the session surface the menu drives.
type Controller interface {
	Snapshot() service.Snapshot
	CreateUser(ctx context.Context, username, email, roleText string) (*domain.User, error)
	CreateWorkspace(ctx context.Context, description string) (*domain.Workspace, error)
	CreateGoalTable(ctx context.Context, title, description string) (*domain.GoalTable, error)
	CreateGoal(ctx context.Context, text string) (*domain.Goal, error)
	SeedTestEnvironment(ctx context.Context) (service.Snapshot, error)
	PrintAll(w io.Writer) error
}

// MenuOptions configures a Menu.
type MenuOptions struct {
	// ClearScreen writes an ANSI clear-screen sequence before each action.
	ClearScreen bool
}

// Menu is the interactive loop.
type Menu struct {
	session Controller
	prompt  *Prompter
	out     io.Writer
	logger  *slog.Logger
	opts    MenuOptions
}

// NewMenu creates a Menu reading from in and writing to out. A nil logger
// means slog.Default().
func NewMenu(session Controller, in io.Reader, out io.Writer, logger *slog.Logger, opts MenuOptions) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		session: session,
		prompt:  NewPrompter(in, out),
		out:     out,
		logger:  logger.With("component", "menu"),
		opts:    opts,
	}
}

// Run shows the menu until the user chooses Exit or input ends.
// It returns nil in both cases, and an error when reading input fails or
// ctx is done. A done ctx also ends a pending prompt.
func (m *Menu) Run(ctx context.Context) error {
	m.println(welcomeText)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println("\n\n\n")
		for _, opt := range menuOptions {
			m.println(opt)
		}

		line, err := m.prompt.Ask(ctx, "")
		if errors.Is(err, io.EOF) {
			m.logger.Debug("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}

		choice, ok := ParseChoice(line)
		if !ok {
			m.logger.Debug("invalid menu choice", "input", line)
			m.println(invalidChoiceText)
			continue
		}

		m.logger.Debug("menu choice", "choice", choice)
		m.clear()

		if choice == ChoiceExit {
			m.println(exitText)
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				m.logger.Debug("input closed mid-action, leaving menu")
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case ChoiceTestEnvironment:
		return m.testEnvironment(ctx)
	case ChoiceCreateUser:
		return m.createUser(ctx)
	case ChoiceCreateGoal:
		return m.createGoal(ctx)
	case ChoiceCreateGoalTable:
		return m.createGoalTable(ctx)
	case ChoiceCreateWorkspace:
		return m.createWorkspace(ctx)
	case ChoicePrintAll:
		return m.session.PrintAll(m.out)
	default:
		m.println(invalidChoiceText)
		return nil
	}
}

func (m *Menu) testEnvironment(ctx context.Context) error {
	snap, err := m.session.SeedTestEnvironment(ctx)
	if err != nil {
		m.println("Error creating test environment: " + describe(err))
		return nil
	}

	m.println("Test Environment Created:")
	m.section("User:", snap.User.DisplayInfo())
	m.section("Goal:", snap.Goal.DisplayInfo())
	m.section("Goal Table:", snap.GoalTable.DisplayInfo())
	m.section("Workspace:", snap.Workspace.DisplayInfo())
	return nil
}

func (m *Menu) createUser(ctx context.Context) error {
	username, err := m.prompt.Ask(ctx, "Enter Username:")
	if err != nil {
		return err
	}
	email, err := m.prompt.Ask(ctx, "Enter Email:")
	if err != nil {
		return err
	}
	role, err := m.prompt.Ask(ctx, "Enter User Role (Classic, Vip, Admin, Owner):")
	if err != nil {
		return err
	}

	user, err := m.session.CreateUser(ctx, username, email, role)
	if err != nil {
		m.report("user", err)
		return nil
	}

	m.println("User created successfully!")
	m.print(user.DisplayInfo())
	return nil
}

func (m *Menu) createWorkspace(ctx context.Context) error {
	if m.session.Snapshot().User == nil {
		m.println(needUserText)
		return nil
	}

	description, err := m.prompt.Ask(ctx, "Enter Workspace Description:")
	if err != nil {
		return err
	}

	ws, err := m.session.CreateWorkspace(ctx, description)
	if err != nil {
		m.report("workspace", err)
		return nil
	}

	m.println("Workspace created successfully!")
	m.print(ws.DisplayInfo())
	return nil
}

func (m *Menu) createGoalTable(ctx context.Context) error {
	snap := m.session.Snapshot()
	if snap.User == nil {
		m.println(needUserText)
		return nil
	}
	if snap.Workspace == nil {
		m.println(needWorkspaceText)
		return nil
	}

	title, err := m.prompt.Ask(ctx, "Enter Goal Table Title:")
	if err != nil {
		return err
	}
	description, err := m.prompt.Ask(ctx, "Enter Goal Table Description:")
	if err != nil {
		return err
	}

	table, err := m.session.CreateGoalTable(ctx, title, description)
	if err != nil {
		m.report("goal table", err)
		return nil
	}

	m.println("Goal Table created successfully!")
	m.print(table.DisplayInfo())
	return nil
}

func (m *Menu) createGoal(ctx context.Context) error {
	snap := m.session.Snapshot()
	if snap.User == nil {
		m.println(needUserText)
		return nil
	}
	if snap.GoalTable == nil {
		m.println(needGoalTableText)
		return nil
	}

	text, err := m.prompt.Ask(ctx, "Enter Goal Text:")
	if err != nil {
		return err
	}

	goal, err := m.session.CreateGoal(ctx, text)
	if err != nil {
		m.report("goal", err)
		return nil
	}

	m.println("Goal created successfully!")
	m.print(goal.DisplayInfo())
	return nil
}

// report prints a creation failure. Prerequisite errors map to their
// "Please create ..." hint.
func (m *Menu) report(kind string, err error) {
	switch {
	case errors.Is(err, service.ErrNoCurrentUser):
		m.println(needUserText)
	case errors.Is(err, service.ErrNoCurrentWorkspace):
		m.println(needWorkspaceText)
	case errors.Is(err, service.ErrNoCurrentGoalTable):
		m.println(needGoalTableText)
	default:
		m.println(fmt.Sprintf("Error creating %s: %s", kind, describe(err)))
	}
}

// describe returns the message shown to the user for err.
func describe(err error) string {
	for _, target := range userFacingErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}

func (m *Menu) section(title, body string) {
	m.println(title)
	m.print(body)
}

func (m *Menu) clear() {
	if m.opts.ClearScreen {
		m.print(clearScreenSequence)
	}
}

func (m *Menu) println(s string) {
	m.print(s + "\n")
}

// print writes to the output sink. Write errors are logged rather than
// returned; a closed terminal ends the loop through the input side.
func (m *Menu) print(s string) {
	if _, err := io.WriteString(m.out, s); err != nil {
		m.logger.Warn("failed to write output", "error", err)
	}
}

// ParseChoice reports the menu choice encoded in line, or false if line is
// not a valid choice.
func ParseChoice(line string) (int, bool) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < ChoiceTestEnvironment || choice > ChoiceExit {
		return 0, false
	}
	return choice, true
}
