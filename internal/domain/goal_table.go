package domain

import (
	"text/template"
	"time"
)

// GoalTable is a titled list of goals inside a workspace.
// WorkspaceID is a back-reference only; it is never checked against a real
// workspace.
type GoalTable struct {
	ID          uint32    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       *User     `json:"owner"`
	WorkspaceID uint32    `json:"workspace_id"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
	Goals       []*Goal   `json:"goals"`
}

var goalTableTemplate = template.Must(template.New("goal_table").Funcs(templateFuncs).Parse(
	`Table Title: {{.Title}}
Description: {{.Description}}
Owner: {{ownerName .Owner}}
Is Active: {{.IsActive}}
Goals:
{{range .Goals}}- {{.Text}}
{{end}}`))

// NewGoalTable creates an active GoalTable with no goals.
// The title is checked before the description.
func NewGoalTable(id uint32, title, description string, owner *User, workspaceID uint32, opts ...Option) (*GoalTable, error) {
	o := buildOptions(opts)
	table := &GoalTable{
		ID:          id,
		Title:       title,
		Description: description,
		Owner:       owner,
		WorkspaceID: workspaceID,
		CreatedAt:   o.createdAt,
		IsActive:    true,
		Goals:       make([]*Goal, 0),
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// Validate checks if the GoalTable has valid data.
func (t *GoalTable) Validate() error {
	if isBlank(t.Title) {
		return ErrEmptyTitle
	}

	if isBlank(t.Description) {
		return ErrEmptyDescription
	}

	if t.Owner == nil {
		return ErrNilOwner
	}

	return nil
}

// AddGoal appends goal to the table. There is no duplicate check.
// A nil goal is ignored.
func (t *GoalTable) AddGoal(goal *Goal) {
	if goal == nil {
		return
	}
	t.Goals = append(t.Goals, goal)
}

// DisplayInfo renders the table and the text of each of its goals.
func (t *GoalTable) DisplayInfo() string {
	return render(goalTableTemplate, t)
}
