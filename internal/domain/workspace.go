package domain

import (
	"text/template"
	"time"
)

// Workspace groups goal tables under a single owner.
// It owns its tables exclusively and keeps them in insertion order.
type Workspace struct {
	ID          uint32       `json:"id"`
	Description string       `json:"description"`
	Owner       *User        `json:"owner"`
	CreatedAt   time.Time    `json:"created_at"`
	Tables      []*GoalTable `json:"tables"`
}

var workspaceTemplate = template.Must(template.New("workspace").Funcs(templateFuncs).Parse(
	`Workspace ID: {{.ID}}
Description: {{.Description}}
Owner: {{ownerName .Owner}}
Tables:
{{range .Tables}}- {{.Title}}
{{end}}`))

// NewWorkspace creates a Workspace with no tables.
// Returns ErrEmptyDescription if the description is blank.
func NewWorkspace(id uint32, description string, owner *User, opts ...Option) (*Workspace, error) {
	o := buildOptions(opts)
	ws := &Workspace{
		ID:          id,
		Description: description,
		Owner:       owner,
		CreatedAt:   o.createdAt,
		Tables:      make([]*GoalTable, 0),
	}

	if err := ws.Validate(); err != nil {
		return nil, err
	}

	return ws, nil
}

// Validate checks if the Workspace has valid data.
func (w *Workspace) Validate() error {
	if isBlank(w.Description) {
		return ErrEmptyDescription
	}

	if w.Owner == nil {
		return ErrNilOwner
	}

	return nil
}

// AddTable appends table to the workspace. There is no duplicate check.
// A nil table is ignored.
func (w *Workspace) AddTable(table *GoalTable) {
	if table == nil {
		return
	}
	w.Tables = append(w.Tables, table)
}

// DisplayInfo renders the workspace and the title of each of its tables.
func (w *Workspace) DisplayInfo() string {
	return render(workspaceTemplate, w)
}
