package domain

import (
	"text/template"
	"time"
)

// Goal is a single line item in a goal table.
type Goal struct {
	ID        uint32    `json:"id"`
	Owner     *User     `json:"owner"`
	Text      string    `json:"text"`
	TableID   uint32    `json:"table_id"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

var goalTemplate = template.Must(template.New("goal").Funcs(templateFuncs).Parse(
	`Goal Text: {{.Text}}
Owner: {{ownerName .Owner}}
Is Active: {{.IsActive}}
`))

// NewGoal creates an active Goal tagged with tableID.
// Returns ErrEmptyText if the text is blank.
func NewGoal(id uint32, owner *User, text string, tableID uint32, opts ...Option) (*Goal, error) {
	o := buildOptions(opts)
	goal := &Goal{
		ID:        id,
		Owner:     owner,
		Text:      text,
		TableID:   tableID,
		CreatedAt: o.createdAt,
		IsActive:  true,
	}

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	return goal, nil
}

// Validate checks if the Goal has valid data.
func (g *Goal) Validate() error {
	if isBlank(g.Text) {
		return ErrEmptyText
	}

	if g.Owner == nil {
		return ErrNilOwner
	}

	return nil
}

// DisplayInfo renders the goal.
func (g *Goal) DisplayInfo() string {
	return render(goalTemplate, g)
}
