package domain

import (
	"strings"
	"text/template"
)

// User represents a person who owns workspaces, goal tables, and goals.
// A single User is shared by pointer between every entity it owns.
type User struct {
	ID       uint32 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	Role     Role   `json:"role"`
}

var userTemplate = template.Must(template.New("user").Parse(
	`User ID: {{.ID}}
Username: {{.Username}}
Email: {{.Email}}
Is Active: {{.IsActive}}
Role: {{.Role}}
`))

// NewUser creates an active User with the given id, username, email and role.
// The username is checked before the email and the first failure is returned.
func NewUser(id uint32, username, email string, role Role) (*User, error) {
	user := &User{
		ID:       id,
		Username: username,
		Email:    email,
		IsActive: true,
		Role:     role,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if isBlank(u.Username) {
		return ErrEmptyUsername
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// DisplayInfo renders a multi-line summary of the user.
func (u *User) DisplayInfo() string {
	return render(userTemplate, u)
}

// validateEmailFormat accepts any address containing both '@' and '.'.
// Nothing stricter is enforced.
func validateEmailFormat(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}
