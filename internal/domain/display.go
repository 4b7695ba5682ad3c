package domain

import (
	"fmt"
	"strings"
	"text/template"
)

// templateFuncs are shared by every entity template.
var templateFuncs = template.FuncMap{
	"ownerName": func(u *User) string {
		if u == nil {
			return ""
		}
		return u.Username
	},
}

// render executes t against data. Templates are fixed at init, so an
// execution error only happens on a malformed entity and is rendered inline.
func render(t *template.Template, data any) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return fmt.Sprintf("%s: render failed: %v\n", t.Name(), err)
	}
	return b.String()
}

// isBlank reports whether s is empty after trimming whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
