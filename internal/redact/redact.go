// Package redact masks personal data in strings before they are logged.
// Usernames are kept, email addresses are not.
package redact

import (
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
)

// Precompiled regex patterns
var (
	// Email addresses. The domain part may lack a dot, as "x.y@corp" is an
	// address the domain model accepts.
	emailRegex = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+`)

	// Credentials and tokens
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd|secret|token)([=:\s]?['"]?)[^'"&\s]{3,}`)

	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{emailRegex, RedactedEmailPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Email masks an address down to the first character of its local part and
// its domain, e.g. "alice@example.com" becomes "a****@example.com". Input
// without an '@' is replaced entirely.
func Email(addr string) string {
	if addr == "" {
		return ""
	}

	at := strings.LastIndex(addr, "@")
	if at <= 0 {
		return RedactedEmailPlaceholder
	}

	local := []rune(addr[:at])
	return string(local[0]) + strings.Repeat("*", len(local)-1) + addr[at:]
}
