// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email canonicalizes an email address for storage and comparison:
// surrounding whitespace is removed and the address is lowercased.
// Uniqueness checks in the users store run on this form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Phone trims surrounding whitespace. No digit normalization is applied;
// the value is contact information shown to humans, not a dialing key.
func Phone(s string) string {
	return strings.TrimSpace(s)
}

// Status canonicalizes a status identifier (trimmed, lowercased) so
// comparisons against the models status sets are exact.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
