// Package auth provides the admin capability check consumed at the HTTP
// boundary. Authentication itself lives upstream; this package only answers
// whether an identified user may edit workspace configuration.
package auth

import "strings"

// Policy answers the admin capability check.
type Policy interface {
	IsAdmin(email string) bool
}

// AllowlistPolicy is a Policy backed by a fixed set of email addresses,
// typically sourced from configuration. Swapping in a directory-service
// backed Policy requires no caller changes.
type AllowlistPolicy struct {
	emails map[string]struct{}
}

// NewAllowlistPolicy builds a policy from the configured address list.
// Matching is case-insensitive.
func NewAllowlistPolicy(emails []string) *AllowlistPolicy {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		set[email] = struct{}{}
	}
	return &AllowlistPolicy{emails: set}
}

// IsAdmin reports whether email belongs to the allowlist.
func (p *AllowlistPolicy) IsAdmin(email string) bool {
	if p == nil {
		return false
	}
	_, ok := p.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
