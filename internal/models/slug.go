package models

import "strings"

// Slug derives a graph/script identifier from a display name: lower-case,
// every character outside [a-z0-9_] replaced with an underscore. Distinct
// display names can collide ("Web-Server" and "Web Server"); callers apply
// a first-wins policy when they do.
func Slug(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// FileSlug derives a filename stem from a system name for persisted
// artifacts: non-word characters other than spaces and hyphens are
// stripped, then spaces become underscores.
func FileSlug(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
