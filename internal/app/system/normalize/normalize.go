// Package normalize folds user-supplied identifiers into their stored
// form so lookups and intersections never fold case at query time.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Username trims a username. Case is preserved; usernames are displayed
// as entered and uniqueness is enforced on the exact string.
func Username(s string) string {
	return strings.TrimSpace(s)
}

// Domain lowercases and trims a project domain tag.
func Domain(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Skill lowercases and trims a single skill tag.
func Skill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Skills folds every tag, drops empties, and removes duplicates while
// preserving first-seen order.
func Skills(tags []string) []string {
	if len(tags) == 0 {
		return []string{}
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		s := Skill(t)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
