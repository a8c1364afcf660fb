// Package sanitize strips markup from user-supplied free text before it
// is stored. Bios, project descriptions, and request messages are plain
// text to every consumer, so anything that looks like HTML is removed
// rather than escaped.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// Text removes all HTML elements and attributes from s and trims the
// result. Plain text passes through unchanged.
func Text(s string) string {
	once.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(policy.Sanitize(s))
}
