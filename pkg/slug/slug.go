// Package slug derives URL-safe identifiers from display names.
package slug

import "strings"

// Make lowercases the name and collapses every run of characters outside
// [a-z0-9] into a single dash, with no leading or trailing dash. The
// transform is idempotent, so a slug can be fed back in unchanged.
func Make(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		} else {
			pendingDash = true
		}
	}
	return b.String()
}
