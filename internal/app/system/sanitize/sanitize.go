// Package sanitize strips HTML from free-text input before it is stored.
// API clients submit plain text (descriptions, report content, feedback
// comments); anything that looks like markup is removed rather than
// round-tripped to other clients.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML elements and attributes from s and trims the
// surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
