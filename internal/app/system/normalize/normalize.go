// Package normalize holds small input-normalization helpers shared by
// stores and handlers.
package normalize

import "strings"

// MaxInterests caps the number of interests kept per volunteer submission.
const MaxInterests = 10

// Interests converts a volunteer "interests" payload into a clean slice.
// The input may be a JSON array (of anything stringable) or a single
// comma-separated string. Entries are trimmed, empties dropped and
// duplicates removed while preserving first-seen order; at most
// MaxInterests entries are kept. Anything else normalizes to an empty
// slice.
func Interests(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case string:
		return dedupe(strings.Split(v, ","))
	case []string:
		return dedupe(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				continue
			}
			parts = append(parts, s)
		}
		return dedupe(parts)
	default:
		return []string{}
	}
}

func dedupe(parts []string) []string {
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
		if len(out) == MaxInterests {
			break
		}
	}
	return out
}

// Role maps stored role values onto the known set, defaulting to "user".
func Role(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "admin":
		return "admin"
	case "coordinator":
		return "coordinator"
	default:
		return "user"
	}
}
