package insights

import "strings"

// Role identifies the semantic meaning the dashboard assigns to a column.
type Role string

const (
	RoleLabel      Role = "label"
	RoleTraffic    Role = "traffic"
	RoleConversion Role = "conversion"
)

// roleCandidates maps each role to its candidate header phrases in priority
// order, most likely first. Kept as data so the matching policy stays
// auditable and testable apart from the parser.
var roleCandidates = map[Role][]string{
	RoleLabel:      {"page", "page title", "title", "url", "page url", "campaign", "source", "name"},
	RoleTraffic:    {"sessions", "visits", "pageviews", "views"},
	RoleConversion: {"submissions", "conversions", "contacts", "new contacts", "form submissions"},
}

// normalizeHeader lowercases and strips every non-alphanumeric character, so
// "Page Title", "page_title" and "PageTitle" all compare equal.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// ResolveRole picks the header matching the highest-priority candidate.
// For each candidate in order it tries a normalized exact match across all
// headers, then a normalized substring match, and returns on the first hit.
// Each candidate is tried fully before moving to the next, so an earlier
// candidate's substring match beats a later candidate's exact match.
func ResolveRole(headers []string, candidates []string) (string, bool) {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeHeader(h)
	}

	for _, candidate := range candidates {
		want := normalizeHeader(candidate)
		if want == "" {
			continue
		}
		for i, n := range normalized {
			if n == want {
				return headers[i], true
			}
		}
		for i, n := range normalized {
			if strings.Contains(n, want) {
				return headers[i], true
			}
		}
	}
	return "", false
}

// ResolveRoles resolves every dashboard role against the header list. The
// label role falls back to the first header when no candidate matches, so a
// schema-less export still gets row identities.
func ResolveRoles(headers []string) map[Role]string {
	resolved := make(map[Role]string, len(roleCandidates))
	for role, candidates := range roleCandidates {
		if header, ok := ResolveRole(headers, candidates); ok {
			resolved[role] = header
		}
	}
	if _, ok := resolved[RoleLabel]; !ok && len(headers) > 0 {
		resolved[RoleLabel] = headers[0]
	}
	return resolved
}
