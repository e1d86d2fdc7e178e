package insights

import "testing"

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Page Title", "pagetitle"},
		{"page_title", "pagetitle"},
		{"  SESSIONS  ", "sessions"},
		{"New Contacts (30d)", "newcontacts30d"},
		{"---", ""},
		{"", ""},
	}

	for _, test := range tests {
		if got := normalizeHeader(test.input); got != test.expected {
			t.Errorf("normalizeHeader(%q) = %q, want %q", test.input, got, test.expected)
		}
	}
}

func TestResolveRolePriority(t *testing.T) {
	// "page" matches "Page Title" by substring before "title" or "url" are
	// ever tried: first candidate wins with its best available match.
	headers := []string{"Page Title", "Page URL", "Sessions"}
	header, ok := ResolveRole(headers, roleCandidates[RoleLabel])
	if !ok {
		t.Fatal("Expected label role to resolve")
	}
	if header != "Page Title" {
		t.Errorf("Label resolved to %q, want %q", header, "Page Title")
	}
}

func TestResolveRoleExactBeatsSubstringForSameCandidate(t *testing.T) {
	headers := []string{"Pageviews", "Views"}
	header, ok := ResolveRole(headers, []string{"views"})
	if !ok {
		t.Fatal("Expected resolution")
	}
	if header != "Views" {
		t.Errorf("Exact match should beat substring for one candidate, got %q", header)
	}
}

func TestResolveRoleSubstringFallback(t *testing.T) {
	headers := []string{"Total Sessions"}
	header, ok := ResolveRole(headers, roleCandidates[RoleTraffic])
	if !ok || header != "Total Sessions" {
		t.Errorf("Expected substring match on %q, got %q ok=%v", "Total Sessions", header, ok)
	}
}

func TestResolveRoleNoMatch(t *testing.T) {
	if header, ok := ResolveRole([]string{"Foo", "Bar"}, roleCandidates[RoleTraffic]); ok {
		t.Errorf("Expected no match, got %q", header)
	}
}

func TestResolveRolesLabelFallbackToFirstHeader(t *testing.T) {
	roles := ResolveRoles([]string{"Widget", "Sessions"})
	if roles[RoleLabel] != "Widget" {
		t.Errorf("Label should fall back to first header, got %q", roles[RoleLabel])
	}
	if roles[RoleTraffic] != "Sessions" {
		t.Errorf("Traffic = %q, want Sessions", roles[RoleTraffic])
	}
}

func TestResolveRolesEmptyHeaders(t *testing.T) {
	roles := ResolveRoles(nil)
	if _, ok := roles[RoleLabel]; ok {
		t.Error("No headers: label role should be absent")
	}
}

func TestResolveRolesConversion(t *testing.T) {
	roles := ResolveRoles([]string{"Campaign", "Visits", "Form Submissions"})
	if roles[RoleConversion] != "Form Submissions" {
		t.Errorf("Conversion = %q, want Form Submissions", roles[RoleConversion])
	}
	if roles[RoleLabel] != "Campaign" {
		t.Errorf("Label = %q, want Campaign", roles[RoleLabel])
	}
}

func TestResolveRoleDeterministic(t *testing.T) {
	headers := []string{"Source", "Sessions", "Conversions"}
	first, _ := ResolveRole(headers, roleCandidates[RoleLabel])
	for i := 0; i < 50; i++ {
		got, _ := ResolveRole(headers, roleCandidates[RoleLabel])
		if got != first {
			t.Fatalf("Resolution not deterministic: %q vs %q", got, first)
		}
	}
}
