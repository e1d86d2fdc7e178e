package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDString tests ID string conversion
func TestIDString(t *testing.T) {
	id := ID("test-123")
	if id.String() != "test-123" {
		t.Errorf("Expected String() to return 'test-123', got '%s'", id.String())
	}
}

// TestParseUploadID tests upload ID parsing
func TestParseUploadID(t *testing.T) {
	tests := []struct {
		input    string
		expected UploadID
		hasError bool
	}{
		{"valid-id", UploadID("valid-id"), false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, test := range tests {
		result, err := ParseUploadID(test.input)
		if test.hasError && err == nil {
			t.Errorf("Expected error for input '%s', but got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestUploadHashDeterministic tests that identical text produces identical hashes
func TestUploadHashDeterministic(t *testing.T) {
	a := NewUploadHash("Page,Sessions\n/a,1")
	b := NewUploadHash("Page,Sessions\n/a,1")
	if a != b {
		t.Errorf("Hashes differ for identical text: %s vs %s", a, b)
	}

	c := NewUploadHash("Page,Sessions\n/a,2")
	if a == c {
		t.Error("Hashes identical for different text")
	}
}
