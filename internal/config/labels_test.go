package config

import "testing"

// TestLabelLookups tests the dictionary mappings for known identifiers.
func TestLabelLookups(t *testing.T) {
	labels := DefaultLabels()

	tests := []struct {
		name   string
		lookup func(string) string
		id     string
		want   string
	}{
		{"service", labels.Service, "mowing", "Lawn Care & Mowing"},
		{"service", labels.Service, "snow", "Commercial Snow Removal"},
		{"project type", labels.ProjectType, "renovation", "Landscape Renovation"},
		{"timeline", labels.Timeline, "immediate", "Immediate (0-1 month)"},
		{"referral", labels.Referral, "search", "Search Engine"},
	}

	for _, tt := range tests {
		if got := tt.lookup(tt.id); got != tt.want {
			t.Errorf("%s lookup %q: expected %q, got %q", tt.name, tt.id, tt.want, got)
		}
	}
}

// TestLabelLookupMiss verifies unmapped identifiers pass through verbatim.
func TestLabelLookupMiss(t *testing.T) {
	labels := DefaultLabels()

	if got := labels.Service("xyz"); got != "xyz" {
		t.Errorf("Expected unmapped service to pass through, got %q", got)
	}
	if got := labels.ProjectType("custom-build"); got != "custom-build" {
		t.Errorf("Expected unmapped project type to pass through, got %q", got)
	}
}
