package ai

import (
	"strings"
	"testing"

	"brandstudio/domain/insights"
)

func TestCleanJSONContent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading chatter", "Here is the analysis:\n\n{\"a\":1}", `{"a":1}`},
		{"array payload", "The result follows.\n[1,2]", `[1,2]`},
	}

	for _, test := range tests {
		if got := cleanJSONContent(test.input); got != test.expected {
			t.Errorf("%s: cleanJSONContent(%q) = %q, want %q", test.name, test.input, got, test.expected)
		}
	}
}

func TestBuildPromptIncludesKPIsAndSample(t *testing.T) {
	analyst := NewMarketAnalyst(ClientConfig{Model: "gpt-4o-mini"})
	summary := insights.DashboardSummary{
		RowCount:         3,
		TotalTraffic:     1520,
		TotalConversions: 40,
		OverallRate:      40.0 / 1520.0,
	}
	sample := `"Page","Sessions"` + "\n" + `"/pricing","500"`

	prompt := analyst.buildPrompt(sample, summary)
	if !strings.Contains(prompt, "total traffic 1520") {
		t.Errorf("Prompt missing traffic KPI: %s", prompt)
	}
	if !strings.Contains(prompt, sample) {
		t.Error("Prompt missing data sample")
	}
	if !strings.Contains(prompt, "JSON object") {
		t.Error("Prompt missing response schema instruction")
	}
}

func TestRenderMarkdown(t *testing.T) {
	htmlOut := renderMarkdown("## Top pages\n\n- /pricing")
	if !strings.Contains(htmlOut, "<h2") {
		t.Errorf("Expected heading in rendered HTML, got %q", htmlOut)
	}
	if !strings.Contains(htmlOut, "<li>") {
		t.Errorf("Expected list item in rendered HTML, got %q", htmlOut)
	}
	if renderMarkdown("") != "" {
		t.Error("Empty body should render to empty string")
	}
}
