package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"brandstudio/domain/insights"
	"brandstudio/domain/studio"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const analystSystemContext = "You are a marketing analytics assistant. You read tabular " +
	"performance exports and explain what the numbers say. Respond with valid JSON."

// narrativePayload is the JSON schema the model fills in
type narrativePayload struct {
	Headline        string   `json:"headline"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Body            string   `json:"body"`
}

// MarketAnalyst asks the generative-AI collaborator for a narrative reading
// of a bounded table sample. The sample is passed as opaque prompt content;
// nothing in the response is parsed beyond the JSON envelope.
type MarketAnalyst struct {
	client *StructuredClient[narrativePayload]
}

// NewMarketAnalyst creates a market analyst backed by the structured client
func NewMarketAnalyst(config ClientConfig) *MarketAnalyst {
	config.SystemContext = analystSystemContext
	return &MarketAnalyst{
		client: NewStructuredClient[narrativePayload](config),
	}
}

// Narrate generates a narrative insight for the given sample and KPIs
func (a *MarketAnalyst) Narrate(ctx context.Context, sample string, summary insights.DashboardSummary) (*studio.NarrativeInsight, error) {
	log.Printf("[MarketAnalyst] Generating narrative - sampleLength=%d, rows=%d", len(sample), summary.RowCount)

	prompt := a.buildPrompt(sample, summary)
	payload, err := a.client.GetJsonResponse(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("narrative request failed: %w", err)
	}

	return &studio.NarrativeInsight{
		Headline:        payload.Headline,
		Findings:        payload.Findings,
		Recommendations: payload.Recommendations,
		Body:            payload.Body,
		BodyHTML:        renderMarkdown(payload.Body),
	}, nil
}

func (a *MarketAnalyst) buildPrompt(sample string, summary insights.DashboardSummary) string {
	var b strings.Builder
	b.WriteString("Analyze this marketing performance export.\n\n")
	fmt.Fprintf(&b, "Computed KPIs: %d rows, total traffic %.0f, total conversions %.0f, overall rate %.4f.\n\n",
		summary.RowCount, summary.TotalTraffic, summary.TotalConversions, summary.OverallRate)
	b.WriteString("Data sample (JSON-escaped cells, one row per line):\n")
	b.WriteString(sample)
	b.WriteString("\n\nReturn a JSON object with keys: headline (string), findings (array of strings), ")
	b.WriteString("recommendations (array of strings), body (markdown string).")
	return b.String()
}

// renderMarkdown converts the narrative body to HTML for the dashboard
func renderMarkdown(body string) string {
	if body == "" {
		return ""
	}
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(body), p, renderer))
}
