package ports

import (
	"context"

	"brandstudio/domain/insights"
	"brandstudio/domain/studio"
)

// Analyst is the generative-AI collaborator boundary. It receives a bounded
// textual sample of the parsed table plus the computed KPIs and returns a
// narrative reading. The engine never interprets the narrative content.
type Analyst interface {
	Narrate(ctx context.Context, sample string, summary insights.DashboardSummary) (*studio.NarrativeInsight, error)
}
