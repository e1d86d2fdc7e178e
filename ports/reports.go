package ports

import (
	"context"

	"brandstudio/domain/core"
	"brandstudio/domain/studio"
)

// ReportRepository persists finished dashboard reports
type ReportRepository interface {
	// Save stores a report, replacing any prior version with the same ID
	Save(ctx context.Context, report *studio.Report) error

	// Get retrieves a report by ID; core.ErrReportNotFound when absent
	Get(ctx context.Context, id core.ReportID) (*studio.Report, error)

	// List returns reports newest-first, bounded by limit
	List(ctx context.Context, limit int) ([]*studio.Report, error)

	// Delete removes a report by ID
	Delete(ctx context.Context, id core.ReportID) error
}
