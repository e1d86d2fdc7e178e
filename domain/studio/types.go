package studio

import (
	"mime/multipart"
	"time"

	"brandstudio/domain/core"
	"brandstudio/domain/insights"
)

// ReportStatus represents the processing state of a dashboard report
type ReportStatus string

const (
	StatusProcessing ReportStatus = "processing"
	StatusReady      ReportStatus = "ready"
	StatusFailed     ReportStatus = "failed"
)

// Upload represents an uploaded performance export before processing
type Upload struct {
	ID       core.UploadID  `json:"id"`
	Filename string         `json:"filename"`
	File     multipart.File `json:"-"`
	MimeType string         `json:"mime_type"`
	Size     int64          `json:"size"`
}

// Report represents a finished market-insights dashboard report
type Report struct {
	ID               core.ReportID `json:"id"`
	OriginalFilename string        `json:"original_filename"`
	TextHash         string        `json:"text_hash"`
	Status           ReportStatus  `json:"status"`
	ErrorMessage     string        `json:"error_message,omitempty"`

	// Dashboard payload
	Summary      insights.DashboardSummary `json:"summary"`
	Distribution *DistributionProfile      `json:"distribution,omitempty"`

	// Bounded prompt sample kept for on-demand narrative generation
	Sample string `json:"sample,omitempty"`

	// Optional AI narrative
	Narrative *NarrativeInsight `json:"narrative,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DistributionProfile summarizes the shape of the traffic and rate columns
// for the dashboard sidebar.
type DistributionProfile struct {
	Traffic     ColumnStats `json:"traffic"`
	Rate        ColumnStats `json:"rate"`
	Correlation float64     `json:"traffic_conversion_correlation"`
}

// ColumnStats holds the descriptive statistics of one numeric column
type ColumnStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// NarrativeInsight is the structured reading the AI collaborator returns for
// a bounded sample of the parsed table.
type NarrativeInsight struct {
	Headline        string   `json:"headline"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
	Body            string   `json:"body"`      // markdown
	BodyHTML        string   `json:"body_html"` // rendered for the dashboard
}
