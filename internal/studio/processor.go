package studio

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"brandstudio/adapters/excel"
	"brandstudio/domain/core"
	"brandstudio/domain/insights"
	"brandstudio/domain/studio"
	"brandstudio/internal/errors"
	profiling "brandstudio/internal/insights"
	"brandstudio/ports"
)

// Processor turns an uploaded performance export into a dashboard report:
// decode, truncate, parse, aggregate, profile, optionally persist. It holds
// no mutable state, so concurrent uploads are safe; each call produces a
// complete report that fully replaces any prior dashboard state.
type Processor struct {
	storage   FileStorage
	reports   ports.ReportRepository // optional
	analyst   ports.Analyst          // optional
	profiler  *profiling.Profiler
	engineCfg insights.Config
	maxUpload int64
}

// NewProcessor creates a new upload processor. The repository and analyst may
// be nil; the dashboard then runs without history or narratives.
func NewProcessor(storage FileStorage, reports ports.ReportRepository, analyst ports.Analyst, engineCfg insights.Config, maxUpload int64) *Processor {
	return &Processor{
		storage:   storage,
		reports:   reports,
		analyst:   analyst,
		profiler:  profiling.NewProfiler(),
		engineCfg: engineCfg,
		maxUpload: maxUpload,
	}
}

// ProcessUpload processes an uploaded export and returns the finished report
func (p *Processor) ProcessUpload(ctx context.Context, upload *studio.Upload) (*studio.Report, error) {
	log.Printf("[Processor] Starting processing for file: %s", upload.Filename)

	if err := p.validateUpload(upload); err != nil {
		return nil, fmt.Errorf("upload validation failed: %w", err)
	}

	// Keep the original export on disk for audit, then process from the
	// stored copy so the multipart stream is only consumed once.
	var source io.Reader = upload.File
	if p.storage != nil {
		path, err := p.storage.Store(ctx, upload.File, upload.Filename)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store upload")
		}
		reader, err := p.storage.GetReader(ctx, path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reopen stored upload")
		}
		defer reader.Close()
		source = reader
		log.Printf("[Processor] Stored upload at %s", path)
	}

	table, textHash, err := p.readTable(upload.Filename, source)
	if err != nil {
		return nil, err
	}

	summary := insights.Aggregate(table, p.engineCfg)
	enriched := insights.Enrich(table)
	profile := p.profiler.Profile(ctx, enriched)
	sample := insights.PromptSample(table, p.engineCfg)

	now := time.Now()
	report := &studio.Report{
		ID:               core.ReportID(core.NewID()),
		OriginalFilename: upload.Filename,
		TextHash:         textHash,
		Status:           studio.StatusReady,
		Summary:          summary,
		Distribution:     profile,
		Sample:           sample,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if p.reports != nil {
		if err := p.reports.Save(ctx, report); err != nil {
			// Persistence is best-effort; the dashboard still gets its report.
			log.Printf("[Processor] WARNING: failed to persist report %s: %v", report.ID, err)
		}
	}

	log.Printf("[Processor] Report %s ready: %d rows, %d columns", report.ID, summary.RowCount, len(table.Headers))
	return report, nil
}

// GenerateNarrative asks the AI collaborator for a narrative reading of a
// stored report's sample and attaches the result to the report.
func (p *Processor) GenerateNarrative(ctx context.Context, id core.ReportID) (*studio.Report, error) {
	if p.analyst == nil {
		return nil, core.ErrAnalystUnavailable
	}
	if p.reports == nil {
		return nil, core.ErrStorageUnavailable
	}

	report, err := p.reports.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	narrative, err := p.analyst.Narrate(ctx, report.Sample, report.Summary)
	if err != nil {
		return nil, errors.Wrap(err, "narrative generation failed")
	}

	report.Narrative = narrative
	report.UpdatedAt = time.Now()
	if err := p.reports.Save(ctx, report); err != nil {
		log.Printf("[Processor] WARNING: failed to persist narrative for %s: %v", id, err)
	}
	return report, nil
}

// validateUpload checks size and format before any decoding happens
func (p *Processor) validateUpload(upload *studio.Upload) error {
	if upload == nil || upload.File == nil {
		return errors.UploadInvalid("no file provided")
	}
	if upload.Filename == "" {
		return errors.UploadInvalid("filename is required")
	}
	if p.maxUpload > 0 && upload.Size > p.maxUpload {
		return fmt.Errorf("%w: %d bytes", core.ErrUploadTooLarge, upload.Size)
	}
	switch strings.ToLower(filepath.Ext(upload.Filename)) {
	case ".csv", ".txt", ".tsv", ".xlsx":
		return nil
	default:
		return fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, filepath.Ext(upload.Filename))
	}
}

// readTable decodes the upload into a RawTable. Excel workbooks go through
// the excelize reader; everything else is treated as delimited text, with the
// raw text truncated to the configured ceiling before the parse so a huge
// export cannot stall a request.
func (p *Processor) readTable(filename string, source io.Reader) (insights.RawTable, string, error) {
	limit := p.maxUpload
	if limit <= 0 {
		limit = int64(p.engineCfg.MaxTextBytes)
	}
	data, err := io.ReadAll(io.LimitReader(source, limit+1))
	if err != nil {
		return insights.RawTable{}, "", errors.Wrap(err, "failed to read upload")
	}
	if len(data) == 0 {
		return insights.RawTable{}, "", core.ErrEmptyUpload
	}

	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		table, err := excel.ReadWorkbook(data)
		if err != nil {
			return insights.RawTable{}, "", errors.Wrap(err, "failed to read workbook")
		}
		return table, core.NewUploadHash(string(data)).String(), nil
	}

	text := string(data)
	if p.engineCfg.MaxTextBytes > 0 && len(text) > p.engineCfg.MaxTextBytes {
		log.Printf("[Processor] Truncating upload text from %d to %d bytes", len(text), p.engineCfg.MaxTextBytes)
		text = text[:p.engineCfg.MaxTextBytes]
	}
	return insights.Parse(text), core.NewUploadHash(text).String(), nil
}
