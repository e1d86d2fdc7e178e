package ui

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"brandstudio/domain/core"
	"brandstudio/domain/studio"
	processor "brandstudio/internal/studio"
	"brandstudio/ports"

	"github.com/gin-gonic/gin"
)

// Server represents the studio dashboard API server
type Server struct {
	router    *gin.Engine
	processor *processor.Processor
	reports   ports.ReportRepository // optional
	maxUpload int64
}

// NewServer creates a new dashboard API server
func NewServer(proc *processor.Processor, reports ports.ReportRepository, maxUpload int64) *Server {
	s := &Server{
		router:    gin.Default(),
		processor: proc,
		reports:   reports,
		maxUpload: maxUpload,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/uploads", s.handleFileUpload)
	api.GET("/dashboard/:id", s.handleGetDashboard)
	api.POST("/insights/:id/narrative", s.handleNarrative)
	api.GET("/reports", s.handleListReports)
}

// Run starts the server on the given port
func (s *Server) Run(port string) error {
	log.Printf("[Server] Starting dashboard API on port %s", port)
	return s.router.Run(":" + port)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleFileUpload handles performance-export uploads. Parsing and
// aggregation degrade silently, so a recognized file always yields a 200
// with a (possibly degenerate) dashboard summary.
func (s *Server) handleFileUpload(c *gin.Context) {
	log.Printf("[handleFileUpload] Starting file upload process")

	file, header, err := c.Request.FormFile("export")
	if err != nil {
		log.Printf("[handleFileUpload] FAILED - No file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if s.maxUpload > 0 && header.Size > s.maxUpload {
		log.Printf("[handleFileUpload] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File size (%.1f MB) exceeds the %.0fMB limit",
				float64(header.Size)/(1024*1024), float64(s.maxUpload)/(1024*1024)),
		})
		return
	}

	upload := &studio.Upload{
		ID:       core.UploadID(core.NewID()),
		Filename: header.Filename,
		File:     file,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
	}

	report, err := s.processor.ProcessUpload(c.Request.Context(), upload)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, core.ErrUnsupportedFormat) || errors.Is(err, core.ErrUploadTooLarge) || errors.Is(err, core.ErrEmptyUpload) {
			status = http.StatusBadRequest
		}
		log.Printf("[handleFileUpload] FAILED - Processing failed: %v", err)
		c.JSON(status, gin.H{"error": fmt.Sprintf("Failed to process export: %v", err)})
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleGetDashboard returns a stored dashboard report
func (s *Server) handleGetDashboard(c *gin.Context) {
	if s.reports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report storage not configured"})
		return
	}

	id, err := core.ParseReportID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report ID is required"})
		return
	}

	report, err := s.reports.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		log.Printf("[handleGetDashboard] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleNarrative generates the AI narrative for a stored report
func (s *Server) handleNarrative(c *gin.Context) {
	id, err := core.ParseReportID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Report ID is required"})
		return
	}

	report, err := s.processor.GenerateNarrative(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrAnalystUnavailable), errors.Is(err, core.ErrStorageUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case core.IsNotFoundError(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		default:
			log.Printf("[handleNarrative] ERROR: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Narrative generation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// handleListReports returns recent reports, newest first
func (s *Server) handleListReports(c *gin.Context) {
	if s.reports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report storage not configured"})
		return
	}

	reports, err := s.reports.List(c.Request.Context(), 50)
	if err != nil {
		log.Printf("[handleListReports] ERROR: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}
	if reports == nil {
		reports = []*studio.Report{}
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
