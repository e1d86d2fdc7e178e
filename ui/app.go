package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"brandstudio/domain/core"
	"brandstudio/ports"
)

// App is the read-only reports application: a lightweight surface for
// browsing finished dashboard reports, separate from the upload API.
type App struct {
	router  *chi.Mux
	reports ports.ReportRepository
}

// NewApp creates the reports application
func NewApp(reports ports.ReportRepository) *App {
	app := &App{
		router:  chi.NewRouter(),
		reports: reports,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Get("/reports", a.handleListReports)
	a.router.Get("/reports/{id}", a.handleGetReport)
}

// Run starts the reports app on the given port
func (a *App) Run(port string) error {
	log.Printf("[ReportsApp] Starting reports app on port %s", port)
	return http.ListenAndServe(":"+port, a.router)
}

// Handler exposes the router for tests
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := a.reports.List(r.Context(), 50)
	if err != nil {
		log.Printf("[ReportsApp] Failed to list reports: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list reports"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

func (a *App) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseReportID(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "report ID is required"})
		return
	}

	report, err := a.reports.Get(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "report not found"})
			return
		}
		log.Printf("[ReportsApp] Failed to get report %s: %v", id, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load report"})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[ReportsApp] Failed to encode response: %v", err)
	}
}
