// handlers/admin_handler.go
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gewnthar/flightpath/dataset"
	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/services"
)

// DatasetManager imports tables into the store and reports their versions.
type DatasetManager interface {
	Fetch(ctx context.Context) ([]*dataset.Download, error)
	Import(ctx context.Context) (*services.ImportSummary, error)
	Versions(ctx context.Context) ([]models.DataSourceVersion, error)
}

// AdminHandler serves data management endpoints.
type AdminHandler struct {
	paths    PathFinder
	datasets DatasetManager // nil when no database is configured
	logger   log.Logger
}

func NewAdminHandler(paths PathFinder, datasets DatasetManager, logger log.Logger) *AdminHandler {
	return &AdminHandler{paths: paths, datasets: datasets, logger: logger}
}

// RegisterRoutes mounts the admin endpoints and /metrics on router.
func (h *AdminHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/admin/reload", h.Reload).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/refresh", h.Refresh).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/versions", h.Versions).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// Reload handles POST /api/admin/reload: rebuild the graph from the
// configured source.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	st, err := h.paths.Reload(r.Context())
	if err != nil {
		respondWithError(h.logger, w, http.StatusInternalServerError, fmt.Sprintf("Failed to reload graph: %v", err))
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, st)
}

// Refresh handles POST /api/admin/refresh: download both tables, import them
// into the store and reload the graph. ?download=false skips the download.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.datasets == nil {
		respondWithError(h.logger, w, http.StatusNotImplemented, "No database is configured")
		return
	}
	ctx := r.Context()
	if r.URL.Query().Get("download") != "false" {
		if _, err := h.datasets.Fetch(ctx); err != nil {
			respondWithError(h.logger, w, http.StatusBadGateway, fmt.Sprintf("Failed to download data: %v", err))
			return
		}
	}
	summary, err := h.datasets.Import(ctx)
	if err != nil {
		respondWithError(h.logger, w, http.StatusInternalServerError, fmt.Sprintf("Failed to import data: %v", err))
		return
	}
	st, err := h.paths.Reload(ctx)
	if err != nil {
		respondWithError(h.logger, w, http.StatusInternalServerError, fmt.Sprintf("Imported but failed to reload graph: %v", err))
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"airports_imported": summary.Airports,
		"routes_imported":   summary.Routes,
		"graph":             st,
	})
}

// Versions handles GET /api/admin/versions.
func (h *AdminHandler) Versions(w http.ResponseWriter, r *http.Request) {
	if h.datasets == nil {
		respondWithError(h.logger, w, http.StatusNotImplemented, "No database is configured")
		return
	}
	versions, err := h.datasets.Versions(r.Context())
	if err != nil {
		respondWithError(h.logger, w, http.StatusInternalServerError, fmt.Sprintf("Failed to get data source versions: %v", err))
		return
	}
	if versions == nil {
		versions = []models.DataSourceVersion{}
	}
	respondWithJSON(h.logger, w, http.StatusOK, versions)
}
