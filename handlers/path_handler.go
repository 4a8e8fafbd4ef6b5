// handlers/path_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/goto/salt/log"

	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/pathfinder"
	"github.com/gewnthar/flightpath/routegraph"
	"github.com/gewnthar/flightpath/services"
	"github.com/gewnthar/flightpath/utils"
)

// PathFinder answers path and city queries.
type PathFinder interface {
	FindPath(source, destination string) (*models.Itinerary, error)
	CityAirports(city string) ([]models.Airport, error)
	Reload(ctx context.Context) (routegraph.Stats, error)
	Graph() *routegraph.Graph
}

// PathHandler serves the path finding API.
type PathHandler struct {
	paths    PathFinder
	validate *validator.Validate
	logger   log.Logger
}

func NewPathHandler(paths PathFinder, logger log.Logger) *PathHandler {
	return &PathHandler{paths: paths, validate: validator.New(), logger: logger}
}

// RegisterRoutes mounts the path finding endpoints on router.
func (h *PathHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/paths/find", h.FindPath).Methods(http.MethodPost)
	router.HandleFunc("/api/cities/airports", h.CityAirports).Methods(http.MethodGet)
}

// FindPath handles POST /api/paths/find
// with JSON body: {"source": "London, United Kingdom", "destination": "Accra, Ghana"}
func (h *PathHandler) FindPath(w http.ResponseWriter, r *http.Request) {
	var req models.FindPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondWithError(h.logger, w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	queryID := uuid.NewString()
	h.logger.Info("find path request", "query_id", queryID, "source", req.Source, "destination", req.Destination)

	resp := models.FindPathResponse{QueryID: queryID, Criteria: models.OptimalityCriteria}
	it, err := h.paths.FindPath(req.Source, req.Destination)
	switch {
	case err == nil:
		resp.Found = true
		resp.Itinerary = it
	case errors.Is(err, pathfinder.ErrNoPath):
		// not found is a normal outcome
	case errors.Is(err, pathfinder.ErrTrivialQuery):
		respondWithError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, pathfinder.ErrUnknownCity):
		respondWithError(h.logger, w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, services.ErrGraphNotLoaded):
		respondWithError(h.logger, w, http.StatusServiceUnavailable, err.Error())
		return
	default:
		respondWithError(h.logger, w, http.StatusInternalServerError, "Failed to find path: "+err.Error())
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, resp)
}

// CityAirports handles GET /api/cities/airports?city=Paris,%20France
func (h *PathHandler) CityAirports(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		respondWithError(h.logger, w, http.StatusBadRequest, "Missing 'city' query parameter")
		return
	}
	airports, err := h.paths.CityAirports(city)
	switch {
	case errors.Is(err, pathfinder.ErrUnknownCity):
		respondWithError(h.logger, w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, services.ErrGraphNotLoaded):
		respondWithError(h.logger, w, http.StatusServiceUnavailable, err.Error())
		return
	case err != nil:
		respondWithError(h.logger, w, http.StatusInternalServerError, err.Error())
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, models.CityAirportsResponse{City: utils.NormalizeCityKey(city), Airports: airports})
}

// Health reports whether a graph is loaded.
func (h *PathHandler) Health(w http.ResponseWriter, r *http.Request) {
	g := h.paths.Graph()
	if g == nil {
		respondWithJSON(h.logger, w, http.StatusServiceUnavailable, map[string]string{"status": "error", "message": "route graph not loaded"})
		return
	}
	st := g.Stats()
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"airports": st.Airports,
		"cities":   st.Cities,
		"routes":   st.Routes,
	})
}
