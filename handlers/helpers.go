// handlers/helpers.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/goto/salt/log"
)

// respondWithJSON writes payload as a JSON response.
func respondWithJSON(logger log.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal json response", "err", err)
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes {"error": message}.
func respondWithError(logger log.Logger, w http.ResponseWriter, code int, message string) {
	logger.Warn("api error", "status", code, "message", message)
	respondWithJSON(logger, w, code, map[string]string{"error": message})
}
