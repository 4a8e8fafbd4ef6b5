// handlers/router.go
package handlers

import (
	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
)

// NewRouter returns a router with every API endpoint mounted. datasets may be
// nil when no database is configured.
func NewRouter(paths PathFinder, datasets DatasetManager, logger log.Logger) *mux.Router {
	r := mux.NewRouter()
	NewPathHandler(paths, logger).RegisterRoutes(r)
	NewAdminHandler(paths, datasets, logger).RegisterRoutes(r)
	return r
}
