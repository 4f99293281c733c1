// cmd/api/healthcheck.go
package main

import (
	"net/http"
)

// healthcheckHandler handles GET /v1/healthcheck.
// It reports that the service is up, along with the environment and version.
// Useful for load balancer probes and quick smoke tests. Note the cache
// backend is deliberately absent here: its availability never affects
// whether the service can take traffic.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.environment,
			"version":     appVersion,
		},
	}

	err := app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
