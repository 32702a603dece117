package main

import (
	"encoding/json"
	_ "embed"
	"net/http"
)

//go:embed endpoints.json
var endpointsJSON []byte

// getEndpointsHandler serves the static description of the API surface.
func (app *application) getEndpointsHandler(w http.ResponseWriter, r *http.Request) {
	var endpoints map[string]any
	if err := json.Unmarshal(endpointsJSON, &endpoints); err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err := app.writeJSON(w, http.StatusOK, envelope{"endpoints": endpoints}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
