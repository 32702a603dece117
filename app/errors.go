package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sushihentaime/newshub/internal/common"
)

func (app *application) logError(r *http.Request, err error) {
	var (
		method  = r.Method
		url     = r.URL.RequestURI()
		message = err.Error()
	)

	app.logger.Error(message, slog.String("method", method), slog.String("url", url))
}

func (app *application) writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	err := app.writeJSON(w, status, envelope{"msg": message}, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

// errorResponse is the terminal error classification for a request. A
// DomainError already carries its status and message and is rendered as-is;
// storage-level errors have been translated into DomainErrors by the model
// layer, so anything still unclassified here is a server fault and becomes an
// opaque 500. Stack traces and driver codes are logged, never sent.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr common.DomainError
	if errors.As(err, &domainErr) {
		app.writeErrorResponse(w, r, domainErr.Status, domainErr.Message)
		return
	}

	app.serverErrorResponse(w, r, err)
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	app.writeErrorResponse(w, r, http.StatusInternalServerError, "Internal Server Error")
}

func (app *application) badRequestErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.writeErrorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusNotFound, "Not found")
}

func (app *application) methodNotAllowedErrorResponse(w http.ResponseWriter, r *http.Request) {
	app.writeErrorResponse(w, r, http.StatusMethodNotAllowed, "method not allowed")
}
