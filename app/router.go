package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/api", app.getEndpointsHandler)
	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthCheckHandler)

	// articles
	router.HandlerFunc(http.MethodGet, "/api/articles", app.getArticlesHandler)
	router.HandlerFunc(http.MethodPost, "/api/articles", app.postArticleHandler)
	router.HandlerFunc(http.MethodGet, "/api/articles/:article_id", app.getArticleByIdHandler)
	router.HandlerFunc(http.MethodPatch, "/api/articles/:article_id", app.patchArticleByIdHandler)
	router.HandlerFunc(http.MethodDelete, "/api/articles/:article_id", app.deleteArticleByIdHandler)
	router.HandlerFunc(http.MethodGet, "/api/articles/:article_id/comments", app.getCommentsByArticleIdHandler)
	router.HandlerFunc(http.MethodPost, "/api/articles/:article_id/comments", app.postCommentByArticleIdHandler)

	// comments
	router.HandlerFunc(http.MethodPatch, "/api/comments/:comment_id", app.patchCommentByIdHandler)
	router.HandlerFunc(http.MethodDelete, "/api/comments/:comment_id", app.deleteCommentByIdHandler)

	// topics
	router.HandlerFunc(http.MethodGet, "/api/topics", app.getAllTopicsHandler)
	router.HandlerFunc(http.MethodPost, "/api/topics", app.postTopicHandler)

	// users
	router.HandlerFunc(http.MethodGet, "/api/users", app.getUsersHandler)
	router.HandlerFunc(http.MethodGet, "/api/users/:username", app.getUserByUsernameHandler)

	return app.recoverPanic(app.logRequest(router))
}
