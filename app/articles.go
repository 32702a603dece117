package main

import (
	"net/http"

	"github.com/sushihentaime/newshub/internal/articleservice"
)

func (app *application) getArticlesHandler(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	articles, err := app.articleService.GetArticles(r.Context(), params.Get("sort_by"), params.Get("order"), params.Get("topic"), params.Get("p"), params.Get("limit"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"articles": articles}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) getArticleByIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	article, err := app.articleService.GetArticleByID(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) postArticleHandler(w http.ResponseWriter, r *http.Request) {
	var input articleservice.CreateArticleRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	article, err := app.articleService.CreateArticle(r.Context(), &input)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type patchVotesRequest struct {
	// IncVotes is a pointer so a missing field is distinguishable from zero.
	IncVotes *int `json:"inc_votes"`
}

func (app *application) patchArticleByIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input patchVotesRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	if input.IncVotes == nil {
		app.writeErrorResponse(w, r, http.StatusBadRequest, "Bad request - inc_votes must be provided")
		return
	}

	article, err := app.articleService.UpdateArticleVotes(r.Context(), id, *input.IncVotes)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"article": article}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteArticleByIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.articleService.DeleteArticle(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) getCommentsByArticleIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	params := r.URL.Query()

	comments, err := app.articleService.GetCommentsByArticleID(r.Context(), id, params.Get("p"), params.Get("limit"))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comments": comments}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type postCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

func (app *application) postCommentByArticleIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "article_id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input postCommentRequest
	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	comment, err := app.articleService.CreateComment(r.Context(), id, input.Username, input.Body)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
