package main

import "net/http"

func (app *application) patchCommentByIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "comment_id")
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

	comment, err := app.articleService.UpdateCommentVotes(r.Context(), id, *input.IncVotes)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"comment": comment}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

func (app *application) deleteCommentByIdHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "comment_id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	err = app.articleService.DeleteComment(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
