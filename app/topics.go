package main

import "net/http"

func (app *application) getAllTopicsHandler(w http.ResponseWriter, r *http.Request) {
	topics, err := app.topicService.GetTopics(r.Context())
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"topics": topics}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}

type postTopicRequest struct {
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func (app *application) postTopicHandler(w http.ResponseWriter, r *http.Request) {
	var input postTopicRequest

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	topic, err := app.topicService.CreateTopic(r.Context(), input.Slug, input.Description)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"topic": topic}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
}
